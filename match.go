package globx

import (
	"path"
	"strings"

	"github.com/coregx/globx/internal/brace"
	"github.com/coregx/globx/internal/result"
	"github.com/coregx/globx/internal/strategy"
	"github.com/coregx/globx/internal/walk"
)

// MatchPaths filters paths to those matching pattern, without any
// filesystem access: the Traversal Engine runs in its in-memory mode,
// splitting each candidate on '/' and driving the same component state
// machine used by Glob. OnlyDir, Tilde, NoMagic and Mark have no effect
// here, since candidates carry neither a home directory context nor a
// directory bit.
//
// The return-code contract mirrors Glob/GlobAt (spec §6/§7): ErrNoMatch and
// ErrNoSpace are both reachable here too, not just on the filesystem entry
// points.
func MatchPaths(pattern string, paths []string, fl Flags) (*Result, error) {
	return MatchPathsAt("", pattern, paths, fl)
}

// MatchPathsAt is MatchPaths, joining a relative pattern onto base before
// matching (so a pattern like "code/*.c" can be matched against absolute
// candidate paths under base, the same way GlobAt resolves it against the
// filesystem).
func MatchPathsAt(base, pattern string, paths []string, fl Flags) (*Result, error) {
	matched, err := matchCollect(base, pattern, paths, fl)
	if err != nil {
		return nil, err
	}

	out := result.Assemble(matched, pattern, nil, result.Config{
		NoSort:  fl.Has(NoSort),
		NoCheck: fl.Has(NoCheck),
	})
	if len(out) == 0 && !fl.Has(NoCheck) {
		return nil, ErrNoMatch
	}
	return &Result{paths: out}, nil
}

// matchCollect drives the Strategy Analyzer over the in-memory candidate
// list, recursing through the Fallback strategy's pattern splits exactly
// the way collect does for the filesystem entry points.
func matchCollect(base, pattern string, candidates []string, fl Flags) ([]result.Match, error) {
	full := pattern
	if base != "" && !strings.HasPrefix(pattern, "/") {
		full = path.Join(base, pattern)
	}

	noEscape := fl.Has(NoEscape)
	kind, bp, err := strategy.Analyze([]byte(full), noEscape, fl.Has(Brace), brace.DefaultConfig())
	if err != nil {
		return nil, &PatternError{Pattern: full, Err: err}
	}

	if kind == strategy.Fallback {
		variants, ok := brace.SplitFirstGroup([]byte(full), noEscape)
		if !ok {
			return nil, ErrNoSpace
		}
		seen := make(map[string]bool)
		var all []result.Match
		for _, v := range variants {
			sub, err := matchCollect("", string(v), candidates, fl)
			if err != nil {
				return nil, err
			}
			for _, m := range sub {
				if !seen[m.Path] {
					seen[m.Path] = true
					all = append(all, m)
				}
			}
		}
		return all, nil
	}

	components := walk.Compile(bp, noEscape, fl.Has(ExtGlob), fl.Has(Period), fl.Has(DoubleStarRecursive))
	components = applyGitIgnoreAnchor(components, bp, fl)

	matchedPaths := walk.MatchCandidates(components, candidates)
	out := make([]result.Match, len(matchedPaths))
	for i, p := range matchedPaths {
		out[i] = result.Match{Path: p}
	}
	return out, nil
}
