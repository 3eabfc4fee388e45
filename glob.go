// Package globx implements a filesystem glob matcher: brace alternation,
// shell wildcards, character classes, extended-glob groups and recursive
// "**" traversal, built as a five-stage pipeline (Pattern Scanner, Brace
// Expander, Component Matcher, Strategy Analyzer, Traversal Engine) behind
// a small glob(3)-flavored API.
//
// Basic usage:
//
//	res, err := globx.Glob("src/**/*.go", globx.DoubleStarRecursive|globx.Brace, nil, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range res.Paths() {
//	    fmt.Println(p)
//	}
//
// Matching against an in-memory path list, with no filesystem I/O at all:
//
//	res, err := globx.MatchPaths("**/*.md", paths, globx.DoubleStarRecursive)
package globx

import (
	"os"
	"path"
	"strings"

	"github.com/coregx/globx/internal/brace"
	"github.com/coregx/globx/internal/result"
	"github.com/coregx/globx/internal/scan"
	"github.com/coregx/globx/internal/strategy"
	"github.com/coregx/globx/internal/walk"
)

// ErrFunc is called when a directory cannot be read during the walk. A
// nonzero-equivalent (true) return aborts the walk with ErrAborted, mirroring
// glob(3)'s errfunc(3) contract. A nil ErrFunc is treated as one that always
// continues.
type ErrFunc func(path string, err error) bool

// Glob matches pattern against the filesystem rooted at the current working
// directory. prev, when non-nil and fl has Append set, is extended with the
// new matches instead of returning a fresh *Result.
func Glob(pattern string, fl Flags, errFn ErrFunc, prev *Result) (*Result, error) {
	return GlobAt(".", pattern, fl, errFn, prev)
}

// GlobAt is Glob, resolving a relative pattern against base instead of the
// current working directory.
func GlobAt(base, pattern string, fl Flags, errFn ErrFunc, prev *Result) (*Result, error) {
	return globAt(walk.NewOSReader(), base, pattern, fl, errFn, prev)
}

// globAt is GlobAt with the directory-reading capability injected, so that
// the walk's directory-entry state machine can be exercised against an
// in-memory tree in tests without touching the real filesystem.
func globAt(reader walk.DirReader, base, pattern string, fl Flags, errFn ErrFunc, prev *Result) (*Result, error) {
	original := pattern

	pattern, aborted, err := expandTilde(pattern, fl)
	if err != nil {
		return nil, err
	}
	if aborted {
		return nil, ErrAborted
	}

	w := walk.New(walk.Config{
		Reader:      reader,
		OnlyDir:     fl.Has(OnlyDir),
		SurfaceErrs: fl.Has(Err),
		ErrFn:       adaptErrFn(errFn),
	})

	startDir, rel := rootFor(base, pattern)

	matches, err := collect(w, startDir, rel, fl)
	if err == walk.ErrAborted {
		return nil, ErrAborted
	}
	if err != nil {
		return nil, err
	}

	var prevPaths []string
	if prev != nil {
		prevPaths = prev.paths
	}

	paths := result.Assemble(matches, original, prevPaths, result.Config{
		Mark:    fl.Has(Mark),
		NoSort:  fl.Has(NoSort),
		NoCheck: fl.Has(NoCheck),
		Append:  fl.Has(Append),
	})

	if len(paths) == 0 && !fl.Has(NoCheck) {
		return nil, ErrNoMatch
	}
	return &Result{paths: paths}, nil
}

// collect drives the Strategy Analyzer and Traversal Engine for one
// (startDir, pattern) pair, recursing through the Fallback strategy's
// pattern splits when brace expansion exceeds its bound.
func collect(w *walk.Walker, startDir, pattern string, fl Flags) ([]result.Match, error) {
	patternBytes := []byte(pattern)
	noEscape := fl.Has(NoEscape)
	extglob := fl.Has(ExtGlob)

	if fl.Has(NoMagic) && !scan.HasWildcards(patternBytes, noEscape, extglob) {
		matched, isDir := w.Literal(startDir, pattern)
		if !matched {
			return nil, nil
		}
		return []result.Match{{Path: path.Join(startDir, pattern), IsDir: isDir}}, nil
	}

	kind, bp, err := strategy.Analyze(patternBytes, noEscape, fl.Has(Brace), brace.DefaultConfig())
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}

	if kind == strategy.Fallback {
		variants, ok := brace.SplitFirstGroup(patternBytes, noEscape)
		if !ok {
			return nil, ErrNoSpace
		}
		var all []result.Match
		for _, v := range variants {
			sub, err := collect(w, startDir, string(v), fl)
			if err != nil {
				return nil, err
			}
			all = append(all, sub...)
		}
		return all, nil
	}

	components := walk.Compile(bp, noEscape, extglob, fl.Has(Period), fl.Has(DoubleStarRecursive))
	components = applyGitIgnoreAnchor(components, bp, fl)

	var out []result.Match
	walkErr := w.Walk(startDir, components, func(p string, isDir bool) {
		out = append(out, result.Match{Path: p, IsDir: isDir})
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return out, nil
}

// applyGitIgnoreAnchor implements spec §11's resolution of the anchoring
// Open Question: under the GitIgnore flag, a pattern with no interior '/'
// is unanchored and may match starting at any depth, which is modeled as an
// implicit leading recursive "**" component.
func applyGitIgnoreAnchor(components []walk.Component, bp *brace.Pattern, fl Flags) []walk.Component {
	if !fl.Has(GitIgnore) || bp.IsAbsolute || len(bp.Components) != 1 {
		return components
	}
	if !fl.Has(DoubleStarRecursive) {
		return components
	}
	return append([]walk.Component{{IsRecursive: true}}, components...)
}

// rootFor splits pattern resolution into the directory the walk starts
// from and the pattern text relative to it: absolute patterns start at "/"
// regardless of base.
func rootFor(base, pattern string) (startDir, rel string) {
	if strings.HasPrefix(pattern, "/") {
		return "/", pattern
	}
	if base == "" {
		base = "."
	}
	abs, err := pathAbs(base)
	if err != nil {
		abs = base
	}
	return abs, pattern
}

func pathAbs(base string) (string, error) {
	if path.IsAbs(base) {
		return path.Clean(base), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return path.Join(wd, base), nil
}

// expandTilde resolves a leading "~" to the caller's home directory under
// the Tilde/TildeCheck flags (spec §11). aborted is true only under
// TildeCheck when no home directory can be resolved.
func expandTilde(pattern string, fl Flags) (expanded string, aborted bool, err error) {
	if !strings.HasPrefix(pattern, "~") || (!fl.Has(Tilde) && !fl.Has(TildeCheck)) {
		return pattern, false, nil
	}
	rest := pattern[1:]
	if rest != "" && rest[0] != '/' {
		// "~user/..." form: out of scope (spec Non-goals), leave literal.
		return pattern, false, nil
	}
	home, herr := os.UserHomeDir()
	if herr != nil || home == "" {
		if fl.Has(TildeCheck) {
			return pattern, true, nil
		}
		return pattern, false, nil
	}
	return home + rest, false, nil
}

func adaptErrFn(fn ErrFunc) walk.ErrFunc {
	if fn == nil {
		return nil
	}
	return func(p string, err error) bool { return fn(p, err) }
}
