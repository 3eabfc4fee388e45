// Package brace implements brace-alternation expansion and slash splitting
// for glob patterns (spec §4.2).
//
// This is the one place in the engine that allocates unboundedly in
// proportion to the *pattern* rather than the filesystem, so it is also the
// one place carrying an explicit resource bound (Config.MaxAlternatives):
// without it, a pattern like "{a,b}{c,d}{e,f}{g,h}{i,j}{k,l}{m,n}{o,p}" would
// silently blow up into 256 alternatives, and a maliciously deep nesting of
// such groups grows exponentially.
package brace

import (
	"errors"

	"github.com/coregx/globx/internal/scan"
)

// ErrTooManyAlternatives is returned when expansion would exceed
// Config.MaxAlternatives. The caller (internal/strategy) treats this as a
// signal to fall back to the slow literal path (spec §4.4's `fallback`
// strategy).
var ErrTooManyAlternatives = errors.New("brace: too many alternatives")

// Config bounds brace expansion.
type Config struct {
	// MaxAlternatives is the hard cap on the number of alternatives a single
	// component may expand into. Default: 65536 (spec §4.2's recommended
	// bound).
	MaxAlternatives int
}

// DefaultConfig returns the recommended expansion bound.
func DefaultConfig() Config {
	return Config{MaxAlternatives: 65536}
}

// Component is one slash-separated fragment of a pattern, plus its expanded
// brace alternatives.
type Component struct {
	// Raw is the original fragment text, unexpanded.
	Raw []byte
	// IsRecursive is true iff Raw is exactly "**" — such components are
	// never subject to brace expansion (spec §3 invariant).
	IsRecursive bool
	// Alternatives holds every brace-free expansion of Raw. Always
	// non-empty; len==1 when Raw had no (or an unmatched) brace group.
	Alternatives [][]byte
}

// Pattern is an ordered, non-empty sequence of Components (spec §3's
// BracedPattern).
type Pattern struct {
	Components   []Component
	HasRecursive bool
	IsAbsolute   bool
}

// Parse splits pattern on unescaped '/' and brace-expands each component.
func Parse(pattern []byte, noEscape, braceEnabled bool, cfg Config) (*Pattern, error) {
	p := &Pattern{IsAbsolute: len(pattern) > 0 && pattern[0] == '/'}

	for _, frag := range splitSlash(pattern, noEscape) {
		comp := Component{Raw: frag}

		if string(frag) == "**" {
			comp.IsRecursive = true
			comp.Alternatives = [][]byte{frag}
			p.HasRecursive = true
			p.Components = append(p.Components, comp)
			continue
		}

		if !braceEnabled {
			comp.Alternatives = [][]byte{frag}
			p.Components = append(p.Components, comp)
			continue
		}

		alts, err := expand(frag, noEscape, cfg.boundOrDefault())
		if err != nil {
			return nil, err
		}
		comp.Alternatives = alts
		p.Components = append(p.Components, comp)
	}

	if len(p.Components) == 0 {
		p.Components = []Component{{Raw: nil, Alternatives: [][]byte{nil}}}
	}

	return p, nil
}

func (c Config) boundOrDefault() int {
	if c.MaxAlternatives <= 0 {
		return DefaultConfig().MaxAlternatives
	}
	return c.MaxAlternatives
}

// splitSlash splits pattern on unescaped '/', collapsing consecutive
// separators so that no empty component is ever produced (spec §3
// invariant: "a//b" yields components "a","b", not "a","","b").
func splitSlash(pattern []byte, noEscape bool) [][]byte {
	var out [][]byte
	from := 0
	for {
		idx := scan.FindUnescaped(pattern, from, noEscape, '/')
		if idx == -1 {
			if from < len(pattern) {
				out = append(out, pattern[from:])
			}
			return out
		}
		if idx > from {
			out = append(out, pattern[from:idx])
		}
		from = idx + 1
	}
}

// SplitFirstGroup finds the first top-level brace alternation anywhere in
// pattern (scanning across '/' boundaries too) and returns one variant of
// pattern per alternative, each with that one group replaced and everything
// else — including any other brace groups — left untouched.
//
// This is the mechanism behind the `fallback` strategy (spec §4.4): when a
// pattern's full cross-product expansion would exceed Config.MaxAlternatives,
// the caller splits on just the first group, globs each resulting pattern
// independently (recursing back through brace expansion, which now has one
// fewer group to contend with), and unions the results. ok is false when
// pattern contains no splittable (i.e. >=2 top-level alternatives) group at
// all; the root package's callers then report ErrNoSpace.
func SplitFirstGroup(pattern []byte, noEscape bool) (variants [][]byte, ok bool) {
	openIdx := scan.FindUnescaped(pattern, 0, noEscape, '{')
	for openIdx != -1 {
		closeIdx, matched := matchBrace(pattern, openIdx, noEscape)
		if !matched {
			openIdx = scan.FindUnescaped(pattern, openIdx+1, noEscape, '{')
			continue
		}

		parts := splitTopLevelCommas(pattern[openIdx+1:closeIdx], noEscape)
		if len(parts) < 2 {
			openIdx = scan.FindUnescaped(pattern, closeIdx+1, noEscape, '{')
			continue
		}

		prefix := pattern[:openIdx]
		suffix := pattern[closeIdx+1:]
		out := make([][]byte, 0, len(parts))
		for _, part := range parts {
			out = append(out, concat(prefix, part, suffix))
		}
		return out, true
	}
	return nil, false
}

// expand recursively brace-expands a single slash-free fragment.
func expand(frag []byte, noEscape bool, budget int) ([][]byte, error) {
	openIdx := scan.FindUnescaped(frag, 0, noEscape, '{')
	if openIdx == -1 {
		return [][]byte{frag}, nil
	}

	closeIdx, ok := matchBrace(frag, openIdx, noEscape)
	if !ok {
		// Unmatched '{': treat the whole fragment as literal (spec §4.2
		// edge case).
		return [][]byte{frag}, nil
	}

	prefix := frag[:openIdx]
	body := frag[openIdx+1 : closeIdx]
	suffix := frag[closeIdx+1:]

	parts := splitTopLevelCommas(body, noEscape)
	if len(parts) < 2 {
		// No top-level comma: not a real alternation. The whole "{...}"
		// span is literal text (bash/glob(3) semantics), but any further
		// brace groups in the suffix still need expanding.
		suffixAlts, err := expand(suffix, noEscape, budget)
		if err != nil {
			return nil, err
		}
		out := make([][]byte, 0, len(suffixAlts))
		for _, s := range suffixAlts {
			out = append(out, concat(prefix, frag[openIdx:closeIdx+1], s))
		}
		return out, nil
	}

	var bodyAlts [][]byte
	for _, part := range parts {
		expanded, err := expand(part, noEscape, budget)
		if err != nil {
			return nil, err
		}
		bodyAlts = append(bodyAlts, expanded...)
		if len(bodyAlts) > budget {
			return nil, ErrTooManyAlternatives
		}
	}

	suffixAlts, err := expand(suffix, noEscape, budget)
	if err != nil {
		return nil, err
	}

	out := make([][]byte, 0, len(bodyAlts)*len(suffixAlts))
	for _, b := range bodyAlts {
		for _, s := range suffixAlts {
			out = append(out, concat(prefix, b, s))
			if len(out) > budget {
				return nil, ErrTooManyAlternatives
			}
		}
	}
	return out, nil
}

func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// matchBrace finds the '}' matching the '{' at openIdx, accounting for
// nested unescaped brace depth. Returns ok=false if unmatched.
func matchBrace(s []byte, openIdx int, noEscape bool) (int, bool) {
	depth := 1
	for i := openIdx + 1; i < len(s); i++ {
		if s[i] == '\\' && !noEscape {
			i++
			continue
		}
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return -1, false
}

// splitTopLevelCommas splits body on commas at nesting depth 0, honoring
// escapes (spec §4.2: "commas nested in inner {…} are literal").
func splitTopLevelCommas(body []byte, noEscape bool) [][]byte {
	var parts [][]byte
	depth := 0
	start := 0
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && !noEscape {
			i++
			continue
		}
		switch body[i] {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, body[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, body[start:])
	return parts
}
