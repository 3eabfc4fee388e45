// Package strategy implements the Strategy Analyzer (spec §4.4): deciding,
// per pattern, the cheapest traversal shape.
package strategy

import (
	"github.com/coregx/globx/internal/brace"
)

// Kind is the traversal strategy chosen for a pattern.
type Kind int

const (
	// NoBraces means the pattern has no (or only single-alternative,
	// still-literal) brace groups: every component has exactly one
	// alternative, so the Traversal Engine drives the pattern directly.
	NoBraces Kind = iota
	// SingleWalk means braces expand into a bounded number of alternatives
	// sharing enough structure to be driven by one walk that evaluates all
	// alternatives per directory entry at each depth.
	SingleWalk
	// Fallback means expansion exceeded the configured bound; the caller
	// must split the pattern (brace.SplitFirstGroup) into independent glob
	// calls and union-dedup their results.
	Fallback
)

// Analyze parses pattern's brace structure and picks a strategy.
//
// On Fallback, bp is nil — there is no usable BracedPattern, by
// construction, because the cross-product that would have produced one blew
// past Config.MaxAlternatives.
func Analyze(pattern []byte, noEscape, braceEnabled bool, cfg brace.Config) (Kind, *brace.Pattern, error) {
	bp, err := brace.Parse(pattern, noEscape, braceEnabled, cfg)
	if err != nil {
		return Fallback, nil, nil
	}

	for _, c := range bp.Components {
		if len(c.Alternatives) > 1 {
			return SingleWalk, bp, nil
		}
	}
	return NoBraces, bp, nil
}
