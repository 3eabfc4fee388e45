package walk

import (
	"github.com/coregx/globx/internal/brace"
	"github.com/coregx/globx/internal/match"
)

// minLiteralSetSize is the alternative count at or above which a component's
// literal alternatives get an Aho-Corasick prefilter instead of a linear
// scan over compiled matchers (mirrors match.LiteralSet's own threshold
// reasoning: small sets aren't worth the automaton).
const minLiteralSetSize = 8

// Component is a brace.Component compiled down to matchers ready to test
// against directory entry names.
type Component struct {
	IsRecursive bool

	// allLiteral and literalName serve the literal shortcut (spec §4.5): a
	// single, magic-free alternative is a plain name comparison with no need
	// to tokenize or backtrack.
	allLiteral  bool
	literalName string

	matchers   []*match.Pattern
	literalSet *match.LiteralSet // non-nil whenever every alternative is literal; it builds an automaton only when there are enough of them
	literals   [][]byte
}

// Match reports whether name matches any alternative of the component.
func (c *Component) Match(name string) bool {
	if c.allLiteral {
		if c.literalSet != nil {
			return c.literalSet.Match([]byte(name))
		}
		b := []byte(name)
		for _, lit := range c.literals {
			if string(lit) == string(b) {
				return true
			}
		}
		return false
	}
	for _, m := range c.matchers {
		if m.Match([]byte(name)) {
			return true
		}
	}
	return false
}

// Compile turns a brace.Pattern into the []Component the walker drives.
// noEscape/extglob/period mirror the flags the Component Matcher needs;
// doubleStarRecursive controls whether "**" components get the recursive
// treatment or degrade to an ordinary single-segment "*" (spec §4.5: with
// DoubleStarRecursive unset, "**" is just two stars).
func Compile(bp *brace.Pattern, noEscape, extglob, period, doubleStarRecursive bool) []Component {
	out := make([]Component, 0, len(bp.Components))
	for _, bc := range bp.Components {
		if bc.IsRecursive && doubleStarRecursive {
			out = append(out, Component{IsRecursive: true})
			continue
		}

		comp := Component{}
		alts := bc.Alternatives
		if bc.IsRecursive {
			// Degraded "**": treat the literal text "**" as a plain pattern,
			// which naturally tokenizes into two consecutive tStar tokens
			// and matches any single segment (including one starting with
			// two literal asterisks being irrelevant, since '*' is magic).
			alts = [][]byte{bc.Raw}
		}

		allLiteral := true
		compiled := make([]*match.Pattern, 0, len(alts))
		literals := make([][]byte, 0, len(alts))
		for _, alt := range alts {
			m := match.Compile(alt, noEscape, extglob, period)
			compiled = append(compiled, m)
			if m.Ctx.HasMagic {
				allLiteral = false
				continue
			}
			literals = append(literals, m.Ctx.Literal)
		}

		comp.matchers = compiled
		comp.allLiteral = allLiteral
		if allLiteral {
			comp.literals = literals
			comp.literalSet = match.NewLiteralSet(literals, minLiteralSetSize)
			if len(literals) == 1 {
				comp.literalName = string(literals[0])
			}
		}
		out = append(out, comp)
	}
	return out
}
