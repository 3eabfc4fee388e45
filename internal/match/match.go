// Package match implements the Component Matcher: matching one path segment
// against one component pattern (spec §4.3).
package match

import (
	"bytes"

	"github.com/coregx/globx/internal/literal"
)

// Pattern is a compiled, ready-to-match component pattern: a literal.Context
// (the prefix/suffix fast-path data) plus the tokenized backtracker program.
type Pattern struct {
	Ctx    *literal.Context
	tokens []token
}

// Compile analyzes and tokenizes a single brace-free component pattern.
func Compile(raw []byte, noEscape, extglob, period bool) *Pattern {
	ctx := literal.Analyze(raw, noEscape, extglob, period)
	p := &Pattern{Ctx: ctx}
	if ctx.HasMagic {
		p.tokens = tokenize(raw, noEscape, extglob)
	}
	return p
}

// Match reports whether segment matches the compiled pattern.
//
// Two fast paths run before the backtracker, per spec §4.3: a pure literal
// comparison when the pattern has no magic, and a prefix/suffix bracket
// check that rejects segments which can't possibly match without exploring
// the backtracker at all.
func (p *Pattern) Match(segment []byte) bool {
	if p.Ctx.RequiresPeriodGuard && len(segment) > 0 && segment[0] == '.' {
		return false
	}

	if !p.Ctx.HasMagic {
		return bytes.Equal(p.Ctx.Literal, segment)
	}

	if p.Ctx.PrefixLiteral != nil && !bytes.HasPrefix(segment, p.Ctx.PrefixLiteral) {
		return false
	}
	if p.Ctx.SuffixLiteral != nil && !bytes.HasSuffix(segment, p.Ctx.SuffixLiteral) {
		return false
	}

	return matchTokens(p.tokens, segment)
}

// IsPureStar reports whether the compiled pattern is exactly "*".
func (p *Pattern) IsPureStar() bool { return p.Ctx.IsPureStar }
