package match

import (
	"bytes"

	"github.com/coregx/ahocorasick"
)

// LiteralSet matches a segment against a set of brace alternatives that are
// all pure literals (no further magic): a pattern like
// "{cc,cpp,cxx,c,h,hpp,hxx,...}" with dozens of extensions would otherwise
// mean trying each alternative's Pattern.Match in turn for every directory
// entry.
//
// The automaton here is NOT a complete answer by itself — Aho-Corasick
// reports the *first* matching substring, which for adjacency like
// {"go","golang"} need not be the longest or only match at that position —
// so a positive IsMatch is always followed by an exact verification pass.
// This keeps correctness independent of the automaton's matching order.
type LiteralSet struct {
	literals  [][]byte
	automaton *ahocorasick.Automaton
}

// NewLiteralSet builds a LiteralSet from already-decoded (escape-free)
// literal alternatives. The automaton is only built once the set is large
// enough that its reject-fast prefilter pays for its construction cost;
// below minSize a linear scan is just as fast and skips the build.
func NewLiteralSet(literals [][]byte, minSize int) *LiteralSet {
	ls := &LiteralSet{literals: literals}
	if len(literals) < minSize {
		return ls
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return ls
	}
	ls.automaton = auto
	return ls
}

// Match reports whether segment equals exactly one of the set's literals.
func (ls *LiteralSet) Match(segment []byte) bool {
	if ls.automaton != nil && !ls.automaton.IsMatch(segment) {
		return false
	}
	for _, lit := range ls.literals {
		if bytes.Equal(lit, segment) {
			return true
		}
	}
	return false
}
