package match

// matchTokens reports whether tokens matches segment exactly (no leftover on
// either side). This is the backtracker spec §4.3 describes: '*' tries every
// split point, EXTGLOB groups try every repetition/alternative combination,
// and a plain literal/class/'?' token consumes exactly one byte.
//
// '/' can never appear in segment (callers only ever pass one path
// component), so there is no risk of '*' crossing a directory boundary —
// that invariant lives one layer up, in the Traversal Engine.
func matchTokens(tokens []token, segment []byte) bool {
	return matchAt(tokens, 0, segment, 0)
}

func matchAt(tokens []token, ti int, s []byte, si int) bool {
	for ti < len(tokens) {
		tok := tokens[ti]
		switch tok.kind {
		case tLiteral:
			if si >= len(s) || s[si] != tok.lit {
				return false
			}
			ti++
			si++
		case tAny:
			if si >= len(s) {
				return false
			}
			ti++
			si++
		case tClass:
			if si >= len(s) || !tok.class.match(s[si]) {
				return false
			}
			ti++
			si++
		case tStar:
			for k := si; k <= len(s); k++ {
				if matchAt(tokens, ti+1, s, k) {
					return true
				}
			}
			return false
		case tExtGroup:
			return matchExtGroup(tok.group, tokens[ti+1:], s, si)
		}
	}
	return si == len(s)
}

// altConsumes reports whether alt matches exactly s[start:end].
func altConsumes(alt []token, s []byte, start, end int) bool {
	return matchAt(alt, 0, s[start:end], 0)
}

// matchExtGroup matches one EXTGLOB group at position si, then the
// remaining (already-tokenized) pattern `rest`, trying every admissible
// repetition count for the group's quantifier.
func matchExtGroup(g *extGroup, rest []token, s []byte, si int) bool {
	switch g.kind {
	case '@': // exactly one
		return matchOneAlt(g, rest, s, si)
	case '?': // zero or one
		if matchAt(rest, 0, s, si) {
			return true
		}
		return matchOneAlt(g, rest, s, si)
	case '*': // zero or more
		if matchAt(rest, 0, s, si) {
			return true
		}
		return matchMoreAlt(g, rest, s, si)
	case '+': // one or more
		return matchMoreAlt(g, rest, s, si)
	case '!': // anything that is not a whole-alternative match
		return matchNegatedAlt(g, rest, s, si)
	}
	return false
}

// matchOneAlt consumes exactly one repetition of some alternative, then
// matches rest from the new position.
func matchOneAlt(g *extGroup, rest []token, s []byte, si int) bool {
	for end := si; end <= len(s); end++ {
		for _, alt := range g.alts {
			if altConsumes(alt, s, si, end) && matchAt(rest, 0, s, end) {
				return true
			}
		}
	}
	return false
}

// matchMoreAlt consumes one or more repetitions of some alternative
// (requiring progress on each repetition to avoid infinite recursion on an
// alternative that can match empty), then matches rest.
func matchMoreAlt(g *extGroup, rest []token, s []byte, si int) bool {
	for end := si + 1; end <= len(s); end++ {
		for _, alt := range g.alts {
			if !altConsumes(alt, s, si, end) {
				continue
			}
			if matchAt(rest, 0, s, end) {
				return true
			}
			if matchMoreAlt(g, rest, s, end) {
				return true
			}
		}
	}
	return false
}

// matchNegatedAlt consumes some span [si:end] that does NOT, as a whole,
// match any alternative, then matches rest from end.
func matchNegatedAlt(g *extGroup, rest []token, s []byte, si int) bool {
	for end := len(s); end >= si; end-- {
		matchesAny := false
		for _, alt := range g.alts {
			if altConsumes(alt, s, si, end) {
				matchesAny = true
				break
			}
		}
		if !matchesAny && matchAt(rest, 0, s, end) {
			return true
		}
	}
	return false
}
