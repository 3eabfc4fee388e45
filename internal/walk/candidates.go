package walk

import "strings"

// MatchCandidates drives the same state machine as Walk, but against a
// fixed list of candidate paths instead of a live directory tree (spec
// §4.5's in-memory mode, used by MatchPaths/MatchPathsAt). No filesystem
// I/O happens; OnlyDir has no effect, since candidates carry no kind
// information.
func MatchCandidates(components []Component, candidates []string) []string {
	var out []string
	for _, c := range candidates {
		segs := splitPath(c)
		if matchSegments(components, 0, segs, 0) {
			out = append(out, c)
		}
	}
	return out
}

func splitPath(p string) []string {
	raw := strings.Split(p, "/")
	out := raw[:0]
	for _, s := range raw {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func matchSegments(components []Component, ci int, segs []string, si int) bool {
	if ci == len(components) {
		return si == len(segs)
	}

	comp := &components[ci]
	if comp.IsRecursive {
		// Zero-match branch.
		if matchSegments(components, ci+1, segs, si) {
			return true
		}
		// One-or-more branch: consume exactly one segment, stay on "**".
		if si < len(segs) {
			return matchSegments(components, ci, segs, si+1)
		}
		return false
	}

	if si >= len(segs) {
		return false
	}
	if !comp.Match(segs[si]) {
		return false
	}
	return matchSegments(components, ci+1, segs, si+1)
}
