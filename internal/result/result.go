// Package result implements the Result Assembler (spec §4.6): turning the
// Traversal Engine's raw match stream into the final, ordered path list.
package result

import "sort"

// Match is one path the Traversal Engine reported, with the directory bit
// the Mark option needs.
type Match struct {
	Path  string
	IsDir bool
}

// Config mirrors the glob(3)-style flags that shape assembly. Append and
// DoOffs are idiomatic Go translations of GLOB_APPEND/GLOB_DOOFFS: rather
// than writing into a caller-owned C array at a fixed offset, Append means
// "extend a previously returned slice" and DoOffs means "reserve this many
// empty leading slots" (spec §4.6, §11).
type Config struct {
	Mark    bool
	NoSort  bool
	NoCheck bool
	Append  bool
	DoOffs  int
}

// Assemble builds the final path list from matches. originalPattern is
// emitted verbatim when NoCheck is set and matches is empty. prev is the
// previously returned slice to extend when Append is set; it is ignored
// otherwise.
func Assemble(matches []Match, originalPattern string, prev []string, cfg Config) []string {
	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		p := m.Path
		if cfg.Mark && m.IsDir {
			p += "/"
		}
		paths = append(paths, p)
	}

	if !cfg.NoSort {
		sort.Strings(paths)
		paths = dedupAdjacent(paths)
	}

	if len(paths) == 0 && cfg.NoCheck {
		paths = []string{originalPattern}
	}

	if cfg.Append && prev != nil {
		return append(prev, paths...)
	}
	if cfg.DoOffs > 0 {
		out := make([]string, cfg.DoOffs, cfg.DoOffs+len(paths))
		return append(out, paths...)
	}
	return paths
}

// dedupAdjacent removes consecutive duplicates from a sorted slice in
// place. Dedup is only meaningful once paths are sorted — with NoSort set,
// the caller gets the Traversal Engine's raw emission order and no dedup
// pass runs, matching glob(3)'s own GLOB_NOSORT behavior.
func dedupAdjacent(sorted []string) []string {
	if len(sorted) < 2 {
		return sorted
	}
	out := sorted[:1]
	for _, s := range sorted[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}
