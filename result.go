package globx

// Result holds the paths produced by a Glob or GlobAt call.
//
// Its Paths slice is ready to use as-is; Free exists only for symmetry with
// glob(3)'s globfree and does nothing, since Go's garbage collector already
// owns the backing array.
type Result struct {
	paths []string
}

// Paths returns the matched paths, sorted unless NoSort was set and marked
// with a trailing '/' for directories when Mark was set. No leading empty
// entries are reserved, whether or not DoOffs was set.
func (r *Result) Paths() []string {
	if r == nil {
		return nil
	}
	return r.paths
}

// Len is a convenience for len(r.Paths()).
func (r *Result) Len() int { return len(r.Paths()) }

// Free is a no-op kept for API symmetry with glob(3)'s globfree(3).
func (r *Result) Free() {}
