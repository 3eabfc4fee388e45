package walk

import "path"

// Emit receives one matched path and whether it is a directory. The
// Traversal Engine never marks, sorts, or dedups — that's the Result
// Assembler's job (spec §4.6).
type Emit func(matchedPath string, isDir bool)

// Walker drives the directory-entry state machine of spec §4.5.
type Walker struct {
	cfg Config
}

// New returns a Walker bound to cfg. cfg.Reader defaults to OSReader if nil.
func New(cfg Config) *Walker {
	if cfg.Reader == nil {
		cfg.Reader = NewOSReader()
	}
	return &Walker{cfg: cfg}
}

// Walk drives components against the tree rooted at startDir, emitting
// every matched path via emit. startDir is "/" for an absolute pattern and
// the resolved base directory for a relative one.
func (w *Walker) Walk(startDir string, components []Component, emit Emit) error {
	if len(components) == 0 {
		return nil
	}
	if components[0].IsRecursive {
		return w.walkRecursive(startDir, components, 0, emit)
	}
	return w.walkDir(startDir, components, 0, emit)
}

func (w *Walker) passesOnlyDir(isDir bool) bool {
	return !w.cfg.OnlyDir || isDir
}

// walkDir matches components[idx] (a non-recursive component) against the
// entries of dirPath.
func (w *Walker) walkDir(dirPath string, components []Component, idx int, emit Emit) error {
	comp := &components[idx]
	last := idx == len(components)-1

	// Literal shortcut (spec §4.5): a single literal final component needs
	// no directory listing at all, just a direct stat of the joined path.
	if last && comp.allLiteral && len(comp.literals) == 1 {
		child := path.Join(dirPath, comp.literalName)
		e, err := w.cfg.Reader.Lstat(child)
		if err != nil {
			return nil // nonexistent path is not an error, just no match
		}
		if w.passesOnlyDir(e.Kind == KindDir) {
			emit(child, e.Kind == KindDir)
		}
		return nil
	}

	entries, err := w.cfg.Reader.ReadDir(dirPath)
	if err != nil {
		if w.cfg.handleErr(dirPath, err) {
			return ErrAborted
		}
		return nil
	}

	for _, e := range entries {
		if e.Name == "." || e.Name == ".." {
			continue
		}
		if !comp.Match(e.Name) {
			continue
		}
		child := path.Join(dirPath, e.Name)

		if last {
			if w.passesOnlyDir(e.Kind == KindDir) {
				emit(child, e.Kind == KindDir)
			}
			continue
		}

		if e.Kind != KindDir {
			continue
		}
		next := components[idx+1]
		var werr error
		if next.IsRecursive {
			werr = w.walkRecursive(child, components, idx+1, emit)
		} else {
			werr = w.walkDir(child, components, idx+1, emit)
		}
		if werr != nil {
			return werr
		}
	}
	return nil
}

// walkRecursive matches components[idx] (a "**" component) against dirPath,
// which is known to be a directory. The two branches are independent and
// both run: "**" matches zero components (try idx+1 directly against
// dirPath's entries, or against dirPath itself if idx+1 is past the end)
// and "**" matches one-or-more components (descend into every subdirectory
// and try again at the same idx).
func (w *Walker) walkRecursive(dirPath string, components []Component, idx int, emit Emit) error {
	last := idx == len(components)-1

	if last {
		// Zero-match branch collapses to: dirPath itself is a candidate.
		e, err := w.cfg.Reader.Lstat(dirPath)
		if err == nil && w.passesOnlyDir(e.Kind == KindDir) {
			emit(dirPath, e.Kind == KindDir)
		}
	} else {
		next := components[idx+1]
		var werr error
		if next.IsRecursive {
			werr = w.walkRecursive(dirPath, components, idx+1, emit)
		} else {
			werr = w.walkDir(dirPath, components, idx+1, emit)
		}
		if werr != nil {
			return werr
		}
	}

	entries, err := w.cfg.Reader.ReadDir(dirPath)
	if err != nil {
		if w.cfg.handleErr(dirPath, err) {
			return ErrAborted
		}
		return nil
	}

	for _, e := range entries {
		if e.Name == "." || e.Name == ".." {
			continue
		}
		child := path.Join(dirPath, e.Name)

		if e.Kind != KindDir {
			// A file reached only by the recursive descent (no component
			// follows "**") is itself a match; it never gets a chance to
			// be tested against a later component the way a directory does.
			if last && w.passesOnlyDir(false) {
				emit(child, false)
			}
			continue
		}

		if err := w.walkRecursive(child, components, idx, emit); err != nil {
			return err
		}
	}
	return nil
}

// Literal checks a whole pattern that the scanner found to contain no
// wildcards at all (spec's NOMAGIC behavior): the Strategy Analyzer and
// Component Matcher are bypassed entirely in favor of one direct stat.
func (w *Walker) Literal(startDir, literalPath string) (matched bool, isDir bool) {
	full := path.Join(startDir, literalPath)
	e, err := w.cfg.Reader.Lstat(full)
	if err != nil {
		return false, false
	}
	if !w.passesOnlyDir(e.Kind == KindDir) {
		return false, false
	}
	return true, e.Kind == KindDir
}
