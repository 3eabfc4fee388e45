package globx

import "github.com/coregx/globx/internal/flags"

// Flags is a bitset of matching options, mirroring glob(3)'s GLOB_* family
// plus a few project-specific additions. The zero value matches plain
// shell-style globbing with no brace expansion.
type Flags = flags.Flags

const (
	// NoEscape treats backslash as a literal byte rather than an escape.
	NoEscape = flags.NoEscape
	// Period keeps wildcards from matching a leading '.' of a path segment.
	Period = flags.Period
	// Brace enables {a,b} alternation expansion.
	Brace = flags.Brace
	// NoCheck returns the pattern itself as the sole result when nothing
	// matches, instead of ErrNoMatch.
	NoCheck = flags.NoCheck
	// NoSort skips the lexicographic sort of the result, returning paths in
	// whatever order the Traversal Engine visited them.
	NoSort = flags.NoSort
	// Mark appends '/' to every result that is a directory.
	Mark = flags.Mark
	// NoMagic treats a pattern with no wildcards as a plain path existence
	// check, bypassing the matching pipeline entirely.
	NoMagic = flags.NoMagic
	// Tilde expands a leading '~' to the calling user's home directory.
	Tilde = flags.Tilde
	// TildeCheck is like Tilde, but returns ErrAborted when the user has no
	// resolvable home directory instead of leaving '~' literal.
	TildeCheck = flags.TildeCheck
	// OnlyDir restricts results to directories.
	OnlyDir = flags.OnlyDir
	// Err surfaces directory-read errors as ErrAborted instead of silently
	// skipping the unreadable directory.
	Err = flags.Err
	// DoubleStarRecursive makes "**" match zero or more full path
	// components. Without it, "**" is just an ordinary "*".
	DoubleStarRecursive = flags.DoubleStarRecursive
	// ExtGlob enables the ?(...) *(...) +(...) @(...) !(...) extended-glob
	// groups.
	ExtGlob = flags.ExtGlob
	// GitIgnore applies gitignore-style anchoring: a pattern with no
	// interior '/' is unanchored and matches at any depth, as if prefixed
	// with "**/". It takes effect only together with DoubleStarRecursive.
	GitIgnore = flags.GitIgnore
	// Append extends a previously returned *Result instead of starting a
	// fresh one; pass the prior *Result as Glob/GlobAt's prev argument.
	Append = flags.Append
	// DoOffs is accepted but has no effect: Glob, GlobAt, MatchPaths and
	// MatchPathsAt take no offset count and never reserve leading slots.
	DoOffs = flags.DoOffs
)
