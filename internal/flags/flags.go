// Package flags defines the matching-behavior bitset of the engine. It lives
// in its own package (rather than the root package) so that internal
// packages could depend on it without creating an import cycle back to the
// root package, which re-exports it as globx.Flags. The root package reads
// the bits and passes the individual options to internal/scan,
// internal/brace, internal/match, internal/strategy and internal/walk as
// plain booleans.
package flags

// Flags is a bitset of matching options, mirroring glob(3)'s GLOB_* flags
// plus the project-specific additions called out in spec §3.
type Flags uint32

const (
	// NoEscape treats backslash as a literal byte, not an escape.
	NoEscape Flags = 1 << iota
	// Period keeps wildcards from matching a leading '.' of a segment.
	Period
	// Brace enables {a,b} alternation expansion.
	Brace
	// NoCheck returns the pattern literally as the sole result on no match.
	NoCheck
	// NoSort skips the lexicographic sort of the output.
	NoSort
	// Mark appends '/' to directory results.
	Mark
	// NoMagic treats a pattern with no wildcards as a literal path.
	NoMagic
	// Tilde expands a leading '~' to the user's home directory.
	Tilde
	// TildeCheck is like Tilde but fails if the user has no home directory.
	TildeCheck
	// OnlyDir emits only results that are directories.
	OnlyDir
	// Err surfaces directory-read errors instead of ignoring them.
	Err
	// DoubleStarRecursive makes "**" match zero or more full path components.
	// When unset, "**" is treated as a plain "*".
	DoubleStarRecursive
	// ExtGlob enables ?(...) *(...) +(...) @(...) !(...) extended groups.
	ExtGlob
	// GitIgnore applies gitignore-style anchor rules (spec §11): a pattern
	// with no interior '/' is unanchored and may match at any depth. It takes
	// effect only together with DoubleStarRecursive.
	GitIgnore
	// Append preserves prior entries in the caller-supplied result container.
	Append
	// DoOffs names glob(3)'s leading-slot reservation; the root entry points
	// take no offset count, so setting it reserves no slots.
	DoOffs
)

// Has reports whether all bits in want are set in f.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}
