package walk

import (
	"fmt"
	"path"
	"sort"
)

// MemReader is an in-memory DirReader, used by tests to exercise the
// Traversal Engine's state machine without touching a real filesystem.
//
// Construct it with NewMemReader, then declare the tree with Dir and File.
type MemReader struct {
	dirs        map[string][]Entry // normalized dir path -> its entries
	failReadDir map[string]error   // normalized dir path -> error ReadDir should return
}

// NewMemReader returns an empty in-memory tree rooted at "/".
func NewMemReader() *MemReader {
	return &MemReader{dirs: map[string][]Entry{"/": nil}, failReadDir: map[string]error{}}
}

// FailReadDir makes ReadDir(dirPath) return err instead of listing entries,
// so tests can exercise the Err flag / ErrFunc abort path (spec §7) without
// a real unreadable directory.
func (m *MemReader) FailReadDir(dirPath string, err error) *MemReader {
	m.failReadDir[clean(dirPath)] = err
	return m
}

// Dir declares dirPath as a directory, creating any missing ancestors and
// registering dirPath as an entry of its parent.
func (m *MemReader) Dir(dirPath string) *MemReader {
	dirPath = clean(dirPath)
	if _, ok := m.dirs[dirPath]; ok {
		return m
	}
	m.dirs[dirPath] = nil
	if dirPath != "/" {
		parent := path.Dir(dirPath)
		m.Dir(parent)
		m.addEntry(parent, Entry{Name: path.Base(dirPath), Kind: KindDir})
	}
	return m
}

// File declares filePath as a regular file, creating any missing ancestor
// directories.
func (m *MemReader) File(filePath string) *MemReader {
	filePath = clean(filePath)
	parent := path.Dir(filePath)
	m.Dir(parent)
	m.addEntry(parent, Entry{Name: path.Base(filePath), Kind: KindFile})
	return m
}

func (m *MemReader) addEntry(dir string, e Entry) {
	for _, existing := range m.dirs[dir] {
		if existing.Name == e.Name {
			return
		}
	}
	m.dirs[dir] = append(m.dirs[dir], e)
	sort.Slice(m.dirs[dir], func(i, j int) bool { return m.dirs[dir][i].Name < m.dirs[dir][j].Name })
}

func (m *MemReader) ReadDir(dirPath string) ([]Entry, error) {
	dirPath = clean(dirPath)
	if err, failing := m.failReadDir[dirPath]; failing {
		return nil, err
	}
	entries, ok := m.dirs[dirPath]
	if !ok {
		return nil, fmt.Errorf("walk: no such directory: %s", dirPath)
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, nil
}

func (m *MemReader) Lstat(p string) (Entry, error) {
	p = clean(p)
	if p == "/" {
		return Entry{Name: "/", Kind: KindDir}, nil
	}
	parent := path.Dir(p)
	base := path.Base(p)
	for _, e := range m.dirs[parent] {
		if e.Name == base {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("walk: no such file or directory: %s", p)
}

func clean(p string) string {
	if p == "" {
		return "/"
	}
	return path.Clean(p)
}
