package walk

import "os"

// OSReader is the DirReader backed by the real filesystem.
type OSReader struct{}

// NewOSReader returns the default, production DirReader.
func NewOSReader() OSReader { return OSReader{} }

func (OSReader) ReadDir(path string) ([]Entry, error) {
	des, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(des))
	for _, de := range des {
		out = append(out, Entry{Name: de.Name(), Kind: kindOfMode(de.Type())})
	}
	return out, nil
}

func (OSReader) Lstat(path string) (Entry, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Name: fi.Name(), Kind: kindOfMode(fi.Mode())}, nil
}

func kindOfMode(m os.FileMode) EntryKind {
	switch {
	case m.IsDir():
		return KindDir
	case m.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}
