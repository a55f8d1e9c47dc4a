// Package mapfile exposes a whole file as one read-only, resident byte slice.
package mapfile

import (
	"fmt"
	"os"
)

// File is a mapped input file. Data stays valid until Close.
type File struct {
	name  string
	data  []byte
	close func() error
}

// Open maps path read-only and faults its pages in before returning, so
// readers of Data never stall on a page fault.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: open %q: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("mapfile: stat %q: %w", path, err)
	}
	size := fi.Size()
	if size < 0 || size != int64(int(size)) {
		return nil, fmt.Errorf("mapfile: %q is too large to map", path)
	}
	if size == 0 {
		return &File{name: path, close: func() error { return nil }}, nil
	}

	m, err := mapFile(f, int(size))
	if err != nil {
		return nil, fmt.Errorf("mapfile: map %q: %w", path, err)
	}
	m.name = path
	return m, nil
}

// Data returns the file contents.
func (m *File) Data() []byte {
	return m.data
}

// Name returns the path the file was opened with.
func (m *File) Name() string {
	return m.name
}

// Close releases the mapping. Data must not be used afterwards.
func (m *File) Close() error {
	if m.close == nil {
		return nil
	}
	err := m.close()
	m.data, m.close = nil, nil
	if err != nil {
		return fmt.Errorf("mapfile: close %q: %w", m.name, err)
	}
	return nil
}
