//go:build !linux

package mapfile

import (
	"os"

	"golang.org/x/exp/mmap"
)

// Without MAP_POPULATE there is no portable way to pre-fault a mapping, so the
// file is copied once into a resident heap buffer instead.
func mapFile(f *os.File, size int) (*File, error) {
	r, err := mmap.Open(f.Name())
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil {
		return nil, err
	}
	return &File{
		data:  data[:min(size, len(data))],
		close: func() error { return nil },
	}, nil
}
