//go:build linux

package mapfile

import (
	"os"

	"golang.org/x/sys/unix"
)

func mapFile(f *os.File, size int) (*File, error) {
	// MAP_POPULATE pre-faults the whole file before Mmap returns.
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED|unix.MAP_POPULATE)
	if err != nil {
		return nil, err
	}
	// Read-ahead hints only. The mapping is valid either way, so a kernel
	// that rejects them costs speed, not correctness.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
	_ = unix.Madvise(data, unix.MADV_WILLNEED)
	return &File{
		data:  data,
		close: func() error { return unix.Munmap(data) },
	}, nil
}
