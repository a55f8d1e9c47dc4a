// Package keyhash maps short category names to 64-bit aggregation keys.
//
// Keys are not collision free. Two distinct names that hash equal are
// aggregated together; callers accept that in exchange for never hashing or
// comparing owned strings on the hot path.
package keyhash

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/zeebo/xxh3"
)

// Func hashes a name (or the name plus its trailing delimiter) to a key.
type Func func(b []byte) uint64

const multiplier = 0x517cc1b727220a95

func mix(h, word uint64) uint64 {
	return (bits.RotateLeft64(h, 5) ^ word) * multiplier
}

// Sum64 folds the length and three 8-byte words of b, taken from its start,
// its middle and its end, with a multiply-rotate-xor round each. Words that
// run past the end of a short input are zero padded. Every byte of a name up
// to 24 bytes long reaches the key.
func Sum64(b []byte) uint64 {
	n := len(b)
	h := mix(0, uint64(n))
	h = mix(h, load(b, 0))
	h = mix(h, load(b, max(n/2-4, 0)))
	return mix(h, load(b, max(n-8, 0)))
}

// load reads the little-endian word at b[off:], zero padded to 8 bytes.
func load(b []byte, off int) uint64 {
	var w [8]byte
	copy(w[:], b[off:])
	return binary.LittleEndian.Uint64(w[:])
}

// XXH3 is the stronger, slightly slower alternative to Sum64.
func XXH3(b []byte) uint64 {
	return xxh3.Hash(b)
}

// ByName resolves a hasher by its configuration name. The empty name selects
// Sum64.
func ByName(name string) (Func, error) {
	switch name {
	case "", "fx":
		return Sum64, nil
	case "xxh3":
		return XXH3, nil
	}
	return nil, fmt.Errorf("keyhash: unknown hasher %q (use fx or xxh3)", name)
}
