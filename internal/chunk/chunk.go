// Package chunk aggregates one contiguous run of whole "name;value" lines.
package chunk

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/dolthub/swiss"

	"github.com/dhartunian/catstats/internal/keyhash"
	"github.com/dhartunian/catstats/internal/stats"
	"github.com/dhartunian/catstats/internal/temp"
)

// DefaultSizeHint presizes the per-chunk maps for a few hundred categories.
const DefaultSizeHint = 1024

var (
	// ErrFormat is matched by every error Process returns.
	ErrFormat = errors.New("malformed input")

	ErrMissingDelimiter = errors.New("missing ';' delimiter")
	ErrEmptyName        = errors.New("empty category name")
	ErrBadValue         = errors.New("value is not [-]?D?D.D")
)

// FormatError describes the first malformed line of a chunk.
type FormatError struct {
	// Offset is the byte offset of the line. Process reports it relative to
	// the chunk; the coordinator rebases it onto the whole input.
	Offset int
	// Line is the 1-based line number within the chunk.
	Line int
	// Text is a copy of (at most the first 64 bytes of) the offending line.
	Text []byte
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d at offset %d: %v: %q", e.Line, e.Offset, e.Err, e.Text)
}

func (e *FormatError) Unwrap() []error {
	return []error{ErrFormat, e.Err}
}

func formatError(line []byte, off, n int, err error) *FormatError {
	return &FormatError{
		Offset: off,
		Line:   n,
		Text:   bytes.Clone(line[:min(len(line), 64)]),
		Err:    err,
	}
}

// Options tunes Process.
type Options struct {
	// Hasher keys categories. Nil selects keyhash.Sum64.
	Hasher keyhash.Func
	// SizeHint presizes the result maps. Zero selects DefaultSizeHint.
	SizeHint int
}

// Result is the partial aggregate of one chunk.
//
// Names holds, for every key in Stats, the first spelling seen for it. The
// slices point into the chunk passed to Process and are only valid while
// that buffer is.
type Result struct {
	Stats *swiss.Map[uint64, *stats.Stat]
	Names *swiss.Map[uint64, []byte]
	Lines int
}

// NewResult returns an empty Result sized for hint categories.
func NewResult(hint int) *Result {
	if hint <= 0 {
		hint = DefaultSizeHint
	}
	return &Result{
		Stats: swiss.NewMap[uint64, *stats.Stat](uint32(hint)),
		Names: swiss.NewMap[uint64, []byte](uint32(hint)),
	}
}

// Len returns the number of distinct keys.
func (r *Result) Len() int {
	return r.Stats.Count()
}

// Process scans data left to right, one line at a time. data must hold only
// whole lines; the final line may omit its '\n'. The first malformed line
// aborts the scan and no partial Result is returned.
func Process(data []byte, opts Options) (*Result, error) {
	hash := opts.Hasher
	if hash == nil {
		hash = keyhash.Sum64
	}
	res := NewResult(opts.SizeHint)
	if len(data) == 0 {
		return res, nil
	}

	for off := 0; off < len(data); {
		line := data[off:]
		end := bytes.IndexByte(line, '\n')
		if end < 0 {
			end = len(line)
		}
		line = line[:end]

		sep := bytes.IndexByte(line, ';')
		switch {
		case sep < 0:
			return nil, formatError(line, off, res.Lines+1, ErrMissingDelimiter)
		case sep == 0:
			return nil, formatError(line, off, res.Lines+1, ErrEmptyName)
		}
		value := line[sep+1:]
		if err := temp.Check(value); err != nil {
			return nil, formatError(line, off, res.Lines+1, fmt.Errorf("%w: %w", ErrBadValue, err))
		}

		// The key covers the delimiter too, so that names that are a prefix
		// of one another still differ in their trailing word.
		key := hash(line[:sep+1])
		v := temp.Parse(value)
		if s, ok := res.Stats.Get(key); ok {
			s.Add(v)
		} else {
			s := stats.New()
			s.Add(v)
			res.Stats.Put(key, &s)
			res.Names.Put(key, line[:sep])
		}

		res.Lines++
		off += end + 1
	}
	return res, nil
}
