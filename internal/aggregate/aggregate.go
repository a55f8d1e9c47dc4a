// Package aggregate fans a mapped input out to one chunk worker per CPU and
// reduces their partial results into a single name-ordered result.
package aggregate

import (
	"errors"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"

	"github.com/dhartunian/catstats/internal/chunk"
	"github.com/dhartunian/catstats/internal/keyhash"
	"github.com/dhartunian/catstats/internal/stats"
)

// Options configures Run.
type Options struct {
	// Workers is the number of slices and goroutines. Zero selects
	// runtime.NumCPU().
	Workers int
	// Hasher and SizeHint are passed to chunk.Process.
	Hasher   keyhash.Func
	SizeHint int
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

// Result is the merged aggregate of a whole input, ordered by name.
type Result struct {
	// Lines is the total number of records.
	Lines int
	// Collisions counts keys for which two chunks recorded different first
	// spellings. Each spelling is still reported under its own name, but
	// within a chunk the two categories were aggregated together.
	Collisions int

	names []string
	stats map[string]*stats.Stat
}

// Len returns the number of distinct categories.
func (r *Result) Len() int {
	return len(r.names)
}

// Names returns the categories in lexicographic order. The slice is shared;
// callers must not modify it.
func (r *Result) Names() []string {
	return r.names
}

// Get returns the merged stats for name.
func (r *Result) Get(name string) (stats.Stat, bool) {
	s, ok := r.stats[name]
	if !ok {
		return stats.Stat{}, false
	}
	return *s, true
}

// Each calls fn for every category in name order.
func (r *Result) Each(fn func(name string, s stats.Stat)) {
	for _, name := range r.names {
		fn(name, *r.stats[name])
	}
}

// Run aggregates data, which must stay valid and unmodified until Run
// returns. Every worker has finished before Run returns, whether or not it
// fails. A malformed line in any chunk fails the whole run with an error
// matching chunk.ErrFormat; no partial Result is returned.
func Run(data []byte, opts Options) (*Result, error) {
	parts := Partition(data, opts.workers())
	copts := chunk.Options{
		Hasher:   opts.Hasher,
		SizeHint: opts.SizeHint,
	}

	// Each worker sends exactly one message, so the buffer never blocks. An
	// empty slice sends nil.
	results := make(chan *chunk.Result, len(parts))
	var g errgroup.Group
	var base int
	for i, part := range parts {
		i, part, off := i, part, base
		base += len(part)
		g.Go(func() error {
			if len(part) == 0 {
				results <- nil
				return nil
			}
			res, err := chunk.Process(part, copts)
			if err != nil {
				var fe *chunk.FormatError
				if errors.As(err, &fe) {
					fe.Offset += off
				}
				return fmt.Errorf("aggregate: chunk %d: %w", i, err)
			}
			results <- res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	return reduce(results), nil
}

// reduce runs on the calling goroutine only, after every worker is done.
func reduce(results <-chan *chunk.Result) *Result {
	r := &Result{stats: make(map[string]*stats.Stat, chunk.DefaultSizeHint)}
	spellings := make(map[uint64]string, chunk.DefaultSizeHint)

	for res := range results {
		if res == nil {
			continue
		}
		r.Lines += res.Lines
		res.Stats.Iter(func(key uint64, s *stats.Stat) bool {
			raw, _ := res.Names.Get(key)

			agg, ok := r.stats[string(raw)]
			if !ok {
				fresh := stats.New()
				agg = &fresh
				r.stats[string(raw)] = agg
			}
			agg.Merge(*s)

			if prev, ok := spellings[key]; !ok {
				spellings[key] = string(raw)
			} else if prev != string(raw) {
				r.Collisions++
			}
			return false
		})
	}

	r.names = maps.Keys(r.stats)
	slices.Sort(r.names)
	return r
}
