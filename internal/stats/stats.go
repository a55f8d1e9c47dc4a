// Package stats holds the running min/max/sum/count aggregate per category.
package stats

import (
	"math"

	"github.com/dhartunian/catstats/internal/temp"
)

// Stat is a fixed-size running aggregate. The zero value is not ready for
// use; start from New so that Min and Max hold their sentinels.
type Stat struct {
	Count uint64
	Sum   int64
	Min   temp.Scaled
	Max   temp.Scaled
}

// New returns an empty aggregate. Its Min and Max are sentinel extremes that
// the first Add replaces; they are never meaningful while Count is zero.
func New() Stat {
	return Stat{Min: math.MaxInt16, Max: math.MinInt16}
}

// Add folds one reading into s.
func (s *Stat) Add(v temp.Scaled) {
	x := int64(v)
	s.Min = temp.Scaled(minBranchless(int64(s.Min), x))
	s.Max = temp.Scaled(maxBranchless(int64(s.Max), x))
	s.Sum += x
	s.Count++
}

// Merge folds every reading that went into o into s. Merge is associative
// and commutative, and merging New() is a no-op.
func (s *Stat) Merge(o Stat) {
	s.Min = temp.Scaled(minBranchless(int64(s.Min), int64(o.Min)))
	s.Max = temp.Scaled(maxBranchless(int64(s.Max), int64(o.Max)))
	s.Sum += o.Sum
	s.Count += o.Count
}

// Empty reports whether no reading has been added.
func (s Stat) Empty() bool {
	return s.Count == 0
}

// Mean returns the average reading, unscaled. It is NaN for an empty Stat.
func (s Stat) Mean() float64 {
	return float64(s.Sum) / float64(s.Count) / 10
}

// The operands are widened int16 values, so x-y never overflows and its sign
// bit selects the result.
func minBranchless(x, y int64) int64 {
	return y ^ ((x ^ y) & ((x - y) >> 63))
}

func maxBranchless(x, y int64) int64 {
	return x ^ ((x ^ y) & ((x - y) >> 63))
}
