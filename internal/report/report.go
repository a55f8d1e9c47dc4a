// Package report renders an aggregate.Result as the plain-text summary.
package report

import (
	"bufio"
	"io"
	"strconv"

	"github.com/dhartunian/catstats/internal/aggregate"
	"github.com/dhartunian/catstats/internal/stats"
	"github.com/dhartunian/catstats/internal/temp"
)

// Header starts the report and labels its final category count.
const Header = "Category: min / avg / max"

// Write renders r to w:
//
//	Category: min / avg / max
//	NAME: MIN  / AVG / MAX
//	...
//
//	total N measurements
//	Category: min / avg / max, total K categories
func Write(w io.Writer, r *aggregate.Result) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 128)

	buf = append(buf, Header...)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}

	var err error
	r.Each(func(name string, s stats.Stat) {
		if err != nil {
			return
		}
		buf = AppendLine(buf[:0], name, s)
		_, err = bw.Write(buf)
	})
	if err != nil {
		return err
	}

	buf = append(buf[:0], "\ntotal "...)
	buf = strconv.AppendInt(buf, int64(r.Lines), 10)
	buf = append(buf, " measurements\n"...)
	buf = append(buf, Header...)
	buf = append(buf, ", total "...)
	buf = strconv.AppendInt(buf, int64(r.Len()), 10)
	buf = append(buf, " categories\n"...)
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	return bw.Flush()
}

// AppendLine appends one "NAME: MIN  / AVG / MAX\n" row. MIN and MAX are
// exact; AVG is rounded to one decimal.
func AppendLine(dst []byte, name string, s stats.Stat) []byte {
	dst = append(dst, name...)
	dst = append(dst, ": "...)
	dst = temp.Append(dst, s.Min)
	dst = append(dst, "  / "...)
	dst = strconv.AppendFloat(dst, s.Mean(), 'f', 1, 64)
	dst = append(dst, " / "...)
	dst = temp.Append(dst, s.Max)
	return append(dst, '\n')
}
