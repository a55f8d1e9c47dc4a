// Package temp parses and formats fixed-point readings with exactly one
// fractional digit, stored as value*10.
package temp

import (
	"errors"
	"fmt"
	"strconv"
)

// Scaled is a reading multiplied by ten. Valid readings lie in [-999, 999].
type Scaled int16

const (
	MinValue Scaled = -999
	MaxValue Scaled = 999
)

// ErrMalformed is returned by Check for tokens outside [-]?D?D.D.
var ErrMalformed = errors.New("malformed reading")

// Parse converts a token of the form [-]?D?D.D into its value times ten.
//
// The shape is a precondition and is not validated. The result for any other
// input is unspecified, and a token shorter than 3 bytes may panic.
// Call Check first when the input is not trusted.
func Parse(b []byte) Scaled {
	// Bit 4 (0x10) is set for every ASCII digit and clear for both '-'
	// (0x2D) and '.' (0x2E).
	//
	//   x.x     b[0] digit, b[1] '.'
	//   xx.x    b[0] digit, b[1] digit
	//   -x.x    b[0] '-',   b[2] '.'
	//   -xx.x   b[0] '-',   b[2] digit
	neg := int(^b[0]>>4) & 1
	d := b[neg:]
	two := int(d[1]>>4) & 1

	hi := int(d[0] & 0x0F)
	lo := int(d[1] & 0x0F)
	frac := int(d[len(d)-1] & 0x0F)

	// one integer digit:  hi*10 + frac
	// two integer digits: hi*100 + lo*10 + frac
	abs := hi*(10+90*two) + lo*10*two + frac
	return Scaled((abs ^ -neg) + neg)
}

// Check reports whether b has the shape Parse expects.
func Check(b []byte) error {
	d := b
	if len(d) > 0 && d[0] == '-' {
		d = d[1:]
	}
	switch {
	case len(d) == 3 && isDigit(d[0]) && d[1] == '.' && isDigit(d[2]):
	case len(d) == 4 && isDigit(d[0]) && isDigit(d[1]) && d[2] == '.' && isDigit(d[3]):
	default:
		return fmt.Errorf("%w: %q", ErrMalformed, b)
	}
	return nil
}

func isDigit(c byte) bool {
	return c-'0' <= 9
}

// Append appends the one-decimal text form of v to dst.
func Append(dst []byte, v Scaled) []byte {
	n := int(v)
	if n < 0 {
		dst = append(dst, '-')
		n = -n
	}
	dst = strconv.AppendInt(dst, int64(n/10), 10)
	return append(dst, '.', byte('0'+n%10))
}

func (v Scaled) String() string {
	return string(Append(make([]byte, 0, 8), v))
}

// Float returns the reading as a float64, undoing the scale.
func (v Scaled) Float() float64 {
	return float64(v) / 10
}
