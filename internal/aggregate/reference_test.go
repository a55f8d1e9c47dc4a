package aggregate

import (
	"bufio"
	"bytes"
	"math"
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/dhartunian/catstats/internal/temp"
)

// record is the naive single-threaded aggregate the fast path is checked
// against.
type record struct {
	min   float64
	max   float64
	sum   float64
	count float64
}

func reference(t *testing.T, data []byte) (map[string]*record, []string, int) {
	t.Helper()
	temps := make(map[string]*record)
	var cities []string
	var lines int

	s := bufio.NewScanner(bytes.NewReader(data))
	for s.Scan() {
		lines++
		cityAndTemp := strings.Split(s.Text(), ";")
		if len(cityAndTemp) != 2 {
			t.Fatalf("reference: malformed line %q", s.Text())
		}
		if temps[cityAndTemp[0]] == nil {
			temps[cityAndTemp[0]] = &record{
				min: math.MaxFloat64,
				max: -math.MaxFloat64,
			}
			cities = append(cities, cityAndTemp[0])
		}
		v, err := strconv.ParseFloat(cityAndTemp[1], 64)
		if err != nil {
			t.Fatalf("reference: %v", err)
		}
		r := temps[cityAndTemp[0]]
		r.min = min(r.min, v)
		r.max = max(r.max, v)
		r.sum += v
		r.count++
	}
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
	slices.Sort(cities)
	return temps, cities, lines
}

var testStations = []string{
	"Hamburg", "Palermo", "Abidjan", "Jos", "Wau", "Las Palmas de Gran Canaria",
	"Petropavlovsk-Kamchatsky", "San Jose", "San José", "São Paulo", "İzmir",
	"Zürich", "Tromsø", "a", "ab", "abc", "St. John's", "Xi'an",
}

// generate returns n random records, with or without a final '\n'.
func generate(rng *rand.Rand, n int, trailingNewline bool) []byte {
	var buf []byte
	for i := 0; i < n; i++ {
		buf = append(buf, testStations[rng.Intn(len(testStations))]...)
		buf = append(buf, ';')
		buf = temp.Append(buf, temp.Scaled(rng.Intn(1999)-999))
		buf = append(buf, '\n')
	}
	if !trailingNewline && len(buf) > 0 {
		buf = buf[:len(buf)-1]
	}
	return buf
}
