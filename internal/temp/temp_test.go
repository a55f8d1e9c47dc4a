package temp

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Scaled
	}{
		{"0.0", 0},
		{"1.2", 12},
		{"9.9", 99},
		{"12.3", 123},
		{"99.9", 999},
		{"-0.1", -1},
		{"-4.5", -45},
		{"-12.0", -120},
		{"-99.9", -999},
		{"10.0", 100},
		{"-0.0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Parse([]byte(tt.in)); got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	buf := make([]byte, 0, 8)
	for v := MinValue; v <= MaxValue; v++ {
		buf = Append(buf[:0], v)
		if err := Check(buf); err != nil {
			t.Fatalf("Append(%d) = %q does not pass Check: %v", v, buf, err)
		}
		if got := Parse(buf); got != v {
			t.Fatalf("Parse(Append(%d)) = %d (text %q)", v, got, buf)
		}
	}
}

func TestAppend(t *testing.T) {
	tests := []struct {
		in   Scaled
		want string
	}{
		{0, "0.0"},
		{-1, "-0.1"},
		{5, "0.5"},
		{95, "9.5"},
		{120, "12.0"},
		{-999, "-99.9"},
		{999, "99.9"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Scaled(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCheck(t *testing.T) {
	good := []string{"0.0", "-1.5", "12.3", "-99.9"}
	for _, s := range good {
		if err := Check([]byte(s)); err != nil {
			t.Errorf("Check(%q) = %v, want nil", s, err)
		}
	}
	bad := []string{"", "-", "1", "1.", ".5", "1.23", "123.4", "--1.0", "a.b", "1,5", "+1.0", "-123.4", "12.34"}
	for _, s := range bad {
		if err := Check([]byte(s)); !errors.Is(err, ErrMalformed) {
			t.Errorf("Check(%q) = %v, want ErrMalformed", s, err)
		}
	}
}

func TestFloat(t *testing.T) {
	if got := Scaled(-123).Float(); got != -12.3 {
		t.Errorf("Float() = %v, want -12.3", got)
	}
}

func TestParseNoAllocs(t *testing.T) {
	in := []byte("-12.3")
	allocs := testing.AllocsPerRun(100, func() {
		_ = Parse(in)
	})
	if allocs > 0 {
		t.Errorf("Parse allocated: %f allocs/op", allocs)
	}
}

var sink Scaled

func BenchmarkParse(b *testing.B) {
	tokens := [][]byte{[]byte("1.2"), []byte("-3.4"), []byte("56.7"), []byte("-89.0")}
	for i := 0; i < b.N; i++ {
		sink += Parse(tokens[i&3])
	}
}
