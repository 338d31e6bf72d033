package bitutil

import "testing"

func TestWeight(t *testing.T) {
	cases := []struct {
		x    byte
		want int
	}{
		{0x00, 0},
		{0x01, 1},
		{0xff, 8},
		{0x0f, 4},
		{0xaa, 4},
	}
	for _, c := range cases {
		if got := Weight(c.x); got != c.want {
			t.Errorf("Weight(%#x) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestParityMatchesWeightParity(t *testing.T) {
	for x := 0; x < 256; x++ {
		want := Weight(byte(x)) & 1
		if got := Parity(byte(x)); got != want {
			t.Errorf("Parity(%#x) = %d, want %d", x, got, want)
		}
	}
}

func TestDotParityIsParityOfAnd(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for x := 0; x < 256; x += 23 {
			want := Weight(byte(a) & byte(x)) & 1
			if got := DotParity(byte(a), byte(x)); got != want {
				t.Errorf("DotParity(%d, %d) = %d, want %d", a, x, got, want)
			}
		}
	}
}
