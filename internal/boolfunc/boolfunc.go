// Package boolfunc derives and memoises the eight Boolean-function truth
// tables projected out of an 8-bit S-box, one per output bit. Each table is
// built lazily on first request and cached for the lifetime of the Cache
// value, matching the at-most-once initialisation the analyser relies on
// when shared across callers.
package boolfunc

import "sync"

// TruthTable is the 256-entry truth table of a single Boolean function over
// GF(2)^8. Entry x holds f(x) as 0 or 1.
type TruthTable [256]byte

// Cache lazily builds and memoises the eight output-bit truth tables of an
// S-box. The zero value is not usable; construct with New.
type Cache struct {
	sbox  [256]byte
	once  [8]sync.Once
	table [8]TruthTable
}

// New returns a Cache projecting output-bit truth tables out of sbox. sbox
// is copied; the caller's array is not retained.
func New(sbox [256]byte) *Cache {
	return &Cache{sbox: sbox}
}

// Bit returns the truth table of output bit i (0 = LSB .. 7 = MSB),
// building it on first call and returning the memoised copy thereafter.
func (c *Cache) Bit(i int) TruthTable {
	c.once[i].Do(func() {
		var t TruthTable
		for x := 0; x < 256; x++ {
			t[x] = (c.sbox[x] >> uint(i)) & 1
		}
		c.table[i] = t
	})
	return c.table[i]
}

// Xor returns the truth table of f_i XOR f_j, used by the BIC-NL metric. It is computed fresh each call since the (i,j) pair
// space is only consumed a handful of times per analysis.
func (c *Cache) Xor(i, j int) TruthTable {
	fi := c.Bit(i)
	fj := c.Bit(j)
	var t TruthTable
	for x := 0; x < 256; x++ {
		t[x] = fi[x] ^ fj[x]
	}
	return t
}
