// Package tables builds the two O(2^16)/O(2^24) tables every metric
// evaluator reads from: the Linear Approximation Table (LAT) and the
// Difference Distribution Table (DDT) of an 8-bit S-box.
package tables

import (
	"context"

	"github.com/nullsbox/sboxkit/internal/bitutil"
)

// LAT is the 256x256 linear approximation table. Entry [a][b] is
// (#{x : parity(a AND x) = parity(b AND SBox[x])}) - 128, in [-128, 128].
type LAT [256][256]int16

// DDT is the 256x256 difference distribution table. Entry [alpha][beta] is
// #{x : SBox[x XOR alpha] XOR SBox[x] = beta}, in [0, 256].
type DDT [256][256]uint16

// BuildLAT computes the linear approximation table of sbox. This is the
// costliest kernel in the package (2^24 basic operations); ctx is checked
// once per outer row so a caller can cancel a long-running analysis before
// it completes.
func BuildLAT(ctx context.Context, sbox [256]byte) (LAT, error) {
	var lat LAT
	for a := 0; a < 256; a++ {
		if err := ctx.Err(); err != nil {
			return LAT{}, err
		}
		for b := 0; b < 256; b++ {
			count := 0
			for x := 0; x < 256; x++ {
				if bitutil.DotParity(byte(a), byte(x)) == bitutil.DotParity(byte(b), sbox[x]) {
					count++
				}
			}
			lat[a][b] = int16(count - 128)
		}
	}
	return lat, nil
}

// BuildDDT computes the difference distribution table of sbox.
func BuildDDT(ctx context.Context, sbox [256]byte) (DDT, error) {
	var ddt DDT
	for x1 := 0; x1 < 256; x1++ {
		if err := ctx.Err(); err != nil {
			return DDT{}, err
		}
		for x2 := 0; x2 < 256; x2++ {
			alpha := byte(x1) ^ byte(x2)
			beta := sbox[x1] ^ sbox[x2]
			ddt[alpha][beta]++
		}
	}
	return ddt, nil
}
