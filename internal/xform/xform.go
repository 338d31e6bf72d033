// Package xform implements the two spectral transforms the metric
// evaluators are built on: the Walsh-Hadamard transform and the Mobius
// transform (algebraic normal form) of an 8-bit Boolean function.
package xform

import "github.com/nullsbox/sboxkit/internal/bitutil"

// Spectrum is the length-256 Walsh-Hadamard spectrum of a Boolean function.
// Each entry is an even integer in [-256, 256].
type Spectrum [256]int

// Walsh computes the Walsh-Hadamard spectrum of truth table f:
//
//	W[w] = sum over x of (-1)^(f(x) XOR parity(w AND x))
//
// A direct O(N^2) formulation is used; at N=256 this is 65536 additions,
// negligible next to the LAT/DDT builders.
func Walsh(f [256]byte) Spectrum {
	var w Spectrum
	for mask := 0; mask < 256; mask++ {
		sum := 0
		for x := 0; x < 256; x++ {
			bit := f[x] ^ byte(bitutil.DotParity(byte(mask), byte(x)))
			if bit == 0 {
				sum++
			} else {
				sum--
			}
		}
		w[mask] = sum
	}
	return w
}

// ANF computes the algebraic normal form (Mobius transform) of truth table
// f. The result a satisfies f(x) = XOR over all m of (a[m] AND AND_{j in
// m}(x_j)), i.e. a[m] is the ANF coefficient of the monomial indexed by bit
// mask m.
func ANF(f [256]byte) [256]byte {
	a := f
	for i := 0; i < 8; i++ {
		bit := byte(1) << uint(i)
		for m := 0; m < 256; m++ {
			if byte(m)&bit != 0 {
				a[m] ^= a[m^int(bit)]
			}
		}
	}
	return a
}
