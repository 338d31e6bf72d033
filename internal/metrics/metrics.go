// Package metrics implements the ten cryptographic quality metrics the
// analyser reports for an 8-bit S-box: nonlinearity, SAC, BIC-NL, BIC-SAC,
// LAP, DAP/differential uniformity, algebraic degree, transparency order
// and correlation immunity, plus the balanced/bijection predicates.
package metrics

import (
	"math"

	"github.com/nullsbox/sboxkit/internal/bitutil"
	"github.com/nullsbox/sboxkit/internal/boolfunc"
	"github.com/nullsbox/sboxkit/internal/tables"
	"github.com/nullsbox/sboxkit/internal/xform"
)

// SAC is the result of the Strict Avalanche Criterion evaluation: the full
// 8x8 matrix of bit-flip probabilities, its mean absolute deviation from
// 0.5 (Score) and its largest single deviation (Max).
type SAC struct {
	Matrix [8][8]float64
	Score  float64
	Max    float64
}

// BICNL is the Bit Independence Criterion nonlinearity summary: the
// nonlinearity of f_i XOR f_j for every unordered pair of output bits.
type BICNL struct {
	Min    int
	Mean   float64
	Vector [28]int
}

// BICSAC is the Bit Independence Criterion SAC summary: the absolute
// normalized correlation between every pair of output bit streams.
type BICSAC struct {
	Max    float64
	Mean   float64
	Vector [28]float64
}

// LAP is the linear approximation probability summary.
type LAP struct {
	MaxBias int
	LAP     float64
}

// DAP is the differential approximation probability summary.
type DAP struct {
	DifferentialUniformity int
	DAP                    float64
}

// nlFromWalsh computes nonlinearity from a Walsh spectrum:
// NL = 2^7 - (max_{w!=0} |W[w]|) / 2.
func nlFromWalsh(w xform.Spectrum) int {
	max := 0
	for mask := 1; mask < 256; mask++ {
		if a := absInt(w[mask]); a > max {
			max = a
		}
	}
	return 128 - max/2
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Nonlinearity is the minimum, over all eight output bits, of 2^7 minus
// half the largest non-trivial Walsh coefficient.
func Nonlinearity(cache *boolfunc.Cache) int {
	maxOfMax := 0
	for i := 0; i < 8; i++ {
		w := xform.Walsh(cache.Bit(i))
		m := 0
		for mask := 1; mask < 256; mask++ {
			if a := absInt(w[mask]); a > m {
				m = a
			}
		}
		if m > maxOfMax {
			maxOfMax = m
		}
	}
	return 128 - maxOfMax/2
}

// EvaluateSAC computes the Strict Avalanche Criterion matrix of sbox.
func EvaluateSAC(sbox [256]byte) SAC {
	var res SAC
	var sum, max float64
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			count := 0
			for x := 0; x < 256; x++ {
				flipped := sbox[x] ^ sbox[x^(1<<uint(i))]
				if (flipped>>uint(j))&1 == 1 {
					count++
				}
			}
			p := float64(count) / 256
			res.Matrix[i][j] = p
			dev := math.Abs(p - 0.5)
			sum += dev
			if dev > max {
				max = dev
			}
		}
	}
	res.Score = sum / 64
	res.Max = max
	return res
}

// EvaluateBICNL computes the Bit Independence Criterion nonlinearity
// summary over all 28 unordered pairs of output bits.
func EvaluateBICNL(cache *boolfunc.Cache) BICNL {
	var res BICNL
	idx := 0
	sum := 0
	res.Min = 128
	for i := 0; i < 8; i++ {
		for j := i + 1; j < 8; j++ {
			g := cache.Xor(i, j)
			nl := nlFromWalsh(xform.Walsh(g))
			res.Vector[idx] = nl
			sum += nl
			if nl < res.Min {
				res.Min = nl
			}
			idx++
		}
	}
	res.Mean = float64(sum) / float64(idx)
	return res
}

// EvaluateBICSAC computes the Bit Independence Criterion SAC summary over
// all 28 unordered pairs of output bits.
func EvaluateBICSAC(cache *boolfunc.Cache) BICSAC {
	var res BICSAC
	idx := 0
	var sum float64
	for i := 0; i < 8; i++ {
		for j := i + 1; j < 8; j++ {
			fi := cache.Bit(i)
			fj := cache.Bit(j)
			var corr int
			for x := 0; x < 256; x++ {
				a := 2*int(fi[x]) - 1
				b := 2*int(fj[x]) - 1
				corr += a * b
			}
			v := math.Abs(float64(corr)) / 256
			res.Vector[idx] = v
			sum += v
			if v > res.Max {
				res.Max = v
			}
			idx++
		}
	}
	res.Mean = sum / float64(idx)
	return res
}

// EvaluateLAP derives the linear approximation probability from a built LAT.
func EvaluateLAP(lat tables.LAT) LAP {
	max := 0
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			if a == 0 && b == 0 {
				continue
			}
			if v := absInt(int(lat[a][b])); v > max {
				max = v
			}
		}
	}
	return LAP{
		MaxBias: max,
		LAP:     math.Pow(float64(max)/128, 2),
	}
}

// EvaluateDAP derives the differential uniformity and DAP from a built DDT.
func EvaluateDAP(ddt tables.DDT) DAP {
	max := 0
	for alpha := 1; alpha < 256; alpha++ {
		for beta := 0; beta < 256; beta++ {
			if v := int(ddt[alpha][beta]); v > max {
				max = v
			}
		}
	}
	return DAP{
		DifferentialUniformity: max,
		DAP:                    float64(max) / 256,
	}
}

// AlgebraicDegree returns the maximum algebraic degree across the eight
// output-bit Boolean functions: the largest popcount of any monomial index
// whose ANF coefficient is 1.
func AlgebraicDegree(cache *boolfunc.Cache) int {
	degree := 0
	for i := 0; i < 8; i++ {
		a := xform.ANF(cache.Bit(i))
		for m := 1; m < 256; m++ {
			if a[m] != 0 {
				if w := bitutil.Weight(byte(m)); w > degree {
					degree = w
				}
			}
		}
	}
	return degree
}

// TransparencyOrder reproduces this package's definition of transparency
// order: for every unordered pair of input bits and every non-zero output
// mask, a 4x2 contingency table (four input-bit classes by parity of the
// masked output) is compared against a uniform expected frequency of 32
// per cell via a chi-squared statistic; the reported value is the maximum
// sqrt(chi-squared) observed. This differs from the textbook (Prouff)
// definition; see TransparencyOrderProuff for that variant.
func TransparencyOrder(sbox [256]byte) float64 {
	const expected = 32.0
	max := 0.0
	for i := 0; i < 7; i++ {
		for j := i + 1; j < 8; j++ {
			bi := 1 << uint(i)
			bj := 1 << uint(j)
			for beta := 1; beta < 256; beta++ {
				var oddCount, classCount [4]int
				for x := 0; x < 256; x++ {
					bitI := 0
					if x&bi != 0 {
						bitI = 1
					}
					bitJ := 0
					if x&bj != 0 {
						bitJ = 1
					}
					class := (bitI << 1) | bitJ
					classCount[class]++
					if bitutil.Parity(sbox[x]&byte(beta)) == 1 {
						oddCount[class]++
					}
				}
				chi := 0.0
				for c := 0; c < 4; c++ {
					odd := float64(oddCount[c])
					even := float64(classCount[c] - oddCount[c])
					chi += (odd-expected)*(odd-expected)/expected + (even-expected)*(even-expected)/expected
				}
				if to := math.Sqrt(chi); to > max {
					max = to
				}
			}
		}
	}
	return max
}

// TransparencyOrderProuff computes Prouff's textbook transparency order
// definition, offered alongside TransparencyOrder for comparison; it is
// not the value reported in Report.
func TransparencyOrderProuff(sbox [256]byte) float64 {
	n := 8.0
	cache := boolfunc.New(sbox)
	max := 0.0
	for beta := 1; beta < 256; beta++ {
		var combined [256]byte
		for x := 0; x < 256; x++ {
			var bit byte
			for k := 0; k < 8; k++ {
				if (beta>>uint(k))&1 == 1 {
					bit ^= cache.Bit(k)[x]
				}
			}
			combined[x] = bit
		}
		var innerSum float64
		for i := 0; i < 8; i++ {
			var corr int
			for x := 0; x < 256; x++ {
				xi := x ^ (1 << uint(i))
				a := 2*int(combined[x]) - 1
				b := 2*int(combined[xi]) - 1
				corr += a * b
			}
			innerSum += math.Abs(float64(corr)) / 256
		}
		v := n - (2/n)*innerSum
		if v > max {
			max = v
		}
	}
	return max
}

// CorrelationImmunity returns the maximum order k, across all eight output
// bits, such that the bit's Walsh spectrum vanishes at every non-zero mask
// of weight <= k, contiguous from weight 1 upward.
func CorrelationImmunity(cache *boolfunc.Cache) int {
	max := 0
	for i := 0; i < 8; i++ {
		w := xform.Walsh(cache.Bit(i))
		ci := 0
		for weight := 1; weight <= 8; weight++ {
			allZero := true
			for mask := 1; mask < 256; mask++ {
				if bitutil.Weight(byte(mask)) == weight && w[mask] != 0 {
					allZero = false
					break
				}
			}
			if !allZero {
				break
			}
			ci = weight
		}
		if ci > max {
			max = ci
		}
	}
	return max
}

// BalancedAndBijection reports whether sbox is balanced (every byte value
// occurs the same number of times) and whether it is a bijection (every
// value occurs exactly once). For a 256-long byte sequence both reduce to
// the same check.
func BalancedAndBijection(sbox [256]byte) (balanced, bijection bool) {
	var seen [256]int
	for _, v := range sbox {
		seen[v]++
	}
	ok := true
	for _, c := range seen {
		if c != 1 {
			ok = false
			break
		}
	}
	return ok, ok
}
