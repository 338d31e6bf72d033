package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/nullsbox/sboxkit/internal/aes128"
	"github.com/nullsbox/sboxkit/internal/boolfunc"
	"github.com/nullsbox/sboxkit/internal/tables"
)

func identitySBox() [256]byte {
	var s [256]byte
	for i := range s {
		s[i] = byte(i)
	}
	return s
}

// TestStandardSBoxMetrics checks scenario S1 from the spec: the FIPS-197
// S-box has NL=112, differential uniformity 4, LAP max bias 16, algebraic
// degree 7, and an SAC score of ~0.0263671875 (mean |p_ij - 0.5| over the
// 8x8 avalanche matrix; see DESIGN.md for why this differs from the
// illustrative 0.125 figure quoted elsewhere).
func TestStandardSBoxMetrics(t *testing.T) {
	sbox := aes128.StandardSBox
	cache := boolfunc.New(sbox)

	if nl := Nonlinearity(cache); nl != 112 {
		t.Errorf("Nonlinearity = %d, want 112", nl)
	}

	ddt, err := tables.BuildDDT(context.Background(), sbox)
	if err != nil {
		t.Fatalf("BuildDDT: %v", err)
	}
	dap := EvaluateDAP(ddt)
	if dap.DifferentialUniformity != 4 {
		t.Errorf("DifferentialUniformity = %d, want 4", dap.DifferentialUniformity)
	}

	lat, err := tables.BuildLAT(context.Background(), sbox)
	if err != nil {
		t.Fatalf("BuildLAT: %v", err)
	}
	lap := EvaluateLAP(lat)
	if lap.MaxBias != 16 {
		t.Errorf("LAP.MaxBias = %d, want 16", lap.MaxBias)
	}
	if math.Abs(lap.LAP-0.015625) > 1e-9 {
		t.Errorf("LAP.LAP = %v, want 0.015625", lap.LAP)
	}

	if degree := AlgebraicDegree(cache); degree != 7 {
		t.Errorf("AlgebraicDegree = %d, want 7", degree)
	}

	sac := EvaluateSAC(sbox)
	if math.Abs(sac.Score-0.0263671875) > 1e-9 {
		t.Errorf("SAC.Score = %v, want ~0.0263671875", sac.Score)
	}
	if math.Abs(sac.Max-0.0625) > 1e-9 {
		t.Errorf("SAC.Max = %v, want 0.0625", sac.Max)
	}

	balanced, bijection := BalancedAndBijection(sbox)
	if !balanced || !bijection {
		t.Errorf("BalancedAndBijection = (%v, %v), want (true, true)", balanced, bijection)
	}
}

// TestIdentitySBoxIsDegenerate checks property test #7: the identity
// permutation yields NL=0, differential uniformity 256, algebraic degree 1.
func TestIdentitySBoxIsDegenerate(t *testing.T) {
	sbox := identitySBox()
	cache := boolfunc.New(sbox)

	if nl := Nonlinearity(cache); nl != 0 {
		t.Errorf("Nonlinearity = %d, want 0", nl)
	}

	ddt, err := tables.BuildDDT(context.Background(), sbox)
	if err != nil {
		t.Fatalf("BuildDDT: %v", err)
	}
	dap := EvaluateDAP(ddt)
	if dap.DifferentialUniformity != 256 {
		t.Errorf("DifferentialUniformity = %d, want 256", dap.DifferentialUniformity)
	}

	if degree := AlgebraicDegree(cache); degree != 1 {
		t.Errorf("AlgebraicDegree = %d, want 1", degree)
	}
}

// TestAlgebraicDegreeBounds checks property test #5: the algebraic degree
// of any output bit of an 8-bit permutation lies in [1, 7].
func TestAlgebraicDegreeBounds(t *testing.T) {
	for _, sbox := range [][256]byte{aes128.StandardSBox, rotatedPermutation()} {
		cache := boolfunc.New(sbox)
		degree := AlgebraicDegree(cache)
		if degree < 1 || degree > 7 {
			t.Errorf("AlgebraicDegree = %d, want in [1,7]", degree)
		}
	}
}

func rotatedPermutation() [256]byte {
	var s [256]byte
	for i := range s {
		s[i] = byte((i + 1) % 256)
	}
	return s
}

func TestCorrelationImmunityOfIdentityIsZero(t *testing.T) {
	cache := boolfunc.New(identitySBox())
	if ci := CorrelationImmunity(cache); ci != 0 {
		t.Errorf("CorrelationImmunity = %d, want 0", ci)
	}
}

func TestTransparencyOrderIsNonNegative(t *testing.T) {
	to := TransparencyOrder(aes128.StandardSBox)
	if to < 0 {
		t.Errorf("TransparencyOrder = %v, want >= 0", to)
	}
}
