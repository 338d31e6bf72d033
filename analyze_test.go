package sboxkit

import (
	"context"
	"testing"
)

// TestAnalyzeStandardSBox checks scenario S1 through the façade.
func TestAnalyzeStandardSBox(t *testing.T) {
	report, err := Analyze(context.Background(), StandardSBox)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.Nonlinearity != 112 {
		t.Errorf("Nonlinearity = %d, want 112", report.Nonlinearity)
	}
	if report.DifferentialUniformity != 4 {
		t.Errorf("DifferentialUniformity = %d, want 4", report.DifferentialUniformity)
	}
	if report.LAP.MaxBias != 16 {
		t.Errorf("LAP.MaxBias = %d, want 16", report.LAP.MaxBias)
	}
	if report.AlgebraicDegree != 7 {
		t.Errorf("AlgebraicDegree = %d, want 7", report.AlgebraicDegree)
	}
	if !report.Balanced || !report.Bijection {
		t.Errorf("Balanced/Bijection = %v/%v, want true/true", report.Balanced, report.Bijection)
	}
}

// TestAnalyzeIdentitySBoxIsLow checks scenario S4: the identity S-box is
// rejected with security level Low and the two named weaknesses.
func TestAnalyzeIdentitySBoxIsLow(t *testing.T) {
	var identity [256]byte
	for i := range identity {
		identity[i] = byte(i)
	}

	report, err := Analyze(context.Background(), identity)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.Security.Level != "Low" {
		t.Fatalf("Security.Level = %q, want Low", report.Security.Level)
	}
	found := map[string]bool{}
	for _, w := range report.Security.Weaknesses {
		found[w] = true
	}
	if !found["Low nonlinearity"] {
		t.Error(`expected weakness "Low nonlinearity"`)
	}
	if !found["High differential uniformity"] {
		t.Error(`expected weakness "High differential uniformity"`)
	}
}

func TestAnalyzeRejectsNonPermutation(t *testing.T) {
	var bad [256]byte
	_, err := Analyze(context.Background(), bad)
	if err == nil {
		t.Fatal("Analyze accepted a non-permutation sbox")
	}
}

func TestAnalyzeHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Analyze(ctx, StandardSBox)
	if err == nil {
		t.Fatal("Analyze with a cancelled context returned no error")
	}
}

func TestAnalyzerCachesLATAndDDT(t *testing.T) {
	a := NewAnalyzer(StandardSBox)
	ctx := context.Background()

	lat1, err := a.LAT(ctx)
	if err != nil {
		t.Fatalf("LAT: %v", err)
	}
	lat2, err := a.LAT(ctx)
	if err != nil {
		t.Fatalf("LAT: %v", err)
	}
	if lat1 != lat2 {
		t.Fatal("second LAT() call returned a different table")
	}

	ddt1, err := a.DDT(ctx)
	if err != nil {
		t.Fatalf("DDT: %v", err)
	}
	ddt2, err := a.DDT(ctx)
	if err != nil {
		t.Fatalf("DDT: %v", err)
	}
	if ddt1 != ddt2 {
		t.Fatal("second DDT() call returned a different table")
	}
}
