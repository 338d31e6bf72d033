package sboxkit

import (
	"github.com/nullsbox/sboxkit/internal/metrics"
	"github.com/nullsbox/sboxkit/internal/security"
	"github.com/nullsbox/sboxkit/internal/trace"
)

// SAC is the Strict Avalanche Criterion result: the full 8x8 matrix of
// bit-flip probabilities, its mean absolute deviation from 0.5 (Score) and
// its largest single deviation (Max).
type SAC = metrics.SAC

// BICNL is the Bit Independence Criterion nonlinearity summary across all
// 28 unordered pairs of output bits.
type BICNL = metrics.BICNL

// BICSAC is the Bit Independence Criterion SAC summary across all 28
// unordered pairs of output bits.
type BICSAC = metrics.BICSAC

// LAP is the linear approximation probability summary.
type LAP = metrics.LAP

// DAP is the differential approximation probability summary.
type DAP = metrics.DAP

// SecuritySummary is the qualitative strengths/weaknesses/level projection
// of an analysis Report.
type SecuritySummary = security.Report

// Report is the full result of analysing an S-box.
type Report struct {
	Nonlinearity           int
	SAC                    SAC
	DifferentialUniformity int
	LAP                    LAP
	AlgebraicDegree        int
	TransparencyOrder      float64
	BICNL                  BICNL
	BICSAC                 BICSAC
	CorrelationImmunity    int
	Balanced               bool
	Bijection              bool
	Security               SecuritySummary
}

// StepKind names the AES operation that produced a Step's snapshot.
type StepKind = trace.StepKind

// The StepKind values that can appear in a Step stream.
const (
	Init          = trace.Init
	AddRoundKey   = trace.AddRoundKey
	SubBytes      = trace.SubBytes
	ShiftRows     = trace.ShiftRows
	MixColumns    = trace.MixColumns
	InvSubBytes   = trace.InvSubBytes
	InvShiftRows  = trace.InvShiftRows
	InvMixColumns = trace.InvMixColumns
	Final         = trace.Final
)

// Step is one observable snapshot of the AES state matrix, taken
// immediately after Operation was applied.
type Step = trace.Step
