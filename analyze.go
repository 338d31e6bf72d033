package sboxkit

import (
	"context"
	"sync"

	"github.com/nullsbox/sboxkit/internal/boolfunc"
	"github.com/nullsbox/sboxkit/internal/metrics"
	"github.com/nullsbox/sboxkit/internal/security"
	"github.com/nullsbox/sboxkit/internal/tables"
)

// Analyzer holds the per-S-box caches (Boolean function truth tables, LAT,
// DDT) that every metric evaluator reads from. Caches are built at most
// once, guarded by sync.Once, so an Analyzer may be shared across
// goroutines without exposing a partially-built cache. The zero value is
// not usable; construct with NewAnalyzer.
type Analyzer struct {
	sbox  [256]byte
	bools *boolfunc.Cache

	latOnce sync.Once
	lat     tables.LAT
	latErr  error

	ddtOnce sync.Once
	ddt     tables.DDT
	ddtErr  error
}

// NewAnalyzer returns an Analyzer over sbox. sbox is copied; the caller's
// array is not retained.
func NewAnalyzer(sbox [256]byte) *Analyzer {
	return &Analyzer{
		sbox:  sbox,
		bools: boolfunc.New(sbox),
	}
}

// LAT returns the analyzer's linear approximation table, building it on
// first call.
func (a *Analyzer) LAT(ctx context.Context) (tables.LAT, error) {
	a.latOnce.Do(func() {
		a.lat, a.latErr = tables.BuildLAT(ctx, a.sbox)
	})
	return a.lat, a.latErr
}

// DDT returns the analyzer's difference distribution table, building it on
// first call.
func (a *Analyzer) DDT(ctx context.Context) (tables.DDT, error) {
	a.ddtOnce.Do(func() {
		a.ddt, a.ddtErr = tables.BuildDDT(ctx, a.sbox)
	})
	return a.ddt, a.ddtErr
}

// Analyze validates sbox as a permutation of [0, 255] and computes its
// full cryptographic quality Report. ctx is checked before the LAT and DDT
// builds and before each metric evaluator; a cancelled context aborts with
// ctx.Err() and no partial Report is ever returned.
func Analyze(ctx context.Context, sbox [256]byte) (Report, error) {
	if err := validatePermutation(sbox); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	a := NewAnalyzer(sbox)

	lat, err := a.LAT(ctx)
	if err != nil {
		return Report{}, err
	}
	ddt, err := a.DDT(ctx)
	if err != nil {
		return Report{}, err
	}

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	nl := metrics.Nonlinearity(a.bools)

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	sac := metrics.EvaluateSAC(sbox)

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	bicnl := metrics.EvaluateBICNL(a.bools)

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	bicsac := metrics.EvaluateBICSAC(a.bools)

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	lap := metrics.EvaluateLAP(lat)

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	dap := metrics.EvaluateDAP(ddt)

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	degree := metrics.AlgebraicDegree(a.bools)

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	to := metrics.TransparencyOrder(sbox)

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	ci := metrics.CorrelationImmunity(a.bools)

	balanced, bijection := metrics.BalancedAndBijection(sbox)

	sec := security.Summarize(nl, dap.DifferentialUniformity, lap.MaxBias, sac.Score)

	return Report{
		Nonlinearity:           nl,
		SAC:                    sac,
		DifferentialUniformity: dap.DifferentialUniformity,
		LAP:                    lap,
		AlgebraicDegree:        degree,
		TransparencyOrder:      to,
		BICNL:                  bicnl,
		BICSAC:                 bicsac,
		CorrelationImmunity:    ci,
		Balanced:               balanced,
		Bijection:              bijection,
		Security:               sec,
	}, nil
}
