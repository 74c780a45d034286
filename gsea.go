package gsea

import (
	"errors"
	"fmt"
	"math"

	"github.com/cbarrick/gsea-multilevel/internal/rng"
	"github.com/cbarrick/gsea-multilevel/mcmc"
	"github.com/cbarrick/gsea-multilevel/multilevel"
	"github.com/cbarrick/gsea-multilevel/pval"
)

// Sign selects between the one-sided and two-sided (bias-corrected) p-value
// reading; re-exported from package pval so callers need only import gsea.
type Sign = pval.Sign

const (
	OneSided = pval.OneSided
	TwoSided = pval.TwoSided
)

// Sentinel errors surfaced by CalcPvalues. All of them represent
// preconditions the caller failed to validate; the core never panics on
// caller-supplied data.
var (
	ErrNonFiniteScore  = errors.New("gsea: ES must be finite")
	ErrEmptyStatistics = errors.New("gsea: S must be non-empty")
)

// Options carries the tunables of the multilevel driver. The zero value
// selects the documented defaults.
type Options struct {
	// PertCoeff is the perturbation kernel's proposal-count fraction,
	// default mcmc.DefaultPertCoeff (0.1) when zero. Treated as a tuned
	// constant, never derived from the inputs.
	PertCoeff float64
}

// CalcPvalues is the module's single entry point for running the adaptive
// multilevel sampling loop. s is the background gene statistics (length n),
// k the pathway size (1 <= k < n), es the observed enrichment score, m the
// sample population size (even, m >= 2), seed the RNG seed, and absEps the
// termination tolerance. Two calls with identical arguments return
// bit-identical State values, since every random draw is taken from a
// Mersenne Twister seeded deterministically from seed.
func CalcPvalues(s []float64, k int, es float64, m int, seed uint64, absEps float64, opts Options) (*multilevel.State, error) {
	if len(s) == 0 {
		return nil, ErrEmptyStatistics
	}
	if math.IsNaN(es) || math.IsInf(es, 0) {
		return nil, ErrNonFiniteScore
	}

	generator := rng.New(seed)

	st, err := multilevel.CalcPvalues(s, k, es, m, generator, absEps, multilevel.Options{
		PertCoeff: defaultCoeff(opts.PertCoeff),
	})
	if err != nil {
		return nil, fmt.Errorf("gsea: %w", err)
	}
	return st, nil
}

// FindEsPval computes the p-value of es given a State produced by
// CalcPvalues, per the chosen Sign.
func FindEsPval(st *multilevel.State, es float64, m int, sign Sign) float64 {
	return pval.FindEsPval(st, es, m, sign)
}

func defaultCoeff(c float64) float64 {
	if c > 0 {
		return c
	}
	return mcmc.DefaultPertCoeff
}
