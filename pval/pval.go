// Package pval reconstructs the p-value of an observed enrichment score
// from the cutoff ladder accumulated by package multilevel, using digamma
// contributions to form a smoothed log-survival-probability estimate.
package pval

import (
	"math"
	"sort"

	"github.com/cbarrick/gsea-multilevel/internal/digamma"
	"github.com/cbarrick/gsea-multilevel/multilevel"
)

// Sign selects between the one-sided and two-sided (bias-corrected) reading
// of the p-value.
type Sign bool

const (
	// OneSided returns the raw clamped p-value with no bias correction.
	OneSided Sign = true
	// TwoSided applies the empirical bias correction derived from the
	// initial-level random pairs and normalizes by P(signed ES > 0).
	TwoSided Sign = false
)

// FindEsPval computes the p-value at the target enrichment score es from a
// completed State, following spec section 4.4:
//
//  1. h = floor((m+1)/2)
//  2. binary search Cutoffs for the first entry >= es, at position i
//  3. kLevel = i/h, remainder = m - (i mod h)
//  4. logP = kLevel*(psi(h)-psi(m+1)) + (psi(remainder)-psi(m+1))
//  5. pval = exp(logP)
//
// For Sign == OneSided, the clamped pval is returned directly. For
// Sign == TwoSided, an empirical bias correction (the fraction of
// initial-population sets whose positive ES exceeds es despite a
// nonpositive signed ES) is subtracted and the result normalized by the
// Bayesian estimate of P(signed ES > 0), then clamped to [0,1].
func FindEsPval(st *multilevel.State, es float64, m int, sign Sign) float64 {
	h := (m + 1) / 2

	i := sort.Search(len(st.Cutoffs), func(idx int) bool { return st.Cutoffs[idx] >= es })

	kLevel := i / h
	remainder := m - i%h

	adjLog := digamma.Psi(float64(h)) - digamma.Psi(float64(m+1))
	logP := float64(kLevel)*adjLog + (digamma.Psi(float64(remainder)) - digamma.Psi(float64(m+1)))
	p := math.Exp(logP)

	if sign == OneSided {
		return clamp01(p)
	}

	probStatPos := math.Exp(digamma.Psi(float64(st.PosStatNum)) - digamma.Psi(float64(m+1)))

	var bad, total int
	for _, pp := range st.RandomPairs {
		total++
		if pp.Signed <= es && pp.Positive > es {
			bad++
		}
	}

	var correction float64
	if total > 0 {
		correction = float64(bad) / float64(total)
	}

	return clamp01((p - correction) / probStatPos)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
