// Package multilevel implements the adaptive multilevel sampling driver: it
// evolves a population of random gene sets through an increasing sequence of
// ES cutoffs by repeatedly promoting the upper half of the population and
// re-diversifying it with the MCMC perturbation kernel.
package multilevel

import (
	"errors"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/cbarrick/gsea-multilevel/esrank"
	"github.com/cbarrick/gsea-multilevel/mcmc"
)

// ErrDegenerateInput is returned when k == n: every position would be a hit,
// making the non-hit step size 1/(n-k) divide by zero.
var ErrDegenerateInput = errors.New("multilevel: pathway size equals background size (k == n)")

// ErrInvalidPathwaySize is returned when k is outside [1, n).
var ErrInvalidPathwaySize = errors.New("multilevel: pathway size must satisfy 1 <= k < n")

// ErrOddSampleSize is returned when m is not even: duplicateSets promotes
// each of the top ceil(m/2) sets twice, which only totals m when m is even.
var ErrOddSampleSize = errors.New("multilevel: sample size m must be even")

// ErrSampleSizeTooSmall is returned when m < 2.
var ErrSampleSizeTooSmall = errors.New("multilevel: sample size m must be >= 2")

// Pair is a recorded (positiveES, signedES) observation from the initial
// (level-0) population, used only by the two-sided bias correction.
type Pair struct {
	Positive float64
	Signed   float64
}

// State is the accumulating result container threaded through
// duplicateSets and the main loop -- the fgsea EsPvalConnection.
type State struct {
	// Sets is the current population of m gene sets, each a sorted,
	// strictly ascending slice of k distinct indices into S.
	Sets [][]int

	// Cutoffs is the append-only, non-decreasing ladder of positive-ES
	// thresholds, ceil(m/2) entries per duplication round.
	Cutoffs []float64

	// RandomPairs holds the (positiveES, signedES) pair for every set in
	// the initial population, recorded once.
	RandomPairs []Pair

	// PosStatNum is the count of initial-population sets whose signed ES
	// is strictly positive, set exactly once.
	PosStatNum int
}

type Options struct {
	PertCoeff float64 // forwarded to mcmc.Kernel; 0 means mcmc.DefaultPertCoeff
}

// CalcPvalues runs the full adaptive multilevel sampling loop for a single
// pathway and returns the resulting State. s is the background gene
// statistics, k the pathway size, es the observed enrichment score, m the
// population size (must be even and >= 2), rng the seeded generator driving
// every random draw, and absEps the termination tolerance.
func CalcPvalues(s []float64, k int, es float64, m int, rng *rand.Rand, absEps float64, opts Options) (*State, error) {
	n := len(s)
	if k == n {
		return nil, ErrDegenerateInput
	}
	if k < 1 || k >= n {
		return nil, ErrInvalidPathwaySize
	}
	if m < 2 {
		return nil, ErrSampleSizeTooSmall
	}
	if m%2 != 0 {
		return nil, ErrOddSampleSize
	}

	st := &State{Sets: make([][]int, m)}
	for i := range st.Sets {
		idx := make([]int, k)
		sampleuv.WithoutReplacement(idx, n, rng)
		sort.Ints(idx)
		st.Sets[i] = idx
	}

	kernel := &mcmc.Kernel{S: s, Rng: rng, PertCoeff: opts.PertCoeff}

	duplicateSets(st, s)

	ceiling := -math.Log2(absEps)
	for {
		q := st.Cutoffs[len(st.Cutoffs)-1]
		level := 2 * (len(st.Cutoffs) / (m + 1))
		if es < q || float64(level) > ceiling {
			break
		}

		sweepMoves := 0
		target := m * k
		for sweepMoves < target {
			for i := range st.Sets {
				ns := esrank.SumAbs(s, st.Sets[i])
				accepted, _ := kernel.Perturb(st.Sets[i], ns, q)
				sweepMoves += accepted
			}
		}

		duplicateSets(st, s)
	}

	return st, nil
}

type scored struct {
	positive float64
	idx      int
}

// duplicateSets partitions the current population by positive ES, records
// the lower-half values into the cutoff ladder, and rebuilds the population
// by duplicating the upper half (each of the top m/2 sets, the median and
// everything above it, is promoted twice) so that the population size stays
// exactly m for even m.
func duplicateSets(st *State, s []float64) {
	m := len(st.Sets)
	stats := make([]scored, m)
	posCount := 0
	first := len(st.Cutoffs) == 0

	for i, set := range st.Sets {
		ns := esrank.SumAbs(s, set)
		pos := esrank.PositiveES(s, set, ns)
		signed := esrank.SignedES(s, set, ns)

		if first {
			st.RandomPairs = append(st.RandomPairs, Pair{Positive: pos, Signed: signed})
		}
		if signed > 0 {
			posCount++
		}
		stats[i] = scored{positive: pos, idx: i}
	}

	sort.Slice(stats, func(a, b int) bool { return stats[a].positive < stats[b].positive })

	if first {
		st.PosStatNum = posCount
	}

	for i := 0; 2*i < m; i++ {
		st.Cutoffs = append(st.Cutoffs, stats[i].positive)
	}

	newSets := make([][]int, 0, m)
	for i := 0; 2*i < m; i++ {
		src := st.Sets[stats[m-1-i].idx]
		newSets = append(newSets, cloneSet(src), cloneSet(src))
	}

	st.Sets = newSets
}

func cloneSet(p []int) []int {
	q := make([]int, len(p))
	copy(q, p)
	return q
}
