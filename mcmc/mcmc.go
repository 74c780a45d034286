// Package mcmc implements the MCMC perturbation kernel that re-diversifies
// a gene set while preserving the conditional distribution "uniform over
// k-subsets with positive ES above a threshold".
package mcmc

import (
	"math"
	"math/rand"

	"github.com/cbarrick/gsea-multilevel/esrank"
)

// DefaultPertCoeff is the fraction of a gene set's size used to determine
// how many proposal iterations one Kernel.Perturb call runs. It is a tuned
// constant from the original implementation, not a derived quantity; callers
// that want a different mixing rate should set Kernel.PertCoeff explicitly.
const DefaultPertCoeff = 0.1

// Kernel holds the immutable context a perturbation needs: the background
// statistics and the RNG driving proposals. A Kernel is reused across many
// calls to Perturb, one per gene set per MCMC sweep.
type Kernel struct {
	S         []float64
	Rng       *rand.Rand
	PertCoeff float64 // 0 means DefaultPertCoeff
}

func (k *Kernel) coeff() float64 {
	if k.PertCoeff > 0 {
		return k.PertCoeff
	}
	return DefaultPertCoeff
}

// Perturb mutates the sorted gene set p in place, running
// max(1, floor(k*PertCoeff)) proposal iterations, and returns the number of
// accepted moves together with the updated NS = sum(|S[pos]|) over p.
//
// Each proposal replaces a single index of p with a uniformly random
// candidate, restores sorted order by bubbling the changed slot to its
// correct place, and accepts iff the result is still a strictly increasing
// (duplicate-free) k-subset whose positive ES exceeds bound. On rejection
// the proposal is undone exactly, including the NS bookkeeping, so NS is
// always consistent with the current contents of p without ever being
// recomputed from scratch.
func (k *Kernel) Perturb(p []int, ns float64, bound float64) (accepted int, newNS float64) {
	n := len(k.S)
	size := len(p)
	iters := int(float64(size) * k.coeff())
	if iters < 1 {
		iters = 1
	}

	for i := 0; i < iters; i++ {
		id := k.Rng.Intn(size)
		v := k.Rng.Intn(n)

		old := p[id]
		ns -= math.Abs(k.S[old])
		p[id] = v

		j := id
		for j > 0 && p[j] < p[j-1] {
			p[j], p[j-1] = p[j-1], p[j]
			j--
		}
		for j < size-1 && p[j] > p[j+1] {
			p[j], p[j+1] = p[j+1], p[j]
			j++
		}

		dupLeft := j > 0 && p[j] == p[j-1]
		dupRight := j < size-1 && p[j] == p[j+1]
		candidateNS := ns + math.Abs(k.S[p[j]])

		if dupLeft || dupRight || esrank.CompareStat(k.S, p, candidateNS, bound) != 1 {
			// Reject: undo the replacement and re-bubble back to id.
			p[j] = old
			for j > 0 && p[j] < p[j-1] {
				p[j], p[j-1] = p[j-1], p[j]
				j--
			}
			for j < size-1 && p[j] > p[j+1] {
				p[j], p[j+1] = p[j+1], p[j]
				j++
			}
		} else {
			accepted++
		}
		ns += math.Abs(k.S[p[j]])
	}

	return accepted, ns
}
