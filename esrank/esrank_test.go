package esrank_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cbarrick/gsea-multilevel/esrank"
)

func TestSignedESSingleton(t *testing.T) {
	// A singleton gene set [i] has a closed form: the path goes down by
	// q1*i, then jumps up by 1 (since q2 = 1/|S[i]|), so the max-magnitude
	// point is whichever of those two has the larger absolute value.
	s := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	n := len(s)
	k := 1
	i := 4
	p := []int{i}
	ns := esrank.SumAbs(s, p)

	got := esrank.SignedES(s, p, ns)

	q1 := 1.0 / float64(n-k)
	down := -q1 * float64(i)
	up := down + 1.0 // q2*s[i]/ns = 1/1 = 1
	want := down
	if math.Abs(up) > math.Abs(down) {
		want = up
	}
	assert.InDelta(t, want, got, 1e-12)
}

func TestPositiveESEqualsMaxZeroSignedESWhenNonnegative(t *testing.T) {
	s := make([]float64, 50)
	for i := range s {
		s[i] = float64(i%7) + 0.1
	}
	p := []int{1, 3, 5, 9, 20, 33}
	ns := esrank.SumAbs(s, p)

	signed := esrank.SignedES(s, p, ns)
	positive := esrank.PositiveES(s, p, ns)

	want := math.Max(0, signed)
	assert.InDelta(t, want, positive, 1e-12)
}

func TestCompareStatAgreesWithPositiveES(t *testing.T) {
	s := make([]float64, 200)
	for i := range s {
		s[i] = math.Sin(float64(i))
	}
	p := []int{2, 7, 19, 44, 90, 150}
	ns := esrank.SumAbs(s, p)
	pos := esrank.PositiveES(s, p, ns)

	bounds := []float64{pos - 0.1, pos, pos + 0.1}
	for _, bound := range bounds {
		want := -1
		if pos > bound {
			want = 1
		}
		got := esrank.CompareStat(s, p, ns, bound)
		assert.Equal(t, want, got, "bound=%v pos=%v", bound, pos)
	}
}

func TestCompareStatShortCircuits(t *testing.T) {
	// A gene set whose very first hit already clears the bound must return
	// +1 immediately, before the traversal reaches later positions.
	s := []float64{10, 1, 1, 1, 1}
	p := []int{0, 4}
	ns := esrank.SumAbs(s, p)
	got := esrank.CompareStat(s, p, ns, 0.01)
	assert.Equal(t, 1, got)
}
