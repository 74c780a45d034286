// Package digamma implements the digamma (psi) function, the logarithmic
// derivative of the gamma function. The p-value estimator in package pval
// needs digamma at small positive integer and near-integer arguments, where
// neither a closed form nor a crude approximation is adequate; this package
// ports the classic Cephes series-plus-asymptotic algorithm rather than
// reimplementing it from scratch.
package digamma

import "math"

// eulerMascheroni is the Euler-Mascheroni constant, used for small integer
// arguments via the harmonic-number identity psi(n) = -gamma + sum_{k<n} 1/k.
const eulerMascheroni = 0.5772156649015329

// asymptoticCoeffs are scaled Bernoulli numbers for the asymptotic expansion
// psi(x) ~ log(x) - 1/2x - sum_k B_2k / (2k x^2k).
var asymptoticCoeffs = []float64{
	0.08333333333333333,
	-0.021092796092796094,
	0.007575757575757576,
	-0.004166666666666667,
	0.003968253968253968,
	-0.008333333333333333,
	0.08333333333333333,
}

// Psi returns the digamma function at x.
//
// For 0 < x <= 10 with x an integer, the harmonic-number identity is used
// directly. For other positive x, the recurrence psi(x+1) = psi(x) + 1/x
// lifts the argument above 10, where the asymptotic series converges to
// full double precision. Negative x is handled by the reflection formula
// psi(1-x) = psi(x) + pi*cot(pi*x); x a non-positive integer is a pole and
// returns +Inf, matching the convention of returning a sentinel rather than
// panicking on library input.
func Psi(x float64) float64 {
	var reflect bool
	var cotTerm float64

	if x <= 0 {
		floor := math.Floor(x)
		if floor == x {
			return math.Inf(1)
		}
		frac := x - floor
		if frac != 0.5 {
			if frac > 0.5 {
				floor++
				frac = x - floor
			}
			cotTerm = math.Pi / math.Tan(math.Pi*frac)
		}
		x = 1 - x
		reflect = true
	}

	var y float64
	if x <= 10 && x == math.Floor(x) {
		n := int(x)
		for k := 1; k < n; k++ {
			y += 1 / float64(k)
		}
		y -= eulerMascheroni
	} else {
		s := x
		w := 0.0
		for s < 10 {
			w += 1 / s
			s++
		}
		var series float64
		if s < 1e17 {
			z := 1 / (s * s)
			series = z * hornerEval(z, asymptoticCoeffs)
		}
		y = math.Log(s) - 0.5/s - series - w
	}

	if reflect {
		y -= cotTerm
	}
	return y
}

// hornerEval evaluates the polynomial with coefficients coeffs (highest
// degree first) at x using Horner's method.
func hornerEval(x float64, coeffs []float64) float64 {
	ans := coeffs[0]
	for _, c := range coeffs[1:] {
		ans = ans*x + c
	}
	return ans
}
