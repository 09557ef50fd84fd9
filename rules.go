package quadrature

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/integrate/quad"
)

// Tolerances for deciding whether sample spacing counts as uniform, which
// the Romberg delegate requires.
const (
	spacingAbsTol = 1e-12
	spacingRelTol = 1e-9
)

// Simpson approximates the integral over the sampled range with composite
// Simpson's rule. The numerical work is delegated to gonum's integrate
// package; this adapter only validates the sequence and normalizes its
// direction. At least three points are required.
func Simpson(samples Samples) (float64, error) {
	if len(samples) < 3 {
		return 0, ErrTooFewSamples
	}
	if err := samples.Validate(); err != nil {
		return 0, err
	}
	s, sign := ascending(samples)
	x, y := s.xy()
	return sign * integrate.Simpsons(x, y), nil
}

// Romberg approximates the integral over the sampled range with Romberg
// integration, delegated to gonum. The rule operates on uniformly spaced
// sequences of 2^k+1 points; anything else fails with ErrIllegalArguments.
func Romberg(samples Samples) (float64, error) {
	if err := samples.Validate(); err != nil {
		return 0, err
	}
	n := len(samples)
	if (n-1)&(n-2) != 0 { // n must be 2^k+1
		return 0, ErrIllegalArguments
	}
	s, sign := ascending(samples)
	dx := (s[n-1].X - s[0].X) / float64(n-1)
	for i := 1; i < n; i++ {
		if !scalar.EqualWithinAbsOrRel(s[i].X-s[i-1].X, dx, spacingAbsTol, spacingRelTol) {
			return 0, ErrIllegalArguments
		}
	}
	_, y := s.xy()
	return sign * integrate.Romberg(y, dx), nil
}

// GaussLegendre approximates the integral of f over [a,b] with fixed-order
// Gauss-Legendre quadrature of order n, delegated to gonum's quad package.
// No error bound is produced. Reversed bounds negate the result; an empty
// interval integrates to zero.
func GaussLegendre(f Func, a, b float64, n int) (float64, error) {
	if f == nil || n < 1 {
		return 0, ErrIllegalArguments
	}
	if a == b {
		return 0, nil
	}
	sign := 1.0
	if a > b {
		a, b = b, a
		sign = -1
	}
	est := quad.Fixed(f, a, b, n, quad.Legendre{}, 1)
	tracer().Debugf("order-%d Gauss-Legendre on [%g,%g] = %g", n, a, b, sign*est)
	return sign * est, nil
}

// ascending normalizes a validated sequence to increasing x order and
// returns the sign the direction change contributes to the integral.
func ascending(s Samples) (Samples, float64) {
	if s.IsIncreasing() {
		return s, 1
	}
	return s.Reversed(), -1
}
