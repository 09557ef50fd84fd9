package quadrature

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"gonum.org/v1/gonum/floats"
)

// Func is a real-valued integrand. Implementations must be free of side
// effects; tabulation may evaluate a Func concurrently.
type Func func(x float64) float64

// Sample is one coordinate pair of a discretized function: Y is the sampled
// function value at position X.
type Sample struct {
	X, Y float64
}

// Samples is an ordered sequence of coordinate pairs.
//
// A sequence is valid for integration if it holds at least two points and
// its x coordinates are strictly monotonic, increasing or decreasing.
// Operations of this package never mutate or retain a Samples argument.
type Samples []Sample

// Validate checks the sequence for integrability. ErrTooFewSamples flags
// sequences of fewer than two points, ErrNotMonotonic flags x coordinates
// that repeat or change direction.
func (s Samples) Validate() error {
	if len(s) < 2 {
		return ErrTooFewSamples
	}
	up := s[1].X > s[0].X
	for i := 1; i < len(s); i++ {
		d := s[i].X - s[i-1].X
		if d == 0 || (d > 0) != up {
			return ErrNotMonotonic
		}
	}
	return nil
}

// IsIncreasing reports whether the x coordinates run from low to high.
// The result is unspecified for sequences shorter than two points.
func (s Samples) IsIncreasing() bool {
	return len(s) >= 2 && s[1].X > s[0].X
}

// Reversed returns a copy of the sequence in opposite order. Integrating a
// reversed sequence negates the result.
func (s Samples) Reversed() Samples {
	r := make(Samples, len(s))
	for i, smpl := range s {
		r[len(s)-1-i] = smpl
	}
	return r
}

// xy splits the sequence into separate coordinate slices, the argument shape
// the gonum integrators work on.
func (s Samples) xy() (x, y []float64) {
	x = make([]float64, len(s))
	y = make([]float64, len(s))
	for i, smpl := range s {
		x[i] = smpl.X
		y[i] = smpl.Y
	}
	return x, y
}

// Uniform tabulates f at n evenly spaced positions over [a,b], endpoints
// included. It fails with ErrTooFewSamples for n < 2 and with
// ErrIllegalArguments for an empty interval.
func Uniform(f Func, a, b float64, n int) (Samples, error) {
	if n < 2 {
		return nil, ErrTooFewSamples
	}
	if a == b {
		return nil, ErrIllegalArguments
	}
	x := floats.Span(make([]float64, n), a, b)
	samples := make(Samples, n)
	for i, xi := range x {
		samples[i] = Sample{X: xi, Y: f(xi)}
	}
	return samples, nil
}
