package quadrature

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

// Trapezoidal approximates the definite integral over the sampled range by
// summing the areas of the trapezoids spanned by consecutive samples:
//
//	area += 0.5 * (y[i-1] + y[i]) * (x[i] - x[i-1])
//
// The accumulation is a naive float64 running sum, left to right over the
// given order; no reordering or compensated summation takes place.
//
// Trapezoidal is pure: the input sequence is neither mutated nor retained.
// It fails with ErrTooFewSamples for sequences of fewer than two points and
// with ErrNotMonotonic if the x coordinates are not strictly monotonic.
// A decreasing sequence is legal and yields the negated integral, as every
// segment width changes sign.
func Trapezoidal(samples Samples) (float64, error) {
	if err := samples.Validate(); err != nil {
		return 0, err
	}
	var area float64
	for i := 1; i < len(samples); i++ {
		area += 0.5 * (samples[i-1].Y + samples[i].Y) * (samples[i].X - samples[i-1].X)
	}
	tracer().Debugf("trapezoid rule over %d segments = %g", len(samples)-1, area)
	return area, nil
}
