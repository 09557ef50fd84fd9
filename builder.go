package quadrature

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

// Builder accumulates a sample sequence point by point, enforcing strict
// monotonicity as points arrive. This suits callers that receive samples
// incrementally, e.g. from a measurement loop, and want violations flagged
// at the offending point rather than at integration time.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	samples Samples
	done    bool
}

// NewBuilder creates a new and empty sample sequence builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Append stages one sample point. The x coordinate must continue the strict
// monotonic order established by the first two points; violations fail with
// ErrNotMonotonic and leave the staged sequence unchanged.
//
// Returns ErrCompleted if Samples() has already been called.
func (b *Builder) Append(x, y float64) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrCompleted
	}
	n := len(b.samples)
	if n >= 1 {
		d := x - b.samples[n-1].X
		if d == 0 {
			return ErrNotMonotonic
		}
		if n >= 2 {
			up := b.samples[1].X > b.samples[0].X
			if (d > 0) != up {
				return ErrNotMonotonic
			}
		}
	}
	b.samples = append(b.samples, Sample{X: x, Y: y})
	return nil
}

// Len returns the number of staged points.
func (b *Builder) Len() int {
	if b == nil {
		return 0
	}
	return len(b.samples)
}

// Samples completes the build and returns the staged sequence.
//
// It is illegal to continue appending points after Samples has been called,
// but Samples may be called multiple times. A build of fewer than two points
// fails with ErrTooFewSamples.
func (b *Builder) Samples() (Samples, error) {
	if b == nil {
		return nil, ErrIllegalArguments
	}
	b.done = true
	if len(b.samples) < 2 {
		tracer().Debugf("sample builder: sequence is too short to integrate")
		return nil, ErrTooFewSamples
	}
	return b.samples, nil
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.samples = nil
	b.done = false
}
