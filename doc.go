/*
Package quadrature provides elementary numerical integration over sampled
functions.

The core of the package is the composite trapezoid rule over an ordered
sequence of samples: the area under a sampled curve is approximated by the
sum of the trapezoids spanned by consecutive sample points. This rule is
implemented directly, in a single naive left-to-right pass, and is the only
integration algorithm owned by this package.

Further rules (Simpson's method, Romberg integration and fixed-order
Gauss-Legendre quadrature) are available as thin adapters over the gonum
numeric libraries. They share the argument conventions and error reporting of
the trapezoid rule, but their numerical internals are gonum's, unmodified.

Sample sequences are plain slices of (x, y) pairs. A sequence is valid for
integration if it holds at least two points and its x coordinates are
strictly monotonic. Decreasing sequences are legal; integrating a reversed
sequence yields the negated result, since every segment width changes sign.

Subpackage sampling tabulates integrands asynchronously for cases where
evaluating the integrand is expensive; subpackage report renders refinement
studies as console tables.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package quadrature

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'quadrature'
func tracer() tracing.Trace {
	return tracing.Select("quadrature")
}

// QuadError is an error type for the quadrature module
type QuadError string

func (e QuadError) Error() string {
	return string(e)
}

// ErrTooFewSamples signals a sample sequence of fewer than two points; no
// segment exists to integrate over.
const ErrTooFewSamples = QuadError("too few samples; need at least two points")

// ErrNotMonotonic signals a sample sequence whose x coordinates are not
// strictly monotonic. Segment widths would be zero or sign-inconsistent.
const ErrNotMonotonic = QuadError("sample x coordinates are not strictly monotonic")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = QuadError("illegal arguments")

// ErrCompleted signals that a sample builder has already completed a sequence
// and it's illegal to further append points.
const ErrCompleted = QuadError("forbidden to append points; sample sequence has been completed")
