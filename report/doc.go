/*
Package report renders quadrature refinement studies as fixed-width console
tables.

The output is textual only: one row per refinement level, with the sample
count, the integral estimate and, if a reference value is known, the
absolute error, color-coded by magnitude. Rendering honors the width of the
attached terminal when writing to one.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package report

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'quadrature'
func tracer() tracing.Trace {
	return tracing.Select("quadrature")
}
