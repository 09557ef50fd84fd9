/*
Package sampling provides API helpers to tabulate integrands as sample
sequences.

Evaluating an integrand at many abscissae is the one step of a quadrature
workflow that benefits from concurrency. The current implementation
partitions the abscissae into fragments and evaluates fragments on a bounded
worker pool, broadcasting fragment completion internally, while preserving a
synchronous `Tabulate` API. Integration itself stays single-threaded.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package sampling

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'quadrature'
func tracer() tracing.Trace {
	return tracing.Select("quadrature")
}
