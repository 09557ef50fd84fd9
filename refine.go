package quadrature

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import "fmt"

// Refinement is one row of a refinement study: the trapezoid estimate
// obtained from N evenly spaced samples.
type Refinement struct {
	N        int
	Estimate float64
}

// Refine runs a refinement study of the trapezoid rule for f over [a,b]:
// for every sample count in counts it tabulates f uniformly and integrates.
// Counts are processed in the given order, one row per count. For smooth
// integrands the estimates converge toward the true integral as counts grow.
func Refine(f Func, a, b float64, counts []int) ([]Refinement, error) {
	if f == nil || len(counts) == 0 {
		return nil, ErrIllegalArguments
	}
	rows := make([]Refinement, 0, len(counts))
	for _, n := range counts {
		samples, err := Uniform(f, a, b, n)
		if err != nil {
			return nil, fmt.Errorf("refinement with %d samples: %w", n, err)
		}
		est, err := Trapezoidal(samples)
		if err != nil {
			return nil, fmt.Errorf("refinement with %d samples: %w", n, err)
		}
		rows = append(rows, Refinement{N: n, Estimate: est})
	}
	tracer().Debugf("refinement study finished with %d levels", len(rows))
	return rows, nil
}
