package sampling

import (
	"runtime"

	"github.com/guiguan/caster"
	"github.com/npillmayer/quadrature"
	"gonum.org/v1/gonum/floats"
)

// Some constants for fragment size defaults
const (
	smallTab  = 64
	mediumTab = 1024
	largeTab  = 10240
)

// fragment is a half-open index range [lo,hi) of abscissae evaluated as one
// unit of work.
type fragment struct {
	lo, hi int
}

// Tabulate evaluates f at n evenly spaced positions over [a,b], endpoints
// included, and returns the result as a sample sequence ready for
// integration. Clients may indicate a recommended fragment length fragSize;
// it may be 0, letting Tabulate use sensible defaults.
//
// Tabulation of large sequences is done concurrently, but this is
// transparent to the client: fragments are evaluated by a bounded pool of
// workers and Tabulate returns after the last fragment has been assembled.
// f must therefore be safe for concurrent calls.
func Tabulate(f quadrature.Func, a, b float64, n int, fragSize int) (quadrature.Samples, error) {
	if f == nil {
		return nil, quadrature.ErrIllegalArguments
	}
	if n < 2 {
		return nil, quadrature.ErrTooFewSamples
	}
	if a == b {
		return nil, quadrature.ErrIllegalArguments
	}
	if fragSize <= 0 || fragSize > n {
		if n < smallTab {
			fragSize = n
		} else if n < mediumTab {
			fragSize = smallTab
		} else if n < largeTab {
			fragSize = 256
		} else {
			fragSize = 512
		}
	}
	x := floats.Span(make([]float64, n), a, b)
	samples := make(quadrature.Samples, n)
	for i, xi := range x {
		samples[i].X = xi
	}
	evaluateFragmentsAsync(f, samples, fragSize)
	return samples, nil
}

// evaluateFragmentsAsync fills in the y values of samples fragment by
// fragment. Workers publish every completed fragment to a broadcaster; the
// call returns when all fragments have been announced.
func evaluateFragmentsAsync(f quadrature.Func, samples quadrature.Samples, fragSize int) {
	var frags []fragment
	for lo := 0; lo < len(samples); lo += fragSize {
		hi := lo + fragSize
		if hi > len(samples) {
			hi = len(samples)
		}
		frags = append(frags, fragment{lo: lo, hi: hi})
	}
	cast := caster.New(nil) // we will broadcast messages when fragments are evaluated
	defer cast.Close()
	done, _ := cast.Sub(nil, uint(len(frags)))
	//
	workers := runtime.GOMAXPROCS(0)
	if workers > len(frags) {
		workers = len(frags)
	}
	work := make(chan fragment)
	for w := 0; w < workers; w++ {
		go func() {
			// fragments carry disjoint index ranges, so workers never
			// touch the same sample
			for frag := range work {
				for i := frag.lo; i < frag.hi; i++ {
					samples[i].Y = f(samples[i].X)
				}
				cast.Pub(frag)
			}
		}()
	}
	go func() {
		for _, frag := range frags {
			work <- frag
		}
		close(work)
	}()
	for range frags { // wait for every fragment to be announced
		<-done
	}
	tracer().Debugf("tabulated %d samples in %d fragments", len(samples), len(frags))
}
