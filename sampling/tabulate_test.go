package sampling

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/quadrature"
)

func TestTabulateMatchesUniform(t *testing.T) {
	f := func(x float64) float64 { return math.Sin(x) }
	want, err := quadrature.Uniform(f, 0, math.Pi, 101)
	if err != nil {
		t.Fatal(err.Error())
	}
	got, err := Tabulate(f, 0, math.Pi, 101, 7)
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(got))
	}
	// both tabulations evaluate f at identical abscissae
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestTabulateDefaultFragmentSize(t *testing.T) {
	f := func(x float64) float64 { return x * x }
	samples, err := Tabulate(f, 1, 4, 2049, 0)
	if err != nil {
		t.Fatal(err.Error())
	}
	if samples[0].X != 1 || samples[len(samples)-1].X != 4 {
		t.Errorf("expected endpoints 1 and 4, got %v and %v",
			samples[0].X, samples[len(samples)-1].X)
	}
	area, err := quadrature.Trapezoidal(samples)
	if err != nil {
		t.Fatal(err.Error())
	}
	if math.Abs(area-21.0) > 1e-4 {
		t.Errorf("expected integral close to 21, is %v", area)
	}
}

func TestTabulateRejectsBadArguments(t *testing.T) {
	f := func(x float64) float64 { return x }
	if _, err := Tabulate(nil, 0, 1, 10, 0); !errors.Is(err, quadrature.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for nil integrand, got %v", err)
	}
	if _, err := Tabulate(f, 0, 1, 1, 0); !errors.Is(err, quadrature.ErrTooFewSamples) {
		t.Errorf("expected ErrTooFewSamples for n=1, got %v", err)
	}
	if _, err := Tabulate(f, 1, 1, 10, 0); !errors.Is(err, quadrature.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for empty interval, got %v", err)
	}
}
