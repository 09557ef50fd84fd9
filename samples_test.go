package quadrature

import (
	"errors"
	"testing"
)

func TestUniformTabulation(t *testing.T) {
	samples, err := Uniform(parabola, 1, 4, 5)
	if err != nil {
		t.Fatal(err.Error())
	}
	want := parabolaSamples()
	if len(samples) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(samples))
	}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("sample %d: expected %v, got %v", i, want[i], samples[i])
		}
	}
}

func TestUniformRejectsBadArguments(t *testing.T) {
	if _, err := Uniform(parabola, 1, 4, 1); !errors.Is(err, ErrTooFewSamples) {
		t.Errorf("expected ErrTooFewSamples for n=1, got %v", err)
	}
	if _, err := Uniform(parabola, 2, 2, 5); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for empty interval, got %v", err)
	}
}

func TestValidateAcceptsDecreasing(t *testing.T) {
	samples := parabolaSamples().Reversed()
	if err := samples.Validate(); err != nil {
		t.Errorf("expected decreasing sequence to be valid, got %v", err)
	}
	if samples.IsIncreasing() {
		t.Errorf("expected reversed sequence to report decreasing order")
	}
}

func TestReversedIsInvolution(t *testing.T) {
	samples := parabolaSamples()
	back := samples.Reversed().Reversed()
	for i := range samples {
		if samples[i] != back[i] {
			t.Fatalf("double reversal changed sample %d", i)
		}
	}
}
