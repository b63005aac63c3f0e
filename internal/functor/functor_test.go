package functor

import (
	"math"
	"testing"

	"github.com/obinexus/riftplayer/go-engine/internal/symbol"
)

func TestDiscriminantVectors(t *testing.T) {
	f := New()

	cases := []struct {
		a, b, c float64
		delta   float64
		state   symbol.DiscriminantState
	}{
		{1, 4, 1, 12, symbol.Order},
		{1, 2, 1, 0, symbol.Consensus},
		{1, 0, 1, -4, symbol.Chaos},
		{2, 3, -1, 17, symbol.Order},
		{-1, 0, 1, 4, symbol.Order},
	}
	for _, tc := range cases {
		if d := f.Discriminant(tc.a, tc.b, tc.c); d != tc.delta {
			t.Errorf("Discriminant(%v,%v,%v) = %v, want %v", tc.a, tc.b, tc.c, d, tc.delta)
		}
		if s := f.Classify(tc.a, tc.b, tc.c); s != tc.state {
			t.Errorf("Classify(%v,%v,%v) = %s, want %s", tc.a, tc.b, tc.c, s, tc.state)
		}
	}
}

func TestDiscriminantZeroLeadingCoefficient(t *testing.T) {
	f := New()
	// a = 0 degenerates to b² without any division.
	if d := f.Discriminant(0, 3, 99); d != 9 {
		t.Fatalf("expected 9, got %v", d)
	}
	if s := f.Classify(0, 0, 5); s != symbol.Consensus {
		t.Fatalf("expected CONSENSUS for b=0, a=0, got %s", s)
	}
}

func TestExactConsensusBoundary(t *testing.T) {
	f := New()
	// Δ = 0 must classify by exact comparison, not epsilon.
	if s := f.Classify(4, 4, 1); s != symbol.Consensus {
		t.Fatalf("expected CONSENSUS at exact boundary, got %s", s)
	}
}

func TestFilterZeroSecondArgument(t *testing.T) {
	f := New()
	if got := f.Filter(0.75, 0); got != 0.75 {
		t.Fatalf("Filter(A, 0) must return A, got %v", got)
	}
}

func TestFilterRefinement(t *testing.T) {
	f := New()
	got := f.Filter(1, 1)
	want := 1.0 / (2.0 + DefaultEpsilon)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("Filter(1,1) = %v, want %v", got, want)
	}
}

func TestFlashMaxByMagnitude(t *testing.T) {
	f := New()
	if got := f.Flash(1, -3); got != -3 {
		t.Fatalf("expected -3, got %v", got)
	}
	if got := f.Flash(-2, 1); got != -2 {
		t.Fatalf("expected -2, got %v", got)
	}
	// Ties favor the first argument.
	if got := f.Flash(2, -2); got != 2 {
		t.Fatalf("tie must favor first argument, got %v", got)
	}
}

func TestComposite(t *testing.T) {
	f := New()
	filtered, flashed := f.Composite(0.8, 0.6)
	if filtered != f.Filter(0.8, 0.6) || flashed != f.Flash(0.8, 0.6) {
		t.Fatal("Composite must agree with Filter and Flash")
	}
}
