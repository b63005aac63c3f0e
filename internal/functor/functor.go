// Package functor implements the filter-flash functor: the discriminant
// gate Δ = b²−4ac and its two scalar projections.
package functor

import (
	"math"

	"github.com/obinexus/riftplayer/go-engine/internal/symbol"
)

// #region filter-flash

// DefaultEpsilon guards the filter denominator against division by zero.
const DefaultEpsilon = 1e-9

// FilterFlash evaluates discriminant gates and refines scalar pairs.
// All methods are pure and total over the reals.
type FilterFlash struct {
	epsilon float64
}

// New returns a functor with the default epsilon.
func New() *FilterFlash {
	return &FilterFlash{epsilon: DefaultEpsilon}
}

// #endregion filter-flash

// #region discriminant

// Discriminant computes Δ = b² − 4ac. a == 0 needs no special case: no
// division occurs, Δ degenerates to b².
func (f *FilterFlash) Discriminant(a, b, c float64) float64 {
	return b*b - 4*a*c
}

// Classify maps the sign of the discriminant to a system state. The
// Δ = 0 boundary is exact, not an epsilon comparison.
func (f *FilterFlash) Classify(a, b, c float64) symbol.DiscriminantState {
	d := f.Discriminant(a, b, c)
	switch {
	case d > 0:
		return symbol.Order
	case d == 0:
		return symbol.Consensus
	default:
		return symbol.Chaos
	}
}

// #endregion discriminant

// #region projections

// Filter is the refined projection A' = A·B / (|A|+|B|+ε). B == 0
// returns A unchanged.
func (f *FilterFlash) Filter(a, b float64) float64 {
	if b == 0 {
		return a
	}
	return (a * b) / (math.Abs(a) + math.Abs(b) + f.epsilon)
}

// Flash selects the argument with the larger magnitude; ties favor the
// first argument.
func (f *FilterFlash) Flash(a, b float64) float64 {
	if math.Abs(a) >= math.Abs(b) {
		return a
	}
	return b
}

// Composite returns both projections: (Filter(a,b), Flash(a,b)).
func (f *FilterFlash) Composite(a, b float64) (float64, float64) {
	return f.Filter(a, b), f.Flash(a, b)
}

// #endregion projections
