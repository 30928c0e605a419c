package odds

import (
	"errors"
	"fmt"
)

// ErrInvalidQuote is returned when a two-sided quote cannot be de-vigged,
// either because a price fails conversion or the pair is degenerate.
var ErrInvalidQuote = errors.New("invalid two-sided quote")

// DevigProportional removes the bookmaker margin from a two-sided American
// quote using the proportional (multiplicative) method: each side's raw
// implied probability is divided by the overround so the pair sums to one.
//
//	-110 / -110 → 0.50 / 0.50
//	-128 / +118 → 0.5503 / 0.4497
//
// The additive method is deliberately not used here; proportional matches the
// two-way moneyline markets this pipeline handles.
func DevigProportional(priceA, priceB int) (fairA, fairB float64, err error) {
	pA, err := ImpliedProbability(priceA)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: side a: %v", ErrInvalidQuote, err)
	}
	pB, err := ImpliedProbability(priceB)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: side b: %v", ErrInvalidQuote, err)
	}

	total := pA + pB
	if total <= 0 {
		return 0, 0, fmt.Errorf("%w: overround %.6f is non-positive", ErrInvalidQuote, total)
	}

	return pA / total, pB / total, nil
}

// Overround returns the vig-included probability sum of a two-sided quote.
// Values above 1.0 indicate the bookmaker margin.
func Overround(priceA, priceB int) (float64, error) {
	pA, err := ImpliedProbability(priceA)
	if err != nil {
		return 0, err
	}
	pB, err := ImpliedProbability(priceB)
	if err != nil {
		return 0, err
	}
	return pA + pB, nil
}
