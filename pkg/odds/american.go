// Package odds implements the numeric core of the edge pipeline: American/decimal
// odds conversion, proportional vig removal, and fractional-Kelly stake sizing.
//
// All probability math is done in float64. Invariants (round-trip, sum-to-one)
// hold within Epsilon.
package odds

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon is the tolerance used for floating-point invariants such as
// de-vigged probabilities summing to one.
const Epsilon = 1e-9

// ErrInvalidPrice is returned for American prices that have no defined
// conversion: zero, or a magnitude below 100.
var ErrInvalidPrice = errors.New("invalid american price")

// AmericanToDecimal converts an American price to decimal odds.
// +150 → 2.50, -150 → 1.6667.
//
// Prices with |price| < 100 sit in an ambiguous zone with no standard
// convention; they are rejected rather than guessed at.
func AmericanToDecimal(price int) (float64, error) {
	if price == 0 {
		return 0, fmt.Errorf("%w: price cannot be 0", ErrInvalidPrice)
	}
	if price > -100 && price < 100 {
		return 0, fmt.Errorf("%w: magnitude below 100 (%d)", ErrInvalidPrice, price)
	}

	if price > 0 {
		return 1.0 + float64(price)/100.0, nil
	}
	return 1.0 + 100.0/float64(-price), nil
}

// DecimalToAmerican converts decimal odds back to an American price.
// Round-trips with AmericanToDecimal within ±1 due to rounding.
func DecimalToAmerican(dec float64) (int, error) {
	if dec <= 1.0 {
		return 0, fmt.Errorf("%w: decimal odds must exceed 1.0", ErrInvalidPrice)
	}

	if dec >= 2.0 {
		return int(math.Round((dec - 1.0) * 100.0)), nil
	}
	return int(math.Round(-100.0 / (dec - 1.0))), nil
}

// ImpliedProbability returns the raw, vig-included probability of an American
// price: 1/decimal. Across a real two-sided quote these sum to more than one.
func ImpliedProbability(price int) (float64, error) {
	dec, err := AmericanToDecimal(price)
	if err != nil {
		return 0, err
	}
	return 1.0 / dec, nil
}

// FairMoneyline returns the American price whose implied probability equals
// prob, i.e. the no-vig line a model probability corresponds to.
func FairMoneyline(prob float64) (int, error) {
	if prob <= 0 || prob >= 1 {
		return 0, fmt.Errorf("%w: probability %.4f outside (0,1)", ErrInvalidPrice, prob)
	}
	return DecimalToAmerican(1.0 / prob)
}
