package odds

import "math"

// Stake computes the recommended bet size for a price and model probability
// using the fractional Kelly criterion.
//
// The full Kelly fraction of bankroll is f* = (b·p − q)/b where b is the net
// decimal payout (decimal − 1), p the model win probability and q = 1 − p.
// A non-positive f* means no perceived edge and the stake is zero; the system
// never recommends betting into a disadvantage. Otherwise the stake is
// bankroll · min(fraction · f*, maxPct) — the per-bet cap always wins, no
// matter how large f* gets.
func Stake(bankroll float64, price int, prob, fraction, maxPct float64) (float64, error) {
	dec, err := AmericanToDecimal(price)
	if err != nil {
		return 0, err
	}

	b := dec - 1.0
	q := 1.0 - prob
	f := (b*prob - q) / b
	if f <= 0 {
		return 0, nil
	}

	return bankroll * math.Min(fraction*f, maxPct), nil
}

// ExpectedValue returns the expected profit of risking stake at the given
// price if the true win probability equals prob:
//
//	ev = stake · (p·b − (1 − p))
//
// EV can be negative; it is reported even when the stake is forced to zero so
// an unplayable edge is still visible.
func ExpectedValue(price int, prob, stake float64) (float64, error) {
	dec, err := AmericanToDecimal(price)
	if err != nil {
		return 0, err
	}

	b := dec - 1.0
	return stake * (prob*b - (1.0 - prob)), nil
}
