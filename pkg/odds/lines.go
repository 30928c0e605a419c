package odds

import "fmt"

// BestLine picks the book offering the highest decimal payout from a map of
// book name to American price. Books whose price fails conversion are skipped;
// an error is returned only when no playable price remains.
func BestLine(prices map[string]int) (book string, price int, err error) {
	bestDec := 0.0
	for name, p := range prices {
		dec, convErr := AmericanToDecimal(p)
		if convErr != nil {
			continue
		}
		// Tie-break on book name so results are stable across map iteration order.
		if dec > bestDec || (dec == bestDec && name < book) {
			bestDec = dec
			book = name
			price = p
		}
	}

	if bestDec == 0 {
		return "", 0, fmt.Errorf("%w: no playable price among %d books", ErrInvalidPrice, len(prices))
	}
	return book, price, nil
}
