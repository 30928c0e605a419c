// Package slate extracts team/price pairs from raw sportsbook slate text and
// groups them into two-sided games.
//
// Input typically comes from OCR of a sportsbook screenshot or a manual paste,
// so formatting is unknown and inconsistent. The parser is tolerant of noise
// (headers, game times, OCR garbage are simply skipped) but relies on the text
// preserving the away/home row adjacency of the screenshot — a reordered input
// will pair teams incorrectly. That is a known limitation of the heuristic,
// not a bug.
package slate

import (
	"regexp"
	"strconv"
	"strings"
)

// teamLineRe matches a team name token followed by a signed three-digit
// moneyline price on the same line. The team capture is non-greedy so the
// price's leading whitespace is not swallowed into long team names.
var teamLineRe = regexp.MustCompile(`([A-Z][A-Za-z. ]+?)\s+([+-]?\d{3})\b`)

// Game is one two-sided matchup parsed from a slate. Away is listed first on
// sportsbook slates, home second.
type Game struct {
	AwayTeam  string `json:"away_team"`
	AwayPrice int    `json:"away_price"`
	HomeTeam  string `json:"home_team"`
	HomePrice int    `json:"home_price"`
}

type entry struct {
	team  string
	price int
}

// Parse extracts games from raw multi-line slate text.
//
// Each non-empty line is scanned for the first team/price match; lines without
// one are discarded. Matches are kept in input order and paired consecutively:
// even index = away side, the following odd index = home side. A trailing
// unpaired entry is dropped. Parse never fails — worst case it returns no
// games, which callers treat as "request manual correction".
func Parse(text string) []Game {
	var pairs []entry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := teamLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		price, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		pairs = append(pairs, entry{team: strings.TrimSpace(m[1]), price: price})
	}

	games := make([]Game, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		games = append(games, Game{
			AwayTeam:  pairs[i].team,
			AwayPrice: pairs[i].price,
			HomeTeam:  pairs[i+1].team,
			HomePrice: pairs[i+1].price,
		})
	}
	return games
}
