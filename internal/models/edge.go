package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Game is one matchup queued for a single analysis run. Games are transient:
// they live for one run and are recomputed from scratch on the next.
type Game struct {
	GameID    string  `json:"game_id"`
	Date      string  `json:"date"` // ISO YYYY-MM-DD
	AwayTeam  string  `json:"away_team"`
	AwayPrice int     `json:"away_price"`
	HomeTeam  string  `json:"home_team"`
	HomePrice int     `json:"home_price"`
	HomeField float64 `json:"home_field"` // home-field-advantage scalar for the feature builder
}

// GameKey returns the cache-friendly identity of a game within its date.
func (g *Game) GameKey() string {
	return fmt.Sprintf("%s@%s", g.AwayTeam, g.HomeTeam)
}

// EdgeRecord is the per-game output of the pipeline: the game, the model and
// market probabilities, and the sizing that follows from them.
//
// Market-derived fields are pointers: a failed de-vig leaves them nil rather
// than dropping the row, so team and price data survive for manual review.
type EdgeRecord struct {
	ID            uuid.UUID       `json:"id"`
	Date          string          `json:"date"`
	Away          string          `json:"away"`
	Home          string          `json:"home"`
	AwayPrice     int             `json:"away_price"`
	HomePrice     int             `json:"home_price"`
	PHomeModel    float64         `json:"p_home_model"`
	PHomeMarket   *float64        `json:"p_home_market"`
	EdgePct       *float64        `json:"edge_pct"`
	FairMoneyline int             `json:"fair_ml_home"`
	Book          string          `json:"book,omitempty"`  // best playable book (day runs)
	Price         int             `json:"price,omitempty"` // price at that book
	Stake         decimal.Decimal `json:"stake"`
	ExpectedEV    decimal.Decimal `json:"expected_ev"`
	AnalyzedAt    time.Time       `json:"analyzed_at"`
}

// GameKey returns the same identity a Game produces, for cache lookups.
func (r *EdgeRecord) GameKey() string {
	return fmt.Sprintf("%s@%s", r.Away, r.Home)
}

// RunParams carries the bankroll and risk controls for one analysis run.
// Passing them explicitly keeps the pipeline pure; defaults come from config.
type RunParams struct {
	Bankroll      float64 `json:"bankroll"`       // e.g. 100000
	KellyFraction float64 `json:"kelly_fraction"` // (0,1], e.g. 0.5 for half Kelly
	MaxPct        float64 `json:"max_pct"`        // hard per-bet bankroll cap, e.g. 0.02
	HomeField     float64 `json:"home_field"`     // fed to the feature builder
}

// ScheduledGame is one entry from the schedule provider.
type ScheduledGame struct {
	GameID string `json:"game_id"`
	Home   string `json:"home"`
	Away   string `json:"away"`
}

// Quote is a two-sided moneyline from a single book.
type Quote struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// KafkaSlateTextMessage is a raw slate-text batch consumed from Kafka.
type KafkaSlateTextMessage struct {
	Date      string    `json:"date"`
	Text      string    `json:"text"`
	BatchID   string    `json:"batch_id"`
	Timestamp time.Time `json:"timestamp"`
}
