// Package pipeline turns parsed or fetched games into edge records: predict,
// de-vig, size, and assemble, one record per game.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/edge-pipeline-service/internal/model"
	"github.com/cypherlabdev/edge-pipeline-service/internal/models"
	"github.com/cypherlabdev/edge-pipeline-service/pkg/odds"
	"github.com/cypherlabdev/edge-pipeline-service/pkg/slate"
)

// ErrNoGames is the run's terminal failure when no games could be obtained at
// all. Anything short of that produces partial results instead.
var ErrNoGames = errors.New("no games to analyze")

// ScheduleProvider fetches the slate of games for a date.
type ScheduleProvider interface {
	Schedule(ctx context.Context, date string) ([]models.ScheduledGame, error)
}

// LinesProvider fetches per-book moneyline quotes for a game.
type LinesProvider interface {
	Lines(ctx context.Context, gameID string) (map[string]models.Quote, error)
}

// Engine runs the per-game edge computation. It is stateless between calls;
// all run-specific knobs arrive in RunParams.
type Engine struct {
	predictor model.Predictor
	schedule  ScheduleProvider
	lines     LinesProvider
	sharpBook string
	logger    zerolog.Logger
}

// NewEngine creates an edge engine. schedule and lines may be nil when only
// slate analysis is needed; RunDay requires both.
func NewEngine(predictor model.Predictor, schedule ScheduleProvider, lines LinesProvider, sharpBook string, logger zerolog.Logger) *Engine {
	return &Engine{
		predictor: predictor,
		schedule:  schedule,
		lines:     lines,
		sharpBook: sharpBook,
		logger:    logger.With().Str("component", "engine").Logger(),
	}
}

// AnalyzeSlate parses raw slate text and analyzes the games it yields.
// Returns ErrNoGames when nothing parseable was found, signaling the caller
// to request manual correction.
func (e *Engine) AnalyzeSlate(text, date string, params models.RunParams) ([]*models.EdgeRecord, error) {
	parsed := slate.Parse(text)
	slatesParsed.Inc()
	if len(parsed) == 0 {
		return nil, fmt.Errorf("%w: slate text yielded no games", ErrNoGames)
	}

	games := make([]models.Game, 0, len(parsed))
	for _, g := range parsed {
		games = append(games, models.Game{
			GameID:    fmt.Sprintf("%s_%s_%s", date, g.HomeTeam, g.AwayTeam),
			Date:      date,
			AwayTeam:  g.AwayTeam,
			AwayPrice: g.AwayPrice,
			HomeTeam:  g.HomeTeam,
			HomePrice: g.HomePrice,
			HomeField: params.HomeField,
		})
	}

	return e.AnalyzeGames(games, params)
}

// AnalyzeGames produces one edge record per game. A game whose de-vig or
// sizing fails gets a record with nil market fields rather than aborting the
// batch; partial results always beat total failure.
func (e *Engine) AnalyzeGames(games []models.Game, params models.RunParams) ([]*models.EdgeRecord, error) {
	if len(games) == 0 {
		return nil, ErrNoGames
	}

	records := make([]*models.EdgeRecord, 0, len(games))
	for i := range games {
		records = append(records, e.analyzeGame(&games[i], params))
	}
	lastRunGames.Set(float64(len(records)))

	e.logger.Info().
		Int("games", len(games)).
		Float64("bankroll", params.Bankroll).
		Msg("analysis run complete")

	return records, nil
}

// analyzeGame runs the full per-game chain: features → predict → devig →
// edge → stake → EV.
func (e *Engine) analyzeGame(g *models.Game, params models.RunParams) *models.EdgeRecord {
	gamesAnalyzed.Inc()

	feats := model.BuildFeatures(*g)
	pHome := e.predictor.PredictProba(feats)

	rec := &models.EdgeRecord{
		ID:         uuid.New(),
		Date:       g.Date,
		Away:       g.AwayTeam,
		Home:       g.HomeTeam,
		AwayPrice:  g.AwayPrice,
		HomePrice:  g.HomePrice,
		PHomeModel: round4(pHome),
		AnalyzedAt: time.Now().UTC(),
	}

	if fairML, err := odds.FairMoneyline(pHome); err == nil {
		rec.FairMoneyline = fairML
	}

	pMktHome, _, err := odds.DevigProportional(g.HomePrice, g.AwayPrice)
	if err != nil {
		devigFailures.Inc()
		e.logger.Warn().
			Err(err).
			Str("game", g.GameKey()).
			Int("home_price", g.HomePrice).
			Int("away_price", g.AwayPrice).
			Msg("devig failed, leaving market fields blank")
	} else {
		mkt := round4(pMktHome)
		edgePct := round2((pHome - pMktHome) * 100)
		rec.PHomeMarket = &mkt
		rec.EdgePct = &edgePct
	}

	stake, err := odds.Stake(params.Bankroll, g.HomePrice, pHome, params.KellyFraction, params.MaxPct)
	if err != nil {
		e.logger.Warn().
			Err(err).
			Str("game", g.GameKey()).
			Msg("stake sizing failed, recommending zero")
		stake = 0
	}

	ev := 0.0
	if v, evErr := odds.ExpectedValue(g.HomePrice, pHome, stake); evErr == nil {
		ev = v
	}

	rec.Stake = decimal.NewFromFloat(stake).Round(2)
	rec.ExpectedEV = decimal.NewFromFloat(ev).Round(2)

	return rec
}

// RunDay fetches the date's schedule, pulls per-book lines for each game,
// de-vigs the sharp book's quote, and sizes the best playable home price
// across books.
func (e *Engine) RunDay(ctx context.Context, date string, params models.RunParams) ([]*models.EdgeRecord, error) {
	if e.schedule == nil || e.lines == nil {
		return nil, errors.New("day runs require schedule and lines providers")
	}

	sched, err := e.schedule.Schedule(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("fetching schedule for %s: %w", date, err)
	}
	if len(sched) == 0 {
		return nil, fmt.Errorf("%w: empty schedule for %s", ErrNoGames, date)
	}

	records := make([]*models.EdgeRecord, 0, len(sched))
	for _, sg := range sched {
		game := models.Game{
			GameID:    sg.GameID,
			Date:      date,
			AwayTeam:  sg.Away,
			HomeTeam:  sg.Home,
			HomeField: params.HomeField,
		}

		quotes, err := e.lines.Lines(ctx, sg.GameID)
		if err != nil {
			e.logger.Warn().
				Err(err).
				Str("game_id", sg.GameID).
				Msg("no lines for game, reporting model output only")
			records = append(records, e.analyzeGame(&game, params))
			continue
		}

		sharp, ok := quotes[e.sharpBook]
		if ok {
			game.HomePrice = sharp.Home
			game.AwayPrice = sharp.Away
		}

		rec := e.analyzeGame(&game, params)

		// Re-size at the best playable home price across all books.
		homeLines := make(map[string]int, len(quotes))
		for book, q := range quotes {
			homeLines[book] = q.Home
		}
		if book, price, err := odds.BestLine(homeLines); err == nil {
			rec.Book = book
			rec.Price = price

			pHome := rec.PHomeModel
			if stake, err := odds.Stake(params.Bankroll, price, pHome, params.KellyFraction, params.MaxPct); err == nil {
				rec.Stake = decimal.NewFromFloat(stake).Round(2)
				if ev, err := odds.ExpectedValue(price, pHome, stake); err == nil {
					rec.ExpectedEV = decimal.NewFromFloat(ev).Round(2)
				}
			}
		}

		records = append(records, rec)
	}

	e.logger.Info().
		Str("date", date).
		Int("games", len(records)).
		Msg("day run complete")

	return records, nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
