// Package statsapi fetches the day's schedule from the MLB Stats API.
package statsapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/edge-pipeline-service/internal/models"
)

// ErrUnavailable is returned when the schedule source cannot be reached or
// answers with a non-success status. The pipeline surfaces it rather than
// fabricating games.
var ErrUnavailable = errors.New("schedule provider unavailable")

const defaultBaseURL = "https://statsapi.mlb.com"

// Client is a schedule provider backed by the MLB Stats API.
type Client struct {
	http   *resty.Client
	logger zerolog.Logger
}

// Config holds schedule client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a schedule client. An empty base URL falls back to the
// public MLB Stats API host.
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &Client{
		http:   http,
		logger: logger.With().Str("component", "statsapi").Logger(),
	}
}

// scheduleResponse mirrors the slice of the Stats API schedule payload we use.
type scheduleResponse struct {
	Dates []struct {
		Games []struct {
			GamePk int `json:"gamePk"`
			Teams  struct {
				Home struct {
					Team struct {
						Name         string `json:"name"`
						Abbreviation string `json:"abbreviation"`
					} `json:"team"`
				} `json:"home"`
				Away struct {
					Team struct {
						Name         string `json:"name"`
						Abbreviation string `json:"abbreviation"`
					} `json:"team"`
				} `json:"away"`
			} `json:"teams"`
		} `json:"games"`
	} `json:"dates"`
}

// Schedule returns the games scheduled for an ISO date.
func (c *Client) Schedule(ctx context.Context, date string) ([]models.ScheduledGame, error) {
	var payload scheduleResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"sportId": "1",
			"date":    date,
		}).
		SetResult(&payload).
		Get("/api/v1/schedule")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode())
	}

	var games []models.ScheduledGame
	for _, d := range payload.Dates {
		for _, g := range d.Games {
			home := g.Teams.Home.Team.Abbreviation
			if home == "" {
				home = g.Teams.Home.Team.Name
			}
			away := g.Teams.Away.Team.Abbreviation
			if away == "" {
				away = g.Teams.Away.Team.Name
			}

			games = append(games, models.ScheduledGame{
				GameID: fmt.Sprintf("%d", g.GamePk),
				Home:   home,
				Away:   away,
			})
		}
	}

	c.logger.Debug().
		Str("date", date).
		Int("games", len(games)).
		Msg("fetched schedule")

	return games, nil
}
