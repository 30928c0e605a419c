// Package lines provides per-book moneyline quotes for a game. Until a live
// odds feed is wired in, the static provider stands in with configured quotes.
package lines

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cypherlabdev/edge-pipeline-service/internal/models"
)

// ErrNoLines is returned when no quotes are known for a game.
var ErrNoLines = errors.New("no lines for game")

// StaticProvider serves quotes from an in-memory table, falling back to a
// default book set when a game has no entry. Safe for concurrent reads.
type StaticProvider struct {
	mu       sync.RWMutex
	quotes   map[string]map[string]models.Quote
	fallback map[string]models.Quote
}

// NewStaticProvider creates a provider with the given fallback quotes. A nil
// fallback means games without an entry return ErrNoLines.
func NewStaticProvider(fallback map[string]models.Quote) *StaticProvider {
	return &StaticProvider{
		quotes:   make(map[string]map[string]models.Quote),
		fallback: fallback,
	}
}

// DefaultBooks is a representative two-book market used when nothing else is
// configured: a sharp book and a softer one a couple of cents better.
func DefaultBooks() map[string]models.Quote {
	return map[string]models.Quote{
		"pinnacle": {Home: -128, Away: 118},
		"circa":    {Home: -125, Away: 115},
	}
}

// Set registers quotes for a game.
func (p *StaticProvider) Set(gameID string, quotes map[string]models.Quote) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.quotes[gameID] = quotes
}

// Lines returns the quotes for a game, or the fallback set.
func (p *StaticProvider) Lines(_ context.Context, gameID string) (map[string]models.Quote, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if q, ok := p.quotes[gameID]; ok {
		return q, nil
	}
	if p.fallback != nil {
		return p.fallback, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoLines, gameID)
}
