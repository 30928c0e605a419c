package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gamesAnalyzed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "edge_pipeline",
		Name:      "games_analyzed_total",
		Help:      "Number of games run through the edge pipeline.",
	})

	devigFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "edge_pipeline",
		Name:      "devig_failures_total",
		Help:      "Number of games whose two-sided quote could not be de-vigged.",
	})

	slatesParsed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "edge_pipeline",
		Name:      "slates_parsed_total",
		Help:      "Number of raw slate texts run through the parser.",
	})

	lastRunGames = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "edge_pipeline",
		Name:      "last_run_games",
		Help:      "Game count of the most recent analysis run.",
	})
)
