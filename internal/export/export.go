// Package export serializes edge records for downstream use: CSV and JSON
// with a fixed column set, and a ranked console table.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/cypherlabdev/edge-pipeline-service/internal/models"
)

// Columns is the fixed export header. A record whose de-vig failed exports
// blank market/edge cells so the row survives for manual review.
var Columns = []string{
	"date", "away", "home", "away_price", "home_price",
	"p_home_model", "p_home_market", "edge_pct", "stake", "expected_ev",
}

// WriteCSV writes records in the fixed column order, header row first.
func WriteCSV(w io.Writer, records []*models.EdgeRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Date,
			rec.Away,
			rec.Home,
			strconv.Itoa(rec.AwayPrice),
			strconv.Itoa(rec.HomePrice),
			formatProb(rec.PHomeModel),
			formatProbPtr(rec.PHomeMarket),
			formatPctPtr(rec.EdgePct),
			rec.Stake.StringFixed(2),
			rec.ExpectedEV.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// exportRow mirrors the CSV columns as one JSON object per game.
type exportRow struct {
	Date        string   `json:"date"`
	Away        string   `json:"away"`
	Home        string   `json:"home"`
	AwayPrice   int      `json:"away_price"`
	HomePrice   int      `json:"home_price"`
	PHomeModel  float64  `json:"p_home_model"`
	PHomeMarket *float64 `json:"p_home_market"`
	EdgePct     *float64 `json:"edge_pct"`
	Stake       float64  `json:"stake"`
	ExpectedEV  float64  `json:"expected_ev"`
	FairML      int      `json:"fair_ml_home,omitempty"`
	Book        string   `json:"book,omitempty"`
	Price       int      `json:"price,omitempty"`
}

// WriteJSON writes records as an indented JSON array with the CSV column set
// plus the day-run extras (fair line, best book and price).
func WriteJSON(w io.Writer, records []*models.EdgeRecord) error {
	rows := make([]exportRow, 0, len(records))
	for _, rec := range records {
		stake, _ := rec.Stake.Float64()
		ev, _ := rec.ExpectedEV.Float64()
		rows = append(rows, exportRow{
			Date:        rec.Date,
			Away:        rec.Away,
			Home:        rec.Home,
			AwayPrice:   rec.AwayPrice,
			HomePrice:   rec.HomePrice,
			PHomeModel:  rec.PHomeModel,
			PHomeMarket: rec.PHomeMarket,
			EdgePct:     rec.EdgePct,
			Stake:       stake,
			ExpectedEV:  ev,
			FairML:      rec.FairMoneyline,
			Book:        rec.Book,
			Price:       rec.Price,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// RenderTable prints records ranked by edge, best first. Records without a
// market probability sort last and show blank market cells.
func RenderTable(w io.Writer, records []*models.EdgeRecord) {
	ranked := RankByEdge(records)

	table := tablewriter.NewWriter(w)
	table.Header("Date", "Away", "Home", "Away ML", "Home ML", "P(home)", "Mkt P(home)", "Edge %", "Stake", "EV")

	for _, rec := range ranked {
		table.Append(
			rec.Date,
			rec.Away,
			rec.Home,
			fmt.Sprintf("%+d", rec.AwayPrice),
			fmt.Sprintf("%+d", rec.HomePrice),
			formatProb(rec.PHomeModel),
			formatProbPtr(rec.PHomeMarket),
			formatPctPtr(rec.EdgePct),
			"$"+rec.Stake.StringFixed(2),
			"$"+rec.ExpectedEV.StringFixed(2),
		)
	}

	table.Render()
}

// RankByEdge returns a copy of records sorted by edge descending; records
// with no edge (failed de-vig) go last in their original order.
func RankByEdge(records []*models.EdgeRecord) []*models.EdgeRecord {
	ranked := make([]*models.EdgeRecord, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].EdgePct, ranked[j].EdgePct
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a > *b
	})

	return ranked
}

func formatProb(p float64) string {
	return strconv.FormatFloat(p, 'f', 4, 64)
}

func formatProbPtr(p *float64) string {
	if p == nil {
		return ""
	}
	return formatProb(*p)
}

func formatPctPtr(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', 2, 64)
}
