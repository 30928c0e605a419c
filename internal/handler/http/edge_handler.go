package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/edge-pipeline-service/internal/export"
	"github.com/cypherlabdev/edge-pipeline-service/internal/models"
	"github.com/cypherlabdev/edge-pipeline-service/internal/ocr"
	"github.com/cypherlabdev/edge-pipeline-service/internal/pipeline"
	"github.com/cypherlabdev/edge-pipeline-service/internal/service"
)

// maxImageBytes caps uploaded screenshot size.
const maxImageBytes = 10 << 20

// EdgeHandler handles HTTP requests for slate analysis and edge records.
type EdgeHandler struct {
	service    *service.EdgeService
	recognizer ocr.Recognizer
	defaults   models.RunParams
	logger     zerolog.Logger
}

// NewEdgeHandler creates a new edge HTTP handler.
func NewEdgeHandler(service *service.EdgeService, recognizer ocr.Recognizer, defaults models.RunParams, logger zerolog.Logger) *EdgeHandler {
	return &EdgeHandler{
		service:    service,
		recognizer: recognizer,
		defaults:   defaults,
		logger:     logger.With().Str("component", "edge_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux.
func (h *EdgeHandler) RegisterRoutes(mux *http.ServeMux) {
	// POST /api/v1/slates/analyze - analyze raw slate text
	// POST /api/v1/slates/recognize - extract text from a screenshot
	mux.HandleFunc("/api/v1/slates/", h.handleSlates)

	// POST /api/v1/runs/:date - provider-backed day run
	mux.HandleFunc("/api/v1/runs/", h.handleRunDay)

	// GET /api/v1/edges/:date - cached records
	// GET /api/v1/edges/:date/export?format=csv|json - file export
	mux.HandleFunc("/api/v1/edges/", h.handleEdges)
}

// AnalyzeSlateRequest is the body of POST /api/v1/slates/analyze. Zero-valued
// risk parameters fall back to the configured defaults.
type AnalyzeSlateRequest struct {
	Date          string  `json:"date"`
	Text          string  `json:"text"`
	Bankroll      float64 `json:"bankroll,omitempty"`
	KellyFraction float64 `json:"kelly_fraction,omitempty"`
	MaxPct        float64 `json:"max_pct,omitempty"`
}

func (h *EdgeHandler) handleSlates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	switch strings.TrimPrefix(r.URL.Path, "/api/v1/slates/") {
	case "analyze":
		h.handleAnalyzeSlate(w, r)
	case "recognize":
		h.handleRecognize(w, r)
	default:
		h.errorResponse(w, http.StatusNotFound, "unknown slates endpoint")
	}
}

// handleAnalyzeSlate handles POST /api/v1/slates/analyze
func (h *EdgeHandler) handleAnalyzeSlate(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeSlateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	date, ok := h.validDate(w, req.Date)
	if !ok {
		return
	}

	params, err := h.resolveParams(req)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.service.AnalyzeSlate(r.Context(), req.Text, date, params)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoGames) {
			h.errorResponse(w, http.StatusUnprocessableEntity,
				"no games found in slate text; correct the text and retry")
			return
		}
		h.logger.Error().Err(err).Str("date", date).Msg("slate analysis failed")
		h.errorResponse(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"date":    date,
		"count":   len(records),
		"records": export.RankByEdge(records),
	})
}

// handleRecognize handles POST /api/v1/slates/recognize
func (h *EdgeHandler) handleRecognize(w http.ResponseWriter, r *http.Request) {
	image, err := io.ReadAll(io.LimitReader(r.Body, maxImageBytes))
	if err != nil || len(image) == 0 {
		h.errorResponse(w, http.StatusBadRequest, "image body required")
		return
	}

	// Empty text is a valid outcome: the caller falls back to manual paste.
	text := h.recognizer.Recognize(r.Context(), image)

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"text":   text,
		"manual": text == "",
	})
}

// handleRunDay handles POST /api/v1/runs/:date
func (h *EdgeHandler) handleRunDay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	date, ok := h.validDate(w, strings.TrimPrefix(r.URL.Path, "/api/v1/runs/"))
	if !ok {
		return
	}

	records, err := h.service.RunDay(r.Context(), date, h.defaults)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoGames) {
			h.errorResponse(w, http.StatusNotFound, "no games scheduled for date")
			return
		}
		h.logger.Error().Err(err).Str("date", date).Msg("day run failed")
		h.errorResponse(w, http.StatusBadGateway, "schedule provider unavailable")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"date":    date,
		"count":   len(records),
		"records": export.RankByEdge(records),
	})
}

// handleEdges handles GET /api/v1/edges/:date and GET /api/v1/edges/:date/export
func (h *EdgeHandler) handleEdges(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1/edges/")
	parts := strings.Split(path, "/")

	date, ok := h.validDate(w, parts[0])
	if !ok {
		return
	}

	records, err := h.service.GetEdgesByDate(r.Context(), date)
	if err != nil {
		h.logger.Error().Err(err).Str("date", date).Msg("failed to retrieve edge records")
		h.errorResponse(w, http.StatusInternalServerError, "failed to retrieve edge records")
		return
	}

	switch {
	case len(parts) == 1:
		h.jsonResponse(w, http.StatusOK, map[string]interface{}{
			"date":    date,
			"count":   len(records),
			"records": export.RankByEdge(records),
		})
	case len(parts) == 2 && parts[1] == "export":
		h.exportResponse(w, date, records, r.URL.Query().Get("format"))
	default:
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/edges/:date or /api/v1/edges/:date/export")
	}
}

// exportResponse writes the records as a downloadable CSV or JSON file.
func (h *EdgeHandler) exportResponse(w http.ResponseWriter, date string, records []*models.EdgeRecord, format string) {
	ranked := export.RankByEdge(records)

	switch format {
	case "", "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="edges_`+date+`.csv"`)
		if err := export.WriteCSV(w, ranked); err != nil {
			h.logger.Error().Err(err).Msg("csv export failed")
		}
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="recommendations_`+date+`.json"`)
		if err := export.WriteJSON(w, ranked); err != nil {
			h.logger.Error().Err(err).Msg("json export failed")
		}
	default:
		h.errorResponse(w, http.StatusBadRequest, "format must be csv or json")
	}
}

// validDate enforces ISO dates; a bad one writes the error response itself.
func (h *EdgeHandler) validDate(w http.ResponseWriter, date string) (string, bool) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return "", false
	}
	return date, true
}

// resolveParams merges request overrides over configured defaults.
func (h *EdgeHandler) resolveParams(req AnalyzeSlateRequest) (models.RunParams, error) {
	params := h.defaults

	if req.Bankroll != 0 {
		if req.Bankroll < 0 {
			return params, errors.New("bankroll must be positive")
		}
		params.Bankroll = req.Bankroll
	}
	if req.KellyFraction != 0 {
		if req.KellyFraction < 0 || req.KellyFraction > 1 {
			return params, errors.New("kelly_fraction must be in (0,1]")
		}
		params.KellyFraction = req.KellyFraction
	}
	if req.MaxPct != 0 {
		if req.MaxPct < 0 || req.MaxPct > 1 {
			return params, errors.New("max_pct must be in (0,1]")
		}
		params.MaxPct = req.MaxPct
	}

	return params, nil
}

// jsonResponse writes a JSON response.
func (h *EdgeHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response.
func (h *EdgeHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
