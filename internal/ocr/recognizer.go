// Package ocr turns slate screenshots into best-effort text. Recognition is
// strictly best-effort: every failure mode degrades to an empty string so the
// caller can fall back to manual paste, never to an error.
package ocr

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Recognizer extracts plain text from an image. An empty string means "no
// text", not an error.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) string
}

// Disabled is the recognizer used when no OCR backend is configured. It
// always returns empty text, pushing the flow to manual entry.
type Disabled struct{}

// Recognize returns empty text.
func (Disabled) Recognize(context.Context, []byte) string { return "" }

// RemoteRecognizer calls an HTTP OCR service that accepts raw image bytes and
// returns plain text.
type RemoteRecognizer struct {
	http   *resty.Client
	logger zerolog.Logger
}

// Config holds remote OCR configuration.
type Config struct {
	Endpoint string // full URL of the text-extraction endpoint
	Timeout  time.Duration
}

// NewRemoteRecognizer creates a recognizer backed by an HTTP OCR service.
func NewRemoteRecognizer(cfg Config, logger zerolog.Logger) *RemoteRecognizer {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	http := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(timeout)

	return &RemoteRecognizer{
		http:   http,
		logger: logger.With().Str("component", "ocr").Logger(),
	}
}

// Recognize posts the image and returns whatever text comes back. Any
// transport or status failure yields an empty string.
func (r *RemoteRecognizer) Recognize(ctx context.Context, image []byte) string {
	resp, err := r.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(image).
		Post("")
	if err != nil {
		r.logger.Warn().Err(err).Msg("ocr request failed, falling back to manual text")
		return ""
	}
	if resp.IsError() {
		r.logger.Warn().Int("status", resp.StatusCode()).Msg("ocr service errored, falling back to manual text")
		return ""
	}

	return string(resp.Body())
}
