// Package web holds the JSON request/response helpers used by every module handler.
package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/georgemunganga/backhouse/internal/apperr"
	"go.uber.org/zap"
)

// DateLayout is the calendar-day format accepted in query strings.
const DateLayout = "2006-01-02"

// Respond writes body as JSON with the given status.
func Respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(body)
}

// Error writes {"error": msg} using the status derived from err. Server-side failures are logged.
func Error(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError && logger != nil {
		logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err))
	}
	Respond(w, status, map[string]string{"error": err.Error()})
}

// Decode reads a single JSON value from the body into dst, rejecting trailing data.
func Decode(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Invalid("request body is required")
		}
		return apperr.Invalid("invalid JSON body: %v", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return apperr.Invalid("invalid JSON body: unexpected data after the first value")
	}
	return nil
}

// DateParam parses an optional YYYY-MM-DD query value in loc. Empty yields now in loc.
func DateParam(r *http.Request, name string, loc *time.Location, now time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return now.In(loc), nil
	}
	d, err := time.ParseInLocation(DateLayout, raw, loc)
	if err != nil {
		return time.Time{}, apperr.Invalid("invalid %s %q, use %s", name, raw, DateLayout)
	}
	return d, nil
}
