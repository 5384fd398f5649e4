package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/georgemunganga/backhouse/internal/apperr"
)

func TestDecode(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	require.NoError(t, Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Kale"}`)), &dst))
	assert.Equal(t, "Kale", dst.Name)

	err := Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("")), &dst)
	assert.ErrorIs(t, err, apperr.ErrInvalid)
	assert.Contains(t, err.Error(), "required")

	err = Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`)), &dst)
	assert.ErrorIs(t, err, apperr.ErrInvalid)

	for _, body := range []string{`{"name":"Kale"}{"name":"Leek"}`, `{"name":"Kale"} }`, `[] 1`} {
		err = Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)), &dst)
		assert.ErrorIs(t, err, apperr.ErrInvalid, body)
	}
	require.NoError(t, Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{\"name\":\"Kale\"}\n")), &dst))
}

func TestDateParam(t *testing.T) {
	loc := time.FixedZone("PDT", -7*3600)
	now := time.Date(2026, 10, 24, 3, 0, 0, 0, time.UTC)

	d, err := DateParam(httptest.NewRequest(http.MethodGet, "/", nil), "date", loc, now)
	require.NoError(t, err)
	assert.Equal(t, time.Friday, d.Weekday())

	d, err = DateParam(httptest.NewRequest(http.MethodGet, "/?date=2026-10-21", nil), "date", loc, now)
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, d.Weekday())
	assert.Equal(t, loc, d.Location())

	_, err = DateParam(httptest.NewRequest(http.MethodGet, "/?date=10/21/2026", nil), "date", loc, now)
	assert.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestErrorStatusAndLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	req := httptest.NewRequest(http.MethodGet, "/api/x", nil)

	rec := httptest.NewRecorder()
	Error(rec, req, logger, apperr.NotFound("item %s not found", "42"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"item 42 not found"}`, rec.Body.String())
	assert.Zero(t, logs.Len())

	rec = httptest.NewRecorder()
	Error(rec, req, logger, apperr.Unavailable("list inventory", errors.New("dial tcp: refused")))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, 1, logs.FilterMessage("request failed").Len())
}
