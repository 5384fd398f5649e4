package alert

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/georgemunganga/backhouse/internal/web"
)

type Handler struct {
	service Service
	loc     *time.Location
	logger  *zap.Logger
}

func NewHandler(service Service, loc *time.Location, logger *zap.Logger) *Handler {
	return &Handler{service: service, loc: loc, logger: logger}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/alerts", h.list)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.List(r.Context(), time.Now().In(h.loc))
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusOK, res)
}
