package treet

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/georgemunganga/backhouse/internal/web"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/treets", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/categories", h.categories)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	treets, err := h.service.ListTreets(r.Context())
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	if treets == nil {
		treets = []*Treet{}
	}
	web.Respond(w, http.StatusOK, treets)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateTreetRequest
	if err := web.Decode(r, &req); err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	t, err := h.service.CreateTreet(r.Context(), req)
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusCreated, t)
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.service.Categories(r.Context())
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusOK, cats)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.GetTreet(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusOK, t)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateTreetRequest
	if err := web.Decode(r, &req); err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	t, err := h.service.UpdateTreet(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusOK, t)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTreet(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]bool{"success": true})
}
