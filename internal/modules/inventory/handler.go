package inventory

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/georgemunganga/backhouse/internal/web"
)

// Handler exposes inventory, par sheet and seed HTTP endpoints.
type Handler struct {
	service Service
	loc     *time.Location
	logger  *zap.Logger
}

// NewHandler creates an inventory handler. loc decides which calendar day "today" is.
func NewHandler(service Service, loc *time.Location, logger *zap.Logger) *Handler {
	return &Handler{service: service, loc: loc, logger: logger}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/inventory", func(r chi.Router) {
		r.Get("/", h.listItems)
		r.Post("/", h.createItem)
		r.Get("/{id}", h.getItem)
		r.Put("/{id}", h.updateItem)
		r.Delete("/{id}", h.deleteItem)
		r.Get("/{id}/reorder", h.reorder) // ?date=YYYY-MM-DD
	})
	r.Route("/api/par-sheets", func(r chi.Router) {
		r.Get("/", h.parSheet) // ?date=YYYY-MM-DD
		r.Put("/", h.updateParSheet)
	})
	r.Post("/api/seed", h.seed)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	if items == nil {
		items = []*Item{}
	}
	web.Respond(w, http.StatusOK, items)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := web.Decode(r, &req); err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	item, err := h.service.CreateItem(r.Context(), req)
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusCreated, item)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusOK, item)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if err := web.Decode(r, &req); err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	item, err := h.service.UpdateItem(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusOK, item)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

func (h *Handler) reorder(w http.ResponseWriter, r *http.Request) {
	date, err := web.DateParam(r, "date", h.loc, time.Now())
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	res, err := h.service.Reorder(r.Context(), chi.URLParam(r, "id"), date)
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusOK, res)
}

func (h *Handler) parSheet(w http.ResponseWriter, r *http.Request) {
	date, err := web.DateParam(r, "date", h.loc, time.Now())
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	sheet, err := h.service.ParSheet(r.Context(), date)
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusOK, sheet)
}

func (h *Handler) updateParSheet(w http.ResponseWriter, r *http.Request) {
	var edits []ParSheetEdit
	if err := web.Decode(r, &edits); err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	items, err := h.service.UpdateParSheet(r.Context(), edits)
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]interface{}{"saved": len(items), "items": items})
}

func (h *Handler) seed(w http.ResponseWriter, r *http.Request) {
	res, created, err := h.service.Seed(r.Context())
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
		h.logger.Info("inventory seeded", zap.Int("inserted", res.Inserted))
	}
	web.Respond(w, status, res)
}
