package order

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/georgemunganga/backhouse/internal/web"
)

// Handler exposes order HTTP endpoints.
type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)                      // GET    /api/orders?status=draft
		r.Post("/", h.createOrder)                    // POST   /api/orders
		r.Get("/draft", h.draftOrder)                 // GET    /api/orders/draft?vendor={id}
		r.Get("/number/{number}", h.getOrderByNumber) // GET    /api/orders/number/{number}
		r.Get("/{id}", h.getOrder)                    // GET    /api/orders/{id}
		r.Put("/{id}", h.updateOrder)                 // PUT    /api/orders/{id}
		r.Delete("/{id}", h.deleteOrder)              // DELETE /api/orders/{id}
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusOK, orders)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := web.Decode(r, &req); err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	o, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	h.logger.Info("order created",
		zap.String("order_number", o.OrderNumber),
		zap.String("vendor", o.VendorName),
		zap.Int("total_items", o.TotalItems))
	web.Respond(w, http.StatusCreated, o)
}

func (h *Handler) draftOrder(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.DraftForVendor(r.Context(), r.URL.Query().Get("vendor"))
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusOK, draft)
}

func (h *Handler) getOrderByNumber(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.GetOrderByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusOK, o)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusOK, o)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	var req UpdateOrderRequest
	if err := web.Decode(r, &req); err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	o, err := h.service.UpdateOrder(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusOK, o)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.Error(w, r, h.logger, err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]bool{"success": true})
}
