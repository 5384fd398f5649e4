package order

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/backhouse/internal/apperr"
	"github.com/georgemunganga/backhouse/internal/modules/inventory"
	"github.com/georgemunganga/backhouse/internal/modules/vendor"
)

// Service defines purchase order business logic.
type Service interface {
	// DraftForVendor proposes order lines for a vendor from the current inventory.
	DraftForVendor(ctx context.Context, vendorID string) (*DraftOrder, error)

	// CreateOrder validates the lines, recomputes the total and persists a new draft order.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error)

	GetOrder(ctx context.Context, id string) (*Order, error)

	// GetOrderByNumber retrieves an order by its human-readable number.
	GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error)

	// ListOrders returns orders newest first, filtered by status unless it is "" or "all".
	ListOrders(ctx context.Context, status string) ([]*Order, error)

	// UpdateOrder applies a partial update, enforcing the status machine.
	UpdateOrder(ctx context.Context, id string, req UpdateOrderRequest) (*Order, error)

	DeleteOrder(ctx context.Context, id string) error
}

// VendorSource looks up vendors by id.
type VendorSource interface {
	GetVendor(ctx context.Context, id string) (*vendor.Vendor, error)
}

// InventorySource lists the current inventory snapshot.
type InventorySource interface {
	ListItems(ctx context.Context) ([]*inventory.Item, error)
}

type service struct {
	repo    Repository
	vendors VendorSource
	items   InventorySource
	now     func() time.Time
}

// NewService creates a new order service.
func NewService(repo Repository, vendors VendorSource, items InventorySource) Service {
	return &service{repo: repo, vendors: vendors, items: items, now: time.Now}
}

func (s *service) DraftForVendor(ctx context.Context, vendorID string) (*DraftOrder, error) {
	if strings.TrimSpace(vendorID) == "" {
		return nil, apperr.Invalid("vendor is required")
	}
	v, err := s.vendors.GetVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	items, err := s.items.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	lines := DraftOrderItems(v, items)
	return &DraftOrder{
		VendorID:   v.ID,
		VendorName: v.Name,
		Items:      lines,
		TotalItems: TotalItems(lines),
	}, nil
}

func (s *service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	if strings.TrimSpace(req.VendorID) == "" {
		return nil, apperr.Invalid("please select a vendor")
	}
	items, err := cleanItems(req.Items)
	if err != nil {
		return nil, err
	}
	v, err := s.vendors.GetVendor(ctx, req.VendorID)
	if err != nil {
		if apperr.CodeOf(err) == apperr.CodeNotFound {
			return nil, apperr.Invalid("vendor %s does not exist", req.VendorID)
		}
		return nil, err
	}

	now := s.now().UTC()
	o := &Order{
		ID:               uuid.New(),
		VendorID:         v.ID,
		VendorName:       strings.TrimSpace(req.VendorName),
		Status:           StatusDraft,
		Items:            items,
		OrderDate:        now,
		ExpectedDelivery: req.ExpectedDelivery,
		Notes:            req.Notes,
		TotalItems:       TotalItems(items),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if o.VendorName == "" {
		o.VendorName = v.Name
	}
	if req.OrderDate != nil && !req.OrderDate.IsZero() {
		o.OrderDate = *req.OrderDate
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	return s.repo.GetByNumber(ctx, orderNumber)
}

func (s *service) ListOrders(ctx context.Context, status string) ([]*Order, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" || status == "all" {
		return s.repo.List(ctx, "")
	}
	st, ok := ParseStatus(status)
	if !ok {
		return nil, apperr.Invalid("invalid status %q", status)
	}
	return s.repo.List(ctx, st)
}

func (s *service) UpdateOrder(ctx context.Context, id string, req UpdateOrderRequest) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	editsContent := req.Items != nil || req.Notes != nil || req.ExpectedDelivery != nil
	if editsContent && o.Status.Terminal() {
		return nil, apperr.FailedPrecondition("order %s is %s and can no longer be edited", o.OrderNumber, o.Status)
	}

	if req.Status != nil && *req.Status != o.Status {
		next, ok := ParseStatus(strings.ToLower(string(*req.Status)))
		if !ok {
			return nil, apperr.Invalid("invalid status %q", *req.Status)
		}
		if next != o.Status {
			if !CanTransition(o.Status, next) {
				return nil, apperr.FailedPrecondition("cannot transition order from %s to %s", o.Status, next)
			}
			o.Status = next
			if next == StatusReceived {
				received := s.now().UTC()
				if req.ReceivedDate != nil && !req.ReceivedDate.IsZero() {
					received = *req.ReceivedDate
				}
				o.ReceivedDate = &received
			}
		}
	}

	if req.Items != nil {
		items, err := cleanItems(*req.Items)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	if req.Notes != nil {
		o.Notes = *req.Notes
	}
	if req.ExpectedDelivery != nil {
		o.ExpectedDelivery = req.ExpectedDelivery
	}
	o.TotalItems = TotalItems(o.Items)
	o.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) DeleteOrder(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
