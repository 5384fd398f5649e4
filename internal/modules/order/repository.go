package order

import "context"

// Repository defines data access for orders.
type Repository interface {
	// Create persists the order and its items atomically. An empty OrderNumber is
	// assigned from the sequence of the CreatedAt month inside the same transaction,
	// skipping numbers already stored. o.OrderNumber is only set once the order is committed.
	Create(ctx context.Context, o *Order) error

	// GetByID retrieves an order with its items by UUID.
	GetByID(ctx context.Context, id string) (*Order, error)

	// GetByNumber retrieves an order by its human-readable order number.
	GetByNumber(ctx context.Context, orderNumber string) (*Order, error)

	// List returns orders newest first. An empty status returns every order.
	List(ctx context.Context, status Status) ([]*Order, error)

	// Update writes the order header and replaces its items.
	Update(ctx context.Context, o *Order) error

	Delete(ctx context.Context, id string) error
}
