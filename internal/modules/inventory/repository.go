package inventory

import "context"

// Repository defines inventory item storage.
type Repository interface {
	Create(ctx context.Context, item *Item) error
	// CreateMany inserts all items in a single transaction.
	CreateMany(ctx context.Context, items []*Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	// List returns every item ordered by category, then name.
	List(ctx context.Context) ([]*Item, error)
	Update(ctx context.Context, item *Item) error
	// UpdateMany writes all items in a single transaction; an unknown id aborts the batch.
	UpdateMany(ctx context.Context, items []*Item) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
