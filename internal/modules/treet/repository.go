package treet

import "context"

// Repository defines treet storage.
type Repository interface {
	Create(ctx context.Context, t *Treet) error
	GetByID(ctx context.Context, id string) (*Treet, error)
	// List returns every treet, newest first.
	List(ctx context.Context) ([]*Treet, error)
	Update(ctx context.Context, t *Treet) error
	Delete(ctx context.Context, id string) error
	// Categories returns the distinct categories stored, sorted.
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}
