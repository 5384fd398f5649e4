package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/georgemunganga/backhouse/internal/apperr"
	"github.com/georgemunganga/backhouse/internal/modules/inventory"
)

// InventorySource lists every inventory item.
type InventorySource interface {
	ListItems(ctx context.Context) ([]*inventory.Item, error)
}

// TreetCounter counts stored treets.
type TreetCounter interface {
	CountTreets(ctx context.Context) (int, error)
}

type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	items  InventorySource
	treets TreetCounter
}

func NewService(items InventorySource, treets TreetCounter) Service {
	return &service{items: items, treets: treets}
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	var (
		items      []*inventory.Item
		treetCount int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.items.ListItems(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		treetCount, err = s.treets.CountTreets(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if apperr.CodeOf(err) == apperr.CodeUnavailable {
			return nil, err
		}
		return nil, apperr.Unavailable("load dashboard", err)
	}
	stats := Compute(items, treetCount)
	return &stats, nil
}
