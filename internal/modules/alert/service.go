package alert

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/georgemunganga/backhouse/internal/apperr"
	"github.com/georgemunganga/backhouse/internal/modules/inventory"
	"github.com/georgemunganga/backhouse/internal/modules/treet"
)

// TreetSource lists every treet.
type TreetSource interface {
	ListTreets(ctx context.Context) ([]*treet.Treet, error)
}

// InventorySource lists every inventory item.
type InventorySource interface {
	ListItems(ctx context.Context) ([]*inventory.Item, error)
}

// Service computes the alert list from fresh snapshots.
type Service interface {
	List(ctx context.Context, now time.Time) (*Result, error)
}

type service struct {
	treets TreetSource
	items  InventorySource
}

func NewService(treets TreetSource, items InventorySource) Service {
	return &service{treets: treets, items: items}
}

// List fails as a whole when either snapshot cannot be read.
func (s *service) List(ctx context.Context, now time.Time) (*Result, error) {
	var (
		treets []*treet.Treet
		items  []*inventory.Item
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		treets, err = s.treets.ListTreets(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.items.ListItems(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if apperr.CodeOf(err) == apperr.CodeUnavailable {
			return nil, err
		}
		return nil, apperr.Unavailable("load alert sources", err)
	}

	alerts := Build(treets, items, now)
	return &Result{Alerts: alerts, Count: len(alerts)}, nil
}
