package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/backhouse/internal/apperr"
)

// Service defines inventory business logic for items, par levels and the par sheet.
type Service interface {
	CreateItem(ctx context.Context, req CreateItemRequest) (*Item, error)
	GetItem(ctx context.Context, id string) (*Item, error)
	ListItems(ctx context.Context) ([]*Item, error)
	UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*Item, error)
	DeleteItem(ctx context.Context, id string) error

	// Reorder derives the quantity to order for one item on date.
	Reorder(ctx context.Context, id string, date time.Time) (*Reorder, error)
	// ParSheet groups the inventory by category with order quantities for date.
	ParSheet(ctx context.Context, date time.Time) (*ParSheet, error)
	// UpdateParSheet applies count edits to many items at once; it is all-or-nothing.
	UpdateParSheet(ctx context.Context, edits []ParSheetEdit) ([]*Item, error)

	// Seed loads the default catalog into an empty inventory.
	Seed(ctx context.Context) (*SeedResult, bool, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new inventory service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) CreateItem(ctx context.Context, req CreateItemRequest) (*Item, error) {
	now := s.now().UTC()
	item := &Item{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Code:         strings.TrimSpace(req.Code),
		Category:     strings.TrimSpace(req.Category),
		Notes:        req.Notes,
		WeekdayPar:   req.WeekdayPar,
		WeekendPar:   req.WeekendPar,
		CurrentStock: req.CurrentStock,
		Unit:         strings.TrimSpace(req.Unit),
		Supplier:     strings.TrimSpace(req.Supplier),
		LastOrdered:  req.LastOrdered,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if item.Unit == "" {
		item.Unit = DefaultUnit
	}
	if err := validate(item); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) GetItem(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListItems(ctx context.Context) ([]*Item, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Code != nil {
		item.Code = strings.TrimSpace(*req.Code)
	}
	if req.Category != nil {
		item.Category = strings.TrimSpace(*req.Category)
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	if req.WeekdayPar != nil {
		item.WeekdayPar = *req.WeekdayPar
	}
	if req.WeekendPar != nil {
		item.WeekendPar = *req.WeekendPar
	}
	if req.CurrentStock != nil {
		item.CurrentStock = *req.CurrentStock
	}
	if req.Unit != nil {
		item.Unit = strings.TrimSpace(*req.Unit)
		if item.Unit == "" {
			item.Unit = DefaultUnit
		}
	}
	if req.Supplier != nil {
		item.Supplier = strings.TrimSpace(*req.Supplier)
	}
	if req.LastOrdered != nil {
		item.LastOrdered = req.LastOrdered
	}
	if err := validate(item); err != nil {
		return nil, err
	}
	item.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) DeleteItem(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Reorder(ctx context.Context, id string, date time.Time) (*Reorder, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Reorder{
		Item:         item,
		Date:         date.Format("2006-01-02"),
		Weekend:      IsWeekend(date),
		Par:          item.Par(date),
		CurrentStock: item.CurrentStock,
		OrderQty:     item.ReorderQuantity(date),
	}, nil
}

func (s *service) ParSheet(ctx context.Context, date time.Time) (*ParSheet, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildParSheet(items, date), nil
}

// BuildParSheet groups items by category in Categories order. Empty categories are kept.
func BuildParSheet(items []*Item, date time.Time) *ParSheet {
	byCategory := make(map[string][]ParSheetRow, len(Categories))
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], ParSheetRow{
			Item:     item,
			Par:      item.Par(date),
			OrderQty: item.ReorderQuantity(date),
		})
	}
	sheet := &ParSheet{
		Date:     date.Format("2006-01-02"),
		Weekend:  IsWeekend(date),
		Sections: make([]ParSheetSection, 0, len(Categories)),
	}
	for _, c := range Categories {
		rows := byCategory[c]
		if rows == nil {
			rows = []ParSheetRow{}
		}
		sheet.Sections = append(sheet.Sections, ParSheetSection{Category: c, Rows: rows})
	}
	return sheet
}

func (s *service) UpdateParSheet(ctx context.Context, edits []ParSheetEdit) ([]*Item, error) {
	if len(edits) == 0 {
		return nil, apperr.Invalid("no changes to save")
	}
	now := s.now().UTC()
	seen := make(map[string]int, len(edits))
	var items []*Item
	for _, e := range edits {
		if e.WeekdayPar == nil && e.WeekendPar == nil && e.CurrentStock == nil {
			continue
		}
		idx, ok := seen[e.ID]
		if !ok {
			item, err := s.repo.GetByID(ctx, e.ID)
			if err != nil {
				return nil, err
			}
			idx = len(items)
			seen[e.ID] = idx
			items = append(items, item)
		}
		item := items[idx]
		if e.WeekdayPar != nil {
			item.WeekdayPar = *e.WeekdayPar
		}
		if e.WeekendPar != nil {
			item.WeekendPar = *e.WeekendPar
		}
		if e.CurrentStock != nil {
			item.CurrentStock = *e.CurrentStock
		}
		if err := validateCounts(item); err != nil {
			return nil, err
		}
		item.UpdatedAt = now
	}
	if len(items) == 0 {
		return nil, apperr.Invalid("no changes to save")
	}
	if err := s.repo.UpdateMany(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *service) Seed(ctx context.Context) (*SeedResult, bool, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, false, err
	}
	if count > 0 {
		return &SeedResult{Message: fmtSkip(count)}, false, nil
	}
	items := SeedItems(s.now().UTC())
	if err := s.repo.CreateMany(ctx, items); err != nil {
		return nil, false, err
	}
	return &SeedResult{Message: fmtSeeded(len(items)), Inserted: len(items)}, true, nil
}

func validate(item *Item) error {
	if item.Name == "" {
		return apperr.Invalid("name is required")
	}
	if item.Category == "" {
		return apperr.Invalid("category is required")
	}
	if !ValidCategory(item.Category) {
		return apperr.Invalid("invalid category %q (allowed: %s)", item.Category, strings.Join(Categories, ", "))
	}
	return validateCounts(item)
}

func validateCounts(item *Item) error {
	if item.WeekdayPar < 0 {
		return apperr.Invalid("weekdayPar must be >= 0 for %s", item.Name)
	}
	if item.WeekendPar < 0 {
		return apperr.Invalid("weekendPar must be >= 0 for %s", item.Name)
	}
	if item.CurrentStock < 0 {
		return apperr.Invalid("currentStock must be >= 0 for %s", item.Name)
	}
	return nil
}
