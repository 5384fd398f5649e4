package treet

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/backhouse/internal/apperr"
)

// Service defines treet business logic.
type Service interface {
	CreateTreet(ctx context.Context, req CreateTreetRequest) (*Treet, error)
	GetTreet(ctx context.Context, id string) (*Treet, error)
	ListTreets(ctx context.Context) ([]*Treet, error)
	UpdateTreet(ctx context.Context, id string, req UpdateTreetRequest) (*Treet, error)
	DeleteTreet(ctx context.Context, id string) error
	CountTreets(ctx context.Context) (int, error)
	// Categories lists the default categories followed by custom ones already in use.
	Categories(ctx context.Context) ([]string, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new treet service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) CreateTreet(ctx context.Context, req CreateTreetRequest) (*Treet, error) {
	now := s.now().UTC()
	t := &Treet{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(req.Name),
		Category:       NormalizeCategory(req.Category),
		DateMade:       req.DateMade,
		ExpirationDate: req.ExpirationDate,
		BatchSize:      DefaultBatchSize,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.BatchSize != nil {
		t.BatchSize = *req.BatchSize
	}
	if err := validate(t); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) GetTreet(ctx context.Context, id string) (*Treet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListTreets(ctx context.Context) ([]*Treet, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateTreet(ctx context.Context, id string, req UpdateTreetRequest) (*Treet, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		t.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		t.Category = NormalizeCategory(*req.Category)
	}
	if req.DateMade != nil {
		t.DateMade = req.DateMade
	}
	if req.ExpirationDate != nil {
		t.ExpirationDate = req.ExpirationDate
	}
	if req.BatchSize != nil {
		t.BatchSize = *req.BatchSize
	}
	if req.Notes != nil {
		t.Notes = *req.Notes
	}
	if err := validate(t); err != nil {
		return nil, err
	}
	t.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) DeleteTreet(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) CountTreets(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	used, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return MergeCategories(used), nil
}

func validate(t *Treet) error {
	if t.Name == "" {
		return apperr.Invalid("name is required")
	}
	if t.Category == "" {
		return apperr.Invalid("category is required")
	}
	if t.BatchSize < 1 {
		return apperr.Invalid("batchSize must be at least 1")
	}
	if t.DateMade != nil && t.ExpirationDate != nil && t.ExpirationDate.Before(*t.DateMade) {
		return apperr.Invalid("expirationDate must not be before dateMade")
	}
	return nil
}
