package treet

import (
	"time"

	"github.com/google/uuid"
)

// Treet is a perishable prepared batch tracked by make and expiration date.
type Treet struct {
	ID             uuid.UUID  `json:"_id"`
	Name           string     `json:"name"`
	Category       string     `json:"category"`
	DateMade       *time.Time `json:"dateMade,omitempty"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	BatchSize      int        `json:"batchSize"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Expired reports whether the batch has an expiration date before now.
func (t *Treet) Expired(now time.Time) bool {
	return t.ExpirationDate != nil && t.ExpirationDate.Before(now)
}

// DefaultBatchSize applies when a batch is created without a size.
const DefaultBatchSize = 1

type CreateTreetRequest struct {
	Name           string     `json:"name"`
	Category       string     `json:"category"`
	DateMade       *time.Time `json:"dateMade,omitempty"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	BatchSize      *int       `json:"batchSize,omitempty"`
	Notes          string     `json:"notes"`
}

// UpdateTreetRequest is a partial update; nil fields are left unchanged.
type UpdateTreetRequest struct {
	Name           *string    `json:"name,omitempty"`
	Category       *string    `json:"category,omitempty"`
	DateMade       *time.Time `json:"dateMade,omitempty"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	BatchSize      *int       `json:"batchSize,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}
