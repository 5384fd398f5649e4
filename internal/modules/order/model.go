package order

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a purchase order.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusReceived  Status = "received"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusDraft, StatusSubmitted, StatusReceived, StatusCancelled}

// ParseStatus reports whether s names a known status.
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Order is a purchase order placed with a vendor.
type Order struct {
	ID               uuid.UUID   `json:"_id"`
	OrderNumber      string      `json:"orderNumber"`
	VendorID         uuid.UUID   `json:"vendor"`
	VendorName       string      `json:"vendorName"` // snapshot taken at creation
	Status           Status      `json:"status"`
	Items            []OrderItem `json:"items"`
	OrderDate        time.Time   `json:"orderDate"`
	ExpectedDelivery *time.Time  `json:"expectedDelivery,omitempty"`
	ReceivedDate     *time.Time  `json:"receivedDate,omitempty"`
	Notes            string      `json:"notes"`
	TotalItems       int         `json:"totalItems"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// OrderItem is one line of an order. CurrentStock is a snapshot of inventory when the line was drafted.
type OrderItem struct {
	Name         string `json:"name"`
	Size         string `json:"size"`
	ParQty       int    `json:"parQty"`
	CurrentStock int    `json:"currentStock"`
	OrderQty     int    `json:"orderQty"`
	Unit         string `json:"unit"`
	Notes        string `json:"notes"`
}

// DraftOrder is a pre-filled order proposal for a vendor; it is never stored.
type DraftOrder struct {
	VendorID   uuid.UUID   `json:"vendor"`
	VendorName string      `json:"vendorName"`
	Items      []OrderItem `json:"items"`
	TotalItems int         `json:"totalItems"`
}

// CreateOrderRequest is the payload for a new order. The number is always assigned by the
// store and any client total is ignored.
type CreateOrderRequest struct {
	VendorID         string      `json:"vendor"`
	VendorName       string      `json:"vendorName,omitempty"`
	Items            []OrderItem `json:"items"`
	OrderDate        *time.Time  `json:"orderDate,omitempty"`
	ExpectedDelivery *time.Time  `json:"expectedDelivery,omitempty"`
	Notes            string      `json:"notes"`
}

// UpdateOrderRequest is a partial update; nil fields are left unchanged.
type UpdateOrderRequest struct {
	Status           *Status      `json:"status,omitempty"`
	Items            *[]OrderItem `json:"items,omitempty"`
	ExpectedDelivery *time.Time   `json:"expectedDelivery,omitempty"`
	ReceivedDate     *time.Time   `json:"receivedDate,omitempty"`
	Notes            *string      `json:"notes,omitempty"`
}
