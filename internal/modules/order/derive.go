package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/georgemunganga/backhouse/internal/apperr"
	"github.com/georgemunganga/backhouse/internal/modules/inventory"
	"github.com/georgemunganga/backhouse/internal/modules/vendor"
)

// placeholderItem is offered when nothing in inventory matches the vendor.
var placeholderItem = OrderItem{OrderQty: 1}

// DraftOrderItems proposes one line per inventory item in the vendor's categories,
// ordering up to the weekday par. With no match it returns a single editable blank line.
func DraftOrderItems(v *vendor.Vendor, items []*inventory.Item) []OrderItem {
	var lines []OrderItem
	if len(v.Categories) > 0 {
		for _, item := range items {
			if !v.Supplies(item.Category) {
				continue
			}
			lines = append(lines, OrderItem{
				Name:         item.Name,
				Size:         item.Unit,
				ParQty:       item.WeekdayPar,
				CurrentStock: item.CurrentStock,
				OrderQty:     inventory.Shortfall(item.WeekdayPar, item.CurrentStock),
				Unit:         item.Unit,
			})
		}
	}
	if len(lines) == 0 {
		return []OrderItem{placeholderItem}
	}
	return lines
}

// TotalItems sums orderQty across lines.
func TotalItems(items []OrderItem) int {
	total := 0
	for _, it := range items {
		total += it.OrderQty
	}
	return total
}

// Period is the numbering period of date: YYYYMM.
func Period(date time.Time) string {
	return date.Format("200601")
}

// FormatOrderNumber renders ORD-YYYYMM-NNNN for the seq-th order of date's month.
func FormatOrderNumber(date time.Time, seq int64) string {
	return fmt.Sprintf("ORD-%s-%04d", Period(date), seq)
}

// validTransitions defines the allowed status state machine.
var validTransitions = map[Status][]Status{
	StatusDraft:     {StatusSubmitted, StatusCancelled},
	StatusSubmitted: {StatusReceived, StatusCancelled},
	StatusReceived:  {},
	StatusCancelled: {},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions leave s.
func (s Status) Terminal() bool {
	next, ok := validTransitions[s]
	return ok && len(next) == 0
}

// cleanItems keeps lines with a name and a positive quantity and rejects negative counts.
func cleanItems(items []OrderItem) ([]OrderItem, error) {
	out := make([]OrderItem, 0, len(items))
	for _, it := range items {
		it.Name = strings.TrimSpace(it.Name)
		if it.OrderQty < 0 || it.ParQty < 0 || it.CurrentStock < 0 {
			return nil, apperr.Invalid("quantities must be >= 0 (item %q)", it.Name)
		}
		if it.Name == "" || it.OrderQty == 0 {
			continue
		}
		it.Size = strings.TrimSpace(it.Size)
		it.Unit = strings.TrimSpace(it.Unit)
		out = append(out, it)
	}
	if len(out) == 0 {
		return nil, apperr.Invalid("add at least one item with quantity > 0")
	}
	return out, nil
}
