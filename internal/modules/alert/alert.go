// Package alert classifies perishable batches and stock levels into a prioritized alert list.
package alert

import (
	"fmt"
	"sort"
	"time"

	"github.com/georgemunganga/backhouse/internal/modules/inventory"
	"github.com/georgemunganga/backhouse/internal/modules/treet"
)

// Kind tags what an alert is about.
type Kind string

const (
	KindExpired      Kind = "expired"
	KindExpiringSoon Kind = "expiring_soon"
	KindExpiringWeek Kind = "expiring_week"
	KindOutOfStock   Kind = "out_of_stock"
	KindLowStock     Kind = "low_stock"
)

// Severity orders alerts; critical sorts first.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Rank is the sort position of a severity; unknown severities sort last.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	}
	return 3
}

// LowStockLimit is the highest non-zero stock that still raises a low stock alert.
const LowStockLimit = 2

const (
	day            = 24 * time.Hour
	soonWindow     = 3 * day
	weekWindow     = 7 * day
	dateLabelStyle = "Jan 2"
)

// Alert is one operational warning derived from a treet or an inventory item.
type Alert struct {
	ID          string    `json:"id"`
	Type        Kind      `json:"type"`
	Severity    Severity  `json:"severity"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Timestamp   time.Time `json:"timestamp"`
}

// Result is the alert list with its size.
type Result struct {
	Alerts []Alert `json:"alerts"`
	Count  int     `json:"count"`
}

// Build classifies the snapshots as of now. Dates in descriptions are rendered in now's location.
func Build(treets []*treet.Treet, items []*inventory.Item, now time.Time) []Alert {
	soon := now.Add(soonWindow)
	week := now.Add(weekWindow)

	var expired, expiringSoon, expiringWeek []*treet.Treet
	for _, t := range treets {
		if t.ExpirationDate == nil {
			continue
		}
		exp := *t.ExpirationDate
		switch {
		case exp.Before(now):
			expired = append(expired, t)
		case !exp.After(soon):
			expiringSoon = append(expiringSoon, t)
		case !exp.After(week):
			expiringWeek = append(expiringWeek, t)
		}
	}

	var outOfStock, lowStock []*inventory.Item
	for _, item := range items {
		switch {
		case item.CurrentStock == 0:
			outOfStock = append(outOfStock, item)
		case item.CurrentStock > 0 && item.CurrentStock <= LowStockLimit:
			lowStock = append(lowStock, item)
		}
	}

	byExpiration := func(ts []*treet.Treet) {
		sort.SliceStable(ts, func(i, j int) bool { return ts[i].ExpirationDate.Before(*ts[j].ExpirationDate) })
	}
	byExpiration(expired)
	byExpiration(expiringSoon)
	byExpiration(expiringWeek)
	sort.SliceStable(outOfStock, func(i, j int) bool { return outOfStock[i].Name < outOfStock[j].Name })
	sort.SliceStable(lowStock, func(i, j int) bool { return lowStock[i].CurrentStock < lowStock[j].CurrentStock })

	alerts := make([]Alert, 0, len(expired)+len(expiringSoon)+len(expiringWeek)+len(outOfStock)+len(lowStock))
	for _, t := range expired {
		alerts = append(alerts, Alert{
			ID:          "expired-" + t.ID.String(),
			Type:        KindExpired,
			Severity:    SeverityCritical,
			Title:       t.Name + " has expired",
			Description: "Expired on " + shortDate(*t.ExpirationDate, now),
			Category:    t.Category,
			Timestamp:   *t.ExpirationDate,
		})
	}
	for _, t := range expiringSoon {
		alerts = append(alerts, Alert{
			ID:          "expiring-soon-" + t.ID.String(),
			Type:        KindExpiringSoon,
			Severity:    SeverityWarning,
			Title:       t.Name + " expires " + DayLabel(DaysLeft(*t.ExpirationDate, now)),
			Description: "Expires " + shortDate(*t.ExpirationDate, now),
			Category:    t.Category,
			Timestamp:   *t.ExpirationDate,
		})
	}
	for _, t := range expiringWeek {
		alerts = append(alerts, Alert{
			ID:          "expiring-week-" + t.ID.String(),
			Type:        KindExpiringWeek,
			Severity:    SeverityInfo,
			Title:       fmt.Sprintf("%s expires in %d days", t.Name, DaysLeft(*t.ExpirationDate, now)),
			Description: "Expires " + shortDate(*t.ExpirationDate, now),
			Category:    t.Category,
			Timestamp:   *t.ExpirationDate,
		})
	}
	for _, item := range outOfStock {
		alerts = append(alerts, Alert{
			ID:          "oos-" + item.ID.String(),
			Type:        KindOutOfStock,
			Severity:    SeverityCritical,
			Title:       item.Name + " is out of stock",
			Description: "Category: " + item.Category,
			Category:    item.Category,
			Timestamp:   item.UpdatedAt,
		})
	}
	for _, item := range lowStock {
		unit := item.Unit
		if unit == "" {
			unit = "units"
		}
		alerts = append(alerts, Alert{
			ID:          "low-" + item.ID.String(),
			Type:        KindLowStock,
			Severity:    SeverityWarning,
			Title:       item.Name + " is running low",
			Description: fmt.Sprintf("Only %d %s left", item.CurrentStock, unit),
			Category:    item.Category,
			Timestamp:   item.UpdatedAt,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() < alerts[j].Severity.Rank()
	})
	return alerts
}

// DaysLeft is the gap from now to exp in whole days, rounded up.
func DaysLeft(exp, now time.Time) int {
	ms := exp.Sub(now).Milliseconds()
	dayMs := day.Milliseconds()
	if ms <= 0 {
		return int(ms / dayMs)
	}
	return int((ms + dayMs - 1) / dayMs)
}

// DayLabel renders a day count as "today", "tomorrow" or "in N days".
func DayLabel(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	}
	return fmt.Sprintf("in %d days", days)
}

func shortDate(t, now time.Time) string {
	return t.In(now.Location()).Format(dateLabelStyle)
}
