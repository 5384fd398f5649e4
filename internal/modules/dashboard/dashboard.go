// Package dashboard summarizes inventory and treet counts for the landing page.
package dashboard

import (
	"sort"

	"github.com/georgemunganga/backhouse/internal/modules/alert"
	"github.com/georgemunganga/backhouse/internal/modules/inventory"
)

// RecentLimit caps Stats.RecentItems.
const RecentLimit = 8

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type Stats struct {
	TotalItems        int               `json:"totalItems"`
	Categories        int               `json:"categories"`
	LowStock          int               `json:"lowStock"`
	ZeroStock         int               `json:"zeroStock"`
	TreetCount        int               `json:"treetCount"`
	CategoryBreakdown []CategoryCount   `json:"categoryBreakdown"`
	RecentItems       []*inventory.Item `json:"recentItems"`
}

// Compute derives the dashboard from an inventory snapshot. Low stock counts items with 1 to
// alert.LowStockLimit units, the same range that raises a low stock alert.
func Compute(items []*inventory.Item, treetCount int) Stats {
	stats := Stats{
		TotalItems:        len(items),
		TreetCount:        treetCount,
		CategoryBreakdown: []CategoryCount{},
		RecentItems:       []*inventory.Item{},
	}

	counts := make(map[string]int)
	for _, item := range items {
		counts[item.Category]++
		switch {
		case item.CurrentStock == 0:
			stats.ZeroStock++
		case item.CurrentStock > 0 && item.CurrentStock <= alert.LowStockLimit:
			stats.LowStock++
		}
	}
	stats.Categories = len(counts)
	for c, n := range counts {
		stats.CategoryBreakdown = append(stats.CategoryBreakdown, CategoryCount{Category: c, Count: n})
	}
	sort.Slice(stats.CategoryBreakdown, func(i, j int) bool {
		a, b := stats.CategoryBreakdown[i], stats.CategoryBreakdown[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Category < b.Category
	})

	recent := append([]*inventory.Item(nil), items...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].UpdatedAt.After(recent[j].UpdatedAt) })
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}
	stats.RecentItems = append(stats.RecentItems, recent...)
	return stats
}
