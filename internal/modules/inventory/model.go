package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Category names the fixed stock groups used on par sheets.
const (
	CategoryJuicingProduce = "Juicing Produce"
	CategoryDailyProduce   = "Produce for Daily Use"
	CategoryFrozenGoods    = "Frozen Goods"
	CategoryBread          = "Bread"
	CategoryDairyLiquid    = "Dairy/Liquid"
	CategoryHerbs          = "Herbs"
	CategorySaladItems     = "Salad Items"
	CategoryOther          = "Other"
)

// Categories lists every accepted item category in par sheet order.
var Categories = []string{
	CategoryJuicingProduce,
	CategoryDailyProduce,
	CategoryFrozenGoods,
	CategoryBread,
	CategoryDairyLiquid,
	CategoryHerbs,
	CategorySaladItems,
	CategoryOther,
}

// ValidCategory reports whether c is one of Categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DefaultUnit is used when an item is created without a unit label.
const DefaultUnit = "each"

// Item is a stocked product tracked against weekday and weekend par levels.
type Item struct {
	ID           uuid.UUID  `json:"_id"`
	Name         string     `json:"name"`
	Code         string     `json:"code"`
	Category     string     `json:"category"`
	Notes        string     `json:"notes"`
	WeekdayPar   int        `json:"weekdayPar"`
	WeekendPar   int        `json:"weekendPar"`
	CurrentStock int        `json:"currentStock"`
	Unit         string     `json:"unit"`
	Supplier     string     `json:"supplier"`
	LastOrdered  *time.Time `json:"lastOrdered,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// CreateItemRequest holds data for a new inventory item.
type CreateItemRequest struct {
	Name         string     `json:"name"`
	Code         string     `json:"code"`
	Category     string     `json:"category"`
	Notes        string     `json:"notes"`
	WeekdayPar   int        `json:"weekdayPar"`
	WeekendPar   int        `json:"weekendPar"`
	CurrentStock int        `json:"currentStock"`
	Unit         string     `json:"unit"`
	Supplier     string     `json:"supplier"`
	LastOrdered  *time.Time `json:"lastOrdered,omitempty"`
}

// UpdateItemRequest is a partial update; nil fields are left unchanged.
type UpdateItemRequest struct {
	Name         *string    `json:"name,omitempty"`
	Code         *string    `json:"code,omitempty"`
	Category     *string    `json:"category,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	WeekdayPar   *int       `json:"weekdayPar,omitempty"`
	WeekendPar   *int       `json:"weekendPar,omitempty"`
	CurrentStock *int       `json:"currentStock,omitempty"`
	Unit         *string    `json:"unit,omitempty"`
	Supplier     *string    `json:"supplier,omitempty"`
	LastOrdered  *time.Time `json:"lastOrdered,omitempty"`
}

// ParSheetEdit changes the counts of one item from the par sheet.
type ParSheetEdit struct {
	ID           string `json:"_id"`
	WeekdayPar   *int   `json:"weekdayPar,omitempty"`
	WeekendPar   *int   `json:"weekendPar,omitempty"`
	CurrentStock *int   `json:"currentStock,omitempty"`
}

// ParSheet is the inventory grouped by category with the order quantity for one day.
type ParSheet struct {
	Date     string            `json:"date"`
	Weekend  bool              `json:"weekend"`
	Sections []ParSheetSection `json:"sections"`
}

// ParSheetSection is one category block of a par sheet.
type ParSheetSection struct {
	Category string        `json:"category"`
	Rows     []ParSheetRow `json:"rows"`
}

// ParSheetRow is an item with the par in effect and the quantity to order.
type ParSheetRow struct {
	Item     *Item `json:"item"`
	Par      int   `json:"par"`
	OrderQty int   `json:"orderQty"`
}

// Reorder is the derived reorder quantity for one item on one day.
type Reorder struct {
	Item         *Item  `json:"item"`
	Date         string `json:"date"`
	Weekend      bool   `json:"weekend"`
	Par          int    `json:"par"`
	CurrentStock int    `json:"currentStock"`
	OrderQty     int    `json:"orderQty"`
}

// SeedResult reports the outcome of loading the default catalog.
type SeedResult struct {
	Message  string `json:"message"`
	Inserted int    `json:"inserted"`
}
