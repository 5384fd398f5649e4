package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type seedEntry struct {
	name     string
	code     string
	category string
}

var defaultCatalog = []seedEntry{
	{"Blood Orange", "", CategoryJuicingProduce},
	{"Carrots", "", CategoryJuicingProduce},
	{"Celery", "", CategoryJuicingProduce},
	{"Cucumber", "", CategoryJuicingProduce},
	{"Ginger", "", CategoryJuicingProduce},
	{"Grapefruit", "", CategoryJuicingProduce},
	{"Green Apples (Granny)", "", CategoryJuicingProduce},
	{"Jalapeno", "", CategoryJuicingProduce},
	{"Kale", "", CategoryJuicingProduce},
	{"Lemon", "", CategoryJuicingProduce},
	{"Lime", "", CategoryJuicingProduce},
	{"Oranges", "", CategoryJuicingProduce},
	{"Pineapple (Chiquita)", "", CategoryJuicingProduce},
	{"Red Apples (Fiji)", "", CategoryJuicingProduce},
	{"Red Beets", "", CategoryJuicingProduce},
	{"Romaine Lettuce", "", CategoryJuicingProduce},
	{"Spinach", "", CategoryJuicingProduce},
	{"Turmeric", "", CategoryJuicingProduce},
	{"Basil", "", CategoryJuicingProduce},
	{"Mint", "", CategoryJuicingProduce},

	{"Avocado (Hass)", "", CategoryDailyProduce},
	{"Arugula (B&W)", "", CategoryDailyProduce},
	{"Baby Heirloom Tomatoes", "", CategoryDailyProduce},
	{"Banana (turning)", "", CategoryDailyProduce},
	{"Bib Lettuce", "", CategoryDailyProduce},
	{"Blueberry", "", CategoryDailyProduce},
	{"Garlic", "", CategoryDailyProduce},
	{"Kiwi", "", CategoryDailyProduce},
	{"Microgreens (Intensity)", "", CategoryDailyProduce},
	{"Red Onions", "", CategoryDailyProduce},
	{"Shallots", "", CategoryDailyProduce},
	{"Strawberries", "", CategoryDailyProduce},
	{"Tomatoes RED (5x6)", "", CategoryDailyProduce},
	{"Tomatoes YELLOW (Single Layer)", "", CategoryDailyProduce},
	{"Watermelon Radishes", "", CategoryDailyProduce},
	{"White Onions", "", CategoryDailyProduce},

	{"Frozen Banana", "7284664", CategoryFrozenGoods},
	{"Frozen Blueberries", "1346279", CategoryFrozenGoods},
	{"Frozen Mango", "7285455", CategoryFrozenGoods},
	{"Frozen Pineapples", "7285109", CategoryFrozenGoods},
	{"Frozen Strawberries", "7797368", CategoryFrozenGoods},
	{"Acai", "7238618", CategoryFrozenGoods},
	{"Dragon Fruit", "7200046", CategoryFrozenGoods},

	{"Multigrain (1cs - 8 loaves)", "7163540", CategoryBread},
	{"Rustico (1cs - 10 loaves)", "7163548", CategoryBread},
	{"Sourdough (1cs - 6 loaves)", "7163543", CategoryBread},
	{"Walnut Raisin (1cs - 8 loaves)", "7163583", CategoryBread},
	{"Jalapeno Cheddar (1cs - 8 loaves)", "7163586", CategoryBread},
	{"Gluten Free Bread", "7040473", CategoryBread},

	{"Almond Milk", "3484717", CategoryDairyLiquid},
	{"Oat Milk (Barista)", "9904821", CategoryDairyLiquid},
	{"Almond Milk (Barista)", "2986038", CategoryDairyLiquid},
	{"Whole Milk (Barista)", "2327740", CategoryDairyLiquid},
	{"2% Milk (Barista)", "2327757", CategoryDairyLiquid},
	{"Chai (Barista)", "7101689", CategoryDairyLiquid},
	{"Half & Half", "4828554", CategoryDairyLiquid},
	{"Coconut Water", "4098826", CategoryDairyLiquid},
	{"Eggs", "4767022", CategoryDairyLiquid},

	{"Chives", "", CategoryHerbs},
	{"Cilantro", "", CategoryHerbs},
	{"Dill", "", CategoryHerbs},
	{"Parsley (curly)", "", CategoryHerbs},
	{"Scallions", "", CategoryHerbs},
	{"Thyme", "", CategoryHerbs},

	{"Spring Mix Greens", "", CategorySaladItems},
}

// SeedItems builds the default catalog with zero pars and stock.
func SeedItems(now time.Time) []*Item {
	items := make([]*Item, 0, len(defaultCatalog))
	for _, e := range defaultCatalog {
		items = append(items, &Item{
			ID:        uuid.New(),
			Name:      e.name,
			Code:      e.code,
			Category:  e.category,
			Unit:      DefaultUnit,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return items
}

func fmtSkip(count int) string {
	return fmt.Sprintf("Database already has %d items. Skipping seed.", count)
}

func fmtSeeded(n int) string {
	return fmt.Sprintf("Seeded %d inventory items.", n)
}
