package alert

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/backhouse/internal/modules/inventory"
	"github.com/georgemunganga/backhouse/internal/modules/treet"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func batch(name string, offset time.Duration) *treet.Treet {
	exp := now.Add(offset)
	return &treet.Treet{ID: uuid.New(), Name: name, Category: "Juice", ExpirationDate: &exp}
}

func stock(name, category string, n int) *inventory.Item {
	return &inventory.Item{ID: uuid.New(), Name: name, Category: category, CurrentStock: n, Unit: "each"}
}

func TestBuildExpiringInTwoDays(t *testing.T) {
	alerts := Build([]*treet.Treet{batch("Ginger Shot", 48*time.Hour)}, nil, now)
	require.Len(t, alerts, 1)
	assert.Equal(t, KindExpiringSoon, alerts[0].Type)
	assert.Equal(t, SeverityWarning, alerts[0].Severity)
	assert.Contains(t, alerts[0].Title, "in 2 days")
	assert.Equal(t, "Expires Oct 21", alerts[0].Description)
}

func TestBuildStockAlertsRankedBySeverity(t *testing.T) {
	low := stock("Milk", "B", 1)
	out := stock("Eggs", "A", 0)

	for _, items := range [][]*inventory.Item{{low, out}, {out, low}} {
		alerts := Build(nil, items, now)
		require.Len(t, alerts, 2)
		assert.Equal(t, KindOutOfStock, alerts[0].Type)
		assert.Equal(t, "oos-"+out.ID.String(), alerts[0].ID)
		assert.Equal(t, KindLowStock, alerts[1].Type)
		assert.Equal(t, "Only 1 each left", alerts[1].Description)
	}
}

func TestBuildWindows(t *testing.T) {
	cases := []struct {
		offset time.Duration
		kind   Kind
	}{
		{-time.Minute, KindExpired},
		{0, KindExpiringSoon},
		{3 * day, KindExpiringSoon},
		{3*day + time.Millisecond, KindExpiringWeek},
		{7 * day, KindExpiringWeek},
	}
	for _, c := range cases {
		alerts := Build([]*treet.Treet{batch("X", c.offset)}, nil, now)
		require.Len(t, alerts, 1, c.offset.String())
		assert.Equal(t, c.kind, alerts[0].Type, c.offset.String())
	}

	assert.Empty(t, Build([]*treet.Treet{batch("X", 7*day+time.Millisecond), {Name: "No date"}}, nil, now))
	assert.Empty(t, Build(nil, []*inventory.Item{stock("Plenty", "A", 3)}, now))
}

func TestBuildOrdering(t *testing.T) {
	treets := []*treet.Treet{
		batch("Week", 5*day),
		batch("Old", -2*day),
		batch("Soon late", 2*day),
		batch("Older", -5*day),
		batch("Soon early", time.Hour),
	}
	items := []*inventory.Item{
		stock("Zucchini", "P", 0),
		stock("Two", "P", 2),
		stock("Apple", "P", 0),
		stock("One", "P", 1),
	}

	alerts := Build(treets, items, now)
	var titles []string
	for _, a := range alerts {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{
		"Older has expired",
		"Old has expired",
		"Apple is out of stock",
		"Zucchini is out of stock",
		"Soon early expires tomorrow",
		"Soon late expires in 2 days",
		"One is running low",
		"Two is running low",
		"Week expires in 5 days",
	}, titles)

	for i := 1; i < len(alerts); i++ {
		assert.LessOrEqual(t, alerts[i-1].Severity.Rank(), alerts[i].Severity.Rank())
	}
}

func TestDaysLeft(t *testing.T) {
	assert.Equal(t, 0, DaysLeft(now, now))
	assert.Equal(t, 1, DaysLeft(now.Add(time.Millisecond), now))
	assert.Equal(t, 1, DaysLeft(now.Add(day), now))
	assert.Equal(t, 2, DaysLeft(now.Add(day+time.Second), now))
	assert.Equal(t, "today", DayLabel(0))
	assert.Equal(t, "tomorrow", DayLabel(1))
	assert.Equal(t, "in 3 days", DayLabel(3))
}

func TestSeverityRankUnknownLast(t *testing.T) {
	assert.Equal(t, 3, Severity("debug").Rank())
}
