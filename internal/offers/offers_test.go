package offers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"produceMarketplace/models"
)

// Fixed reference days. 2026-03-02 is a Monday, 2026-03-07 a Saturday.
var (
	weekday = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	weekend = time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
)

func TestSeasonOf(t *testing.T) {
	tests := []struct {
		month time.Month
		want  Season
	}{
		{time.January, SeasonSummer},
		{time.May, SeasonSummer},
		{time.June, SeasonMonsoon},
		{time.September, SeasonMonsoon},
		{time.October, SeasonWinter},
		{time.December, SeasonWinter},
	}
	for _, tt := range tests {
		got := SeasonOf(time.Date(2026, tt.month, 15, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, tt.want, got, "month %s", tt.month)
	}
}

func TestIsWeekend(t *testing.T) {
	assert.False(t, IsWeekend(weekday))
	assert.True(t, IsWeekend(weekend))
	assert.True(t, IsWeekend(weekend.Add(24*time.Hour))) // Sunday
	assert.False(t, IsWeekend(weekend.Add(48*time.Hour)))
}

func TestQuote_Seasonal(t *testing.T) {
	cucumber := models.Product{ID: "prod5", Name: "Cucumber", Category: "Vegetables", PricePerKg: 25}

	// March is Summer; cucumber is on the summer list.
	o, ok := Quote(cucumber, TypeSeasonal, weekday)
	require.True(t, ok)
	assert.Equal(t, TypeSeasonal, o.Type)
	assert.Equal(t, float64(20), o.Percent)
	assert.InDelta(t, 20.0, o.UnitPrice, 1e-9)

	// Same product in Monsoon is off-season.
	_, ok = Quote(cucumber, TypeSeasonal, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)

	// A product outside every seasonal list never qualifies.
	_, ok = Quote(models.Product{ID: "prod1"}, TypeSeasonal, weekday)
	assert.False(t, ok)
}

func TestQuote_Weekend(t *testing.T) {
	tomatoes := models.Product{ID: "prod1", Category: "Vegetables", PricePerKg: 40}
	oil := models.Product{ID: "prod23", Category: "Oils", PricePerKg: 180}

	_, ok := Quote(tomatoes, TypeWeekend, weekday)
	assert.False(t, ok, "weekend rule must not fire on a Monday")

	o, ok := Quote(tomatoes, TypeWeekend, weekend)
	require.True(t, ok)
	assert.Equal(t, float64(15), o.Percent)
	assert.InDelta(t, 34.0, o.UnitPrice, 1e-9)

	_, ok = Quote(oil, TypeWeekend, weekend)
	assert.False(t, ok, "weekend rule only covers vegetables and dairy")
}

func TestQuote_Stock(t *testing.T) {
	_, ok := Quote(models.Product{ID: "p", StockKg: 150, PricePerKg: 10}, TypeStock, weekday)
	assert.False(t, ok, "threshold is exclusive")

	o, ok := Quote(models.Product{ID: "p", StockKg: 151, PricePerKg: 10}, TypeStock, weekday)
	require.True(t, ok)
	assert.Equal(t, float64(10), o.Percent)
	assert.InDelta(t, 9.0, o.UnitPrice, 1e-9)
}

func TestDefault_OnlyStockRule(t *testing.T) {
	// Even a seasonal product gets no default discount unless surplus.
	cucumber := models.Product{ID: "prod5", StockKg: 120, PricePerKg: 25}
	_, ok := Default(cucumber)
	assert.False(t, ok)

	cucumber.StockKg = 200
	o, ok := Default(cucumber)
	require.True(t, ok)
	assert.Equal(t, TypeStock, o.Type)
}

func TestEvaluate_PriorityDedupe(t *testing.T) {
	products := []models.Product{
		// Seasonal (summer) and surplus: seasonal must claim it.
		{ID: "prod5", Name: "Cucumber", Category: "Vegetables", PricePerKg: 25, StockKg: 200},
		// Vegetable with surplus: weekend claims it on a Saturday, stock on a Monday.
		{ID: "prod1", Name: "Tomatoes", Category: "Vegetables", PricePerKg: 40, StockKg: 200},
		// Surplus only.
		{ID: "prod29", Name: "Milk", Category: "Dairy", PricePerKg: 60, StockKg: 220},
		// Nothing applies.
		{ID: "prod14", Name: "Ginger", Category: "Spices", PricePerKg: 160, StockKg: 45},
	}

	g := Evaluate(products, weekend)
	assert.Equal(t, SeasonSummer, g.Season)
	assert.True(t, g.Weekend)
	require.Len(t, g.Seasonal, 1)
	assert.Equal(t, "prod5", g.Seasonal[0].Product.ID)
	require.Len(t, g.WeekendO, 2)
	assert.Empty(t, g.Stock, "everything surplus was already claimed")

	g = Evaluate(products, weekday)
	assert.False(t, g.Weekend)
	assert.Empty(t, g.WeekendO)
	require.Len(t, g.Stock, 2, "weekday surplus falls through to the stock group")

	seen := map[string]int{}
	for _, o := range g.Seasonal {
		seen[o.Product.ID]++
	}
	for _, o := range g.WeekendO {
		seen[o.Product.ID]++
	}
	for _, o := range g.Stock {
		seen[o.Product.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "product %s appears in more than one group", id)
	}
}
