// Package offers evaluates promotional discounts over the catalog. Rules run
// in a fixed priority order (seasonal, then weekend, then stock) and a
// product appears in at most one group: the first rule that claims it wins.
package offers

import (
	"time"

	"produceMarketplace/models"
)

// Type identifies which rule produced an offer.
type Type string

const (
	TypeSeasonal Type = "seasonal"
	TypeWeekend  Type = "weekend"
	TypeStock    Type = "stock"
)

// Season of the simulated calendar.
type Season string

const (
	SeasonSummer  Season = "Summer"
	SeasonMonsoon Season = "Monsoon"
	SeasonWinter  Season = "Winter"
)

const (
	seasonalPercent = 20
	weekendPercent  = 15
	stockPercent    = 10

	// stockThresholdKg is the stock level above which surplus produce goes
	// on discount.
	stockThresholdKg = 150
)

// weekendCategories are the categories discounted on Saturdays and Sundays.
var weekendCategories = map[string]bool{
	"Vegetables": true,
	"Dairy":      true,
}

// seasonalProductIDs maps each season to the products it promotes.
var seasonalProductIDs = map[Season][]string{
	SeasonSummer:  {"prod5", "prod23", "prod28"},  // Cucumber, Coconut Oil, Yogurt
	SeasonMonsoon: {"prod13", "prod14", "prod15"}, // Lentils, Ginger, Garlic
	SeasonWinter:  {"prod3", "prod4"},             // Potatoes, Carrots
}

// Offer is a discounted price for one product under one rule.
type Offer struct {
	Product   models.Product `json:"product"`
	Type      Type           `json:"type"`
	Percent   float64        `json:"percent"`
	UnitPrice float64        `json:"unit_price"`
}

// SeasonOf returns the season containing t: June through September is
// Monsoon, October through December is Winter, the rest is Summer.
func SeasonOf(t time.Time) Season {
	switch m := t.Month(); {
	case m >= time.June && m <= time.September:
		return SeasonMonsoon
	case m >= time.October && m <= time.December:
		return SeasonWinter
	default:
		return SeasonSummer
	}
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	d := t.Weekday()
	return d == time.Saturday || d == time.Sunday
}

func hasSeasonal(p models.Product, now time.Time) bool {
	for _, id := range seasonalProductIDs[SeasonOf(now)] {
		if id == p.ID {
			return true
		}
	}
	return false
}

func hasWeekend(p models.Product, now time.Time) bool {
	return IsWeekend(now) && weekendCategories[p.Category]
}

func hasStock(p models.Product) bool {
	return p.StockKg > stockThresholdKg
}

func discounted(price, percent float64) float64 {
	return price * (1 - percent/100)
}

// Quote returns the offer applying to p under the given rule, if the rule
// fires at now. Handlers use this to price an add-to-cart from an offer
// section, so the percentage is pinned to the section the vendor clicked.
func Quote(p models.Product, typ Type, now time.Time) (Offer, bool) {
	var percent float64
	switch typ {
	case TypeSeasonal:
		if !hasSeasonal(p, now) {
			return Offer{}, false
		}
		percent = seasonalPercent
	case TypeWeekend:
		if !hasWeekend(p, now) {
			return Offer{}, false
		}
		percent = weekendPercent
	case TypeStock:
		if !hasStock(p) {
			return Offer{}, false
		}
		percent = stockPercent
	default:
		return Offer{}, false
	}
	return Offer{Product: p, Type: typ, Percent: percent, UnitPrice: discounted(p.PricePerKg, percent)}, true
}

// Default returns the offer shown on the plain product listing, where only
// the stock rule applies.
func Default(p models.Product) (Offer, bool) {
	return Quote(p, TypeStock, time.Time{})
}

// Groups holds the deduplicated offer sections for the offers page.
type Groups struct {
	Season   Season  `json:"season"`
	Weekend  bool    `json:"weekend"`
	Seasonal []Offer `json:"seasonal"`
	WeekendO []Offer `json:"weekend_offers"`
	Stock    []Offer `json:"stock"`
}

// Evaluate partitions products into offer groups at now. Priority order is
// seasonal, weekend, stock; a product claimed by an earlier group is skipped
// by later ones.
func Evaluate(products []models.Product, now time.Time) Groups {
	g := Groups{Season: SeasonOf(now), Weekend: IsWeekend(now)}
	claimed := make(map[string]bool, len(products))

	for _, p := range products {
		if o, ok := Quote(p, TypeSeasonal, now); ok && !claimed[p.ID] {
			claimed[p.ID] = true
			g.Seasonal = append(g.Seasonal, o)
		}
	}
	for _, p := range products {
		if o, ok := Quote(p, TypeWeekend, now); ok && !claimed[p.ID] {
			claimed[p.ID] = true
			g.WeekendO = append(g.WeekendO, o)
		}
	}
	for _, p := range products {
		if o, ok := Quote(p, TypeStock, now); ok && !claimed[p.ID] {
			claimed[p.ID] = true
			g.Stock = append(g.Stock, o)
		}
	}
	return g
}
