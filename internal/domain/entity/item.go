package entity

import "github.com/shopspring/decimal"

var minorUnitsPerWhole = decimal.NewFromInt(100)

// Item is a catalog entry sold by a business.
type Item struct {
	ID             string          `json:"id"`
	BusinessID     string          `json:"businessId"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"` // whole currency units
	ImageURL       string          `json:"imageUrl,omitempty"`
	RequireAddress bool            `json:"requireAddress"`
}

// UnitAmount converts the stored price into minor currency units (cents),
// rounding half away from zero.
func (i *Item) UnitAmount() int64 {
	return i.Price.Mul(minorUnitsPerWhole).Round(0).IntPart()
}

// HasValidPrice reports whether the price can be charged.
func (i *Item) HasValidPrice() bool {
	return !i.Price.IsNegative()
}
