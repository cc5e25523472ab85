package models

import (
	"fmt"
	"math"
	"strconv"
)

// Product mirrors a product record of the remote catalog. Optional fields
// are pointers so that an absent value is distinguishable from zero.
// Products are never edited locally.
type Product struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage *float64 `json:"discountPercentage,omitempty"`
	Category           *string  `json:"category,omitempty"`
	Brand              *string  `json:"brand,omitempty"`
	Rating             *float64 `json:"rating,omitempty"`
	Stock              *int     `json:"stock,omitempty"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images,omitempty"`
}

// IDString is the id in the form used for navigation parameters.
func (p Product) IDString() string {
	return strconv.Itoa(p.ID)
}

// Discount returns the discount percentage, 0 when absent, clamped to [0,100].
func (p Product) Discount() float64 {
	if p.DiscountPercentage == nil {
		return 0
	}
	return math.Min(100, math.Max(0, *p.DiscountPercentage))
}

// HasVisibleDiscount reports whether the rounded discount is worth showing.
func (p Product) HasVisibleDiscount() bool {
	return math.Round(p.Discount()) >= 1
}

// DiscountLabel renders the discount badge, e.g. "-12% off".
func (p Product) DiscountLabel() string {
	return fmt.Sprintf("-%.0f%% off", math.Round(p.Discount()))
}

// FormattedPrice renders the price in the storefront currency.
func (p Product) FormattedPrice() string {
	return FormatPrice(p.Price)
}

// FormatPrice renders a value as "R$ 12.34".
func FormatPrice(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

// CategoryProductMap holds, per category key, the products last fetched for
// that key. A reload replaces the whole map.
type CategoryProductMap map[string][]Product

// Clone copies the map and its slices so callers cannot alias the stored
// lists.
func (m CategoryProductMap) Clone() CategoryProductMap {
	if m == nil {
		return nil
	}
	out := make(CategoryProductMap, len(m))
	for k, v := range m {
		out[k] = append([]Product(nil), v...)
	}
	return out
}
