package models

import "fmt"

// Tab is a top-level catalog section.
type Tab string

const (
	TabMale   Tab = "masculino"
	TabFemale Tab = "feminino"
)

// AllSubcategories is the filter value that shows every subcategory of a tab.
const AllSubcategories = "all"

// Subcategory is a remote category key with its display label.
type Subcategory struct {
	Key   string
	Label string
}

var tabSubcategories = map[Tab][]Subcategory{
	TabMale: {
		{Key: "mens-shirts", Label: "Camisas"},
		{Key: "mens-shoes", Label: "Calçados"},
		{Key: "mens-watches", Label: "Relógios"},
	},
	TabFemale: {
		{Key: "womens-bags", Label: "Bolsas"},
		{Key: "womens-dresses", Label: "Vestidos"},
		{Key: "womens-jewellery", Label: "Joias"},
		{Key: "womens-shoes", Label: "Calçados"},
		{Key: "womens-watches", Label: "Relógios"},
	},
}

// ParseTab validates a tab name.
func ParseTab(s string) (Tab, error) {
	t := Tab(s)
	if _, ok := tabSubcategories[t]; !ok {
		return "", fmt.Errorf("unknown tab %q", s)
	}
	return t, nil
}

// Subcategories returns the ordered subcategories of t.
func (t Tab) Subcategories() []Subcategory {
	return append([]Subcategory(nil), tabSubcategories[t]...)
}

// Keys returns the category keys of t in display order.
func (t Tab) Keys() []string {
	subs := tabSubcategories[t]
	keys := make([]string, len(subs))
	for i, s := range subs {
		keys[i] = s.Key
	}
	return keys
}

// Label returns the display label of key within t; "Todas" for the "all"
// filter, and the key itself when it is unknown.
func (t Tab) Label(key string) string {
	if key == AllSubcategories {
		return "Todas"
	}
	for _, s := range tabSubcategories[t] {
		if s.Key == key {
			return s.Label
		}
	}
	return key
}

// HasSubcategory reports whether key belongs to t.
func (t Tab) HasSubcategory(key string) bool {
	for _, s := range tabSubcategories[t] {
		if s.Key == key {
			return true
		}
	}
	return false
}

// Listing is a product together with the subcategory it was loaded under.
type Listing struct {
	Product     Product
	Subcategory string
}

// Flatten merges the per-category lists of m following the order of subs,
// then the order of each list. Subcategories missing from m contribute
// nothing.
func Flatten(m CategoryProductMap, subs []Subcategory) []Listing {
	var out []Listing
	for _, s := range subs {
		for _, p := range m[s.Key] {
			out = append(out, Listing{Product: p, Subcategory: s.Key})
		}
	}
	return out
}

// FilterListings keeps the listings of one subcategory; AllSubcategories
// keeps everything.
func FilterListings(ls []Listing, sub string) []Listing {
	if sub == AllSubcategories || sub == "" {
		return ls
	}
	out := make([]Listing, 0, len(ls))
	for _, l := range ls {
		if l.Subcategory == sub {
			out = append(out, l)
		}
	}
	return out
}
