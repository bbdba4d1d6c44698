package catalog

import "strings"

// Item is one price-tracked product of the KOSIS living-price index
// (DT_1J22005). BasePrice is the typical market price in the 2020 base
// year, in KRW. The table is loaded once and never mutated.
type Item struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	BasePrice int64  `json:"basePrice"`
}

// Category groups items under one display category, preserving table
// order.
type Category struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Catalog is an immutable view over the tracked-item table with code and
// name lookups.
type Catalog struct {
	items      []Item
	byCode     map[string]Item
	byName     map[string]Item
	categories []Category
}

// New builds a catalog from an item table. Later duplicates of a code or
// name are ignored; the table is authoritative in order.
func New(items []Item) *Catalog {
	c := &Catalog{
		items:  items,
		byCode: make(map[string]Item, len(items)),
		byName: make(map[string]Item, len(items)),
	}
	catIndex := make(map[string]int)
	for _, it := range items {
		if _, ok := c.byCode[it.Code]; !ok {
			c.byCode[it.Code] = it
		}
		if _, ok := c.byName[it.Name]; !ok {
			c.byName[it.Name] = it
		}
		i, ok := catIndex[it.Category]
		if !ok {
			i = len(c.categories)
			catIndex[it.Category] = i
			c.categories = append(c.categories, Category{Name: it.Category})
		}
		c.categories[i].Items = append(c.categories[i].Items, it)
	}
	return c
}

// Default returns a catalog over the compiled-in item table.
func Default() *Catalog {
	return New(Items)
}

// Items returns the full table in order.
func (c *Catalog) All() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// ByCode looks an item up by its KOSIS code.
func (c *Catalog) ByCode(code string) (Item, bool) {
	it, ok := c.byCode[code]
	return it, ok
}

// ByName looks an item up by its display name.
func (c *Catalog) ByName(name string) (Item, bool) {
	it, ok := c.byName[name]
	return it, ok
}

// Categories returns the category grouping in table order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// CategoryItems returns the items of one category.
func (c *Catalog) CategoryItems(name string) ([]Item, bool) {
	for _, cat := range c.categories {
		if cat.Name == name {
			items := make([]Item, len(cat.Items))
			copy(items, cat.Items)
			return items, true
		}
	}
	return nil, false
}

// Len reports the number of tracked items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// ToSlug converts a display name into a URL slug.
func ToSlug(text string) string {
	return strings.Join(strings.Fields(text), "-")
}

// FromSlug converts a URL slug back into a display name.
func FromSlug(slug string) string {
	return strings.ReplaceAll(slug, "-", " ")
}
