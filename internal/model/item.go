package model

import (
	"time"
)

// Category classifies an item for filtering and advice prompts
type Category string

const (
	CategorySkincare Category = "Skincare"
	CategoryMedicine Category = "Medicine"
	CategoryKitchen  Category = "Kitchen"
	CategoryOther    Category = "Other"

	// CategoryAll is a filter-only pseudo category, never stored on an item
	CategoryAll Category = ""
)

// Categories returns all storable categories in display order
func Categories() []Category {
	return []Category{CategorySkincare, CategoryMedicine, CategoryKitchen, CategoryOther}
}

// Valid reports whether the category is one of the storable values
func (c Category) Valid() bool {
	switch c {
	case CategorySkincare, CategoryMedicine, CategoryKitchen, CategoryOther:
		return true
	}
	return false
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// Item represents a single tracked inventory item. Field names and JSON tags
// follow the persisted storage format; ExpiryDate is a calendar date string
// (YYYY-MM-DD) with no time component, CreatedAt is unix milliseconds.
//
// Priority ("within lead time") is intentionally not a field: it depends on
// the configurable lead-days setting and the current date, so it is computed
// at every read site instead of being cached here.
type Item struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Category   Category `json:"category"`
	ExpiryDate string   `json:"expiryDate"`
	CreatedAt  int64    `json:"createdAt"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	Price      float64  `json:"price,omitempty"`
	IsUsed     bool     `json:"isUsed,omitempty"`
}

// ExpiryTime parses the item's expiry date in local time
func (it *Item) ExpiryTime() (time.Time, error) {
	return time.ParseInLocation("2006-01-02", it.ExpiryDate, time.Local)
}
