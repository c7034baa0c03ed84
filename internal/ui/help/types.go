// Package help renders the key-binding overlay of the cheat sheet.
package help

import (
	"charm.land/bubbles/v2/key"
)

// Category groups bindings under a heading in the overlay.
type Category string

const (
	CategoryNavigation Category = "Navigation"
	CategorySearch     Category = "Search"
	CategoryGeneral    Category = "General"
)

// categoryOrder is the order headings appear in.
var categoryOrder = []Category{
	CategoryNavigation,
	CategorySearch,
	CategoryGeneral,
}

// Binding is a key binding as shown in the overlay.
type Binding struct {
	Key      key.Binding
	Category Category
	Order    int // lower sorts first within its category
}
