// Package testgen provides rapid generators for catalog values.
package testgen

import (
	"pgregory.net/rapid"

	"github.com/chatter/shortcuts/internal/catalog"
)

// CatalogOption transforms a Catalog generator.
type CatalogOption func(*rapid.Generator[catalog.Catalog]) *rapid.Generator[catalog.Catalog]

// Shortcut generates a shortcut with non-blank keys.
func Shortcut() *rapid.Generator[catalog.Shortcut] {
	return rapid.Custom(func(t *rapid.T) catalog.Shortcut {
		return catalog.Shortcut{
			Keys:        rapid.StringMatching(`[A-Za-z][A-Za-z0-9+ -]{0,15}`).Draw(t, "keys"),
			Description: rapid.StringMatching(`[A-Za-z ]{0,30}`).Draw(t, "description"),
		}
	})
}

// Group generates a named group of 1-8 shortcuts.
func Group() *rapid.Generator[catalog.Group] {
	return rapid.Custom(func(t *rapid.T) catalog.Group {
		return catalog.Group{
			Name:      rapid.StringMatching(`[A-Z][a-z]{2,10}`).Draw(t, "group"),
			Shortcuts: rapid.SliceOfN(Shortcut(), 1, 8).Draw(t, "shortcuts"),
		}
	})
}

// Category generates a category of 1-4 groups, sometimes with an icon and colour.
func Category() *rapid.Generator[catalog.Category] {
	return rapid.Custom(func(t *rapid.T) catalog.Category {
		cat := catalog.Category{
			Name:   rapid.StringMatching(`[A-Z][a-z]{2,10}`).Draw(t, "category"),
			Groups: rapid.SliceOfN(Group(), 1, 4).Draw(t, "groups"),
		}
		if rapid.Bool().Draw(t, "hasIcon") {
			cat.Icon = rapid.SampledFrom([]string{"*", "#", "@", "λ"}).Draw(t, "icon")
		}
		if rapid.Bool().Draw(t, "hasColor") {
			cat.Color = rapid.StringMatching(`#[0-9a-f]{6}`).Draw(t, "color")
		}
		return cat
	})
}

// Catalog generates a catalog of 1-12 categories.
//
// Options are transformers that modify the generator:
//
//	Catalog()             // 1-12 categories
//	Catalog(WithEmpty)    // sometimes zero categories
func Catalog(opts ...CatalogOption) *rapid.Generator[catalog.Catalog] {
	gen := rapid.Custom(func(t *rapid.T) catalog.Catalog {
		return catalog.Catalog{
			Categories: rapid.SliceOfN(Category(), 1, 12).Draw(t, "categories"),
		}
	})
	for _, opt := range opts {
		gen = opt(gen)
	}
	return gen
}

// WithEmpty lets the generator also produce a catalog with no categories.
func WithEmpty(gen *rapid.Generator[catalog.Catalog]) *rapid.Generator[catalog.Catalog] {
	return rapid.Custom(func(t *rapid.T) catalog.Catalog {
		if rapid.IntRange(0, 4).Draw(t, "emptyChance") == 0 {
			return catalog.Catalog{}
		}
		return gen.Draw(t, "catalog")
	})
}
