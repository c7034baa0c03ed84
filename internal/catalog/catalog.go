// Package catalog holds the read-only tree of shortcut categories shown by the
// cheat sheet, and decodes it from YAML, JSON or TOML configuration payloads.
package catalog

// Shortcut maps a trigger sequence to what it does.
type Shortcut struct {
	Keys        string `yaml:"keys" toml:"keys"`
	Description string `yaml:"description" toml:"description"`
}

// Group is a named run of shortcuts within a category. Order is display order.
type Group struct {
	Name      string     `yaml:"name" toml:"name"`
	Shortcuts []Shortcut `yaml:"shortcuts" toml:"shortcuts"`
}

// Category is a top-level tab. Icon and Color are presentation hints only;
// an empty value means absent.
type Category struct {
	Name   string  `yaml:"name" toml:"name"`
	Icon   string  `yaml:"icon,omitempty" toml:"icon,omitempty"`
	Color  string  `yaml:"color,omitempty" toml:"color,omitempty"`
	Groups []Group `yaml:"groups" toml:"groups"`
}

// Catalog is the root of the shortcut tree. It is built once and never
// mutated afterwards; callers replace it wholesale on reload.
type Catalog struct {
	Categories []Category
	Theme      Theme
}

// Len returns the number of categories.
func (c Catalog) Len() int {
	return len(c.Categories)
}

// Category returns the category at index i, or false when i is out of range.
func (c Catalog) Category(i int) (Category, bool) {
	if i < 0 || i >= len(c.Categories) {
		return Category{}, false
	}
	return c.Categories[i], true
}

// Entry is one shortcut flattened together with its location in the tree.
type Entry struct {
	Category    string
	Group       string
	Keys        string
	Description string
}

// Entries flattens the catalog in display order.
func (c Catalog) Entries() []Entry {
	var entries []Entry
	for _, cat := range c.Categories {
		for _, group := range cat.Groups {
			for _, sc := range group.Shortcuts {
				entries = append(entries, Entry{
					Category:    cat.Name,
					Group:       group.Name,
					Keys:        sc.Keys,
					Description: sc.Description,
				})
			}
		}
	}
	return entries
}
