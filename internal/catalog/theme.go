package catalog

// Theme is the optional colour palette carried by a configuration file.
// Values are hex colours; empty fields take the default palette.
type Theme struct {
	Primary    string `yaml:"primary,omitempty" toml:"primary,omitempty"`
	Secondary  string `yaml:"secondary,omitempty" toml:"secondary,omitempty"`
	Background string `yaml:"background,omitempty" toml:"background,omitempty"`
	Text       string `yaml:"text,omitempty" toml:"text,omitempty"`
	Muted      string `yaml:"muted,omitempty" toml:"muted,omitempty"`
	Border     string `yaml:"border,omitempty" toml:"border,omitempty"`
	Highlight  string `yaml:"highlight,omitempty" toml:"highlight,omitempty"`
}

// DefaultTheme is the built-in palette.
var DefaultTheme = Theme{
	Primary:    "#7aa2f7",
	Secondary:  "#9ece6a",
	Background: "#1a1b26",
	Text:       "#c0caf5",
	Muted:      "#565f89",
	Border:     "#3b4261",
	Highlight:  "#33467c",
}

// WithDefaults fills every empty field from DefaultTheme.
func (t Theme) WithDefaults() Theme {
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}

	return Theme{
		Primary:    pick(t.Primary, DefaultTheme.Primary),
		Secondary:  pick(t.Secondary, DefaultTheme.Secondary),
		Background: pick(t.Background, DefaultTheme.Background),
		Text:       pick(t.Text, DefaultTheme.Text),
		Muted:      pick(t.Muted, DefaultTheme.Muted),
		Border:     pick(t.Border, DefaultTheme.Border),
		Highlight:  pick(t.Highlight, DefaultTheme.Highlight),
	}
}
