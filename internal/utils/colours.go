package utils

// ColourScheme defines the dark zinc and red palette used throughout the site
type ColourScheme struct {
	Primary    string
	PrimaryDim string
	Surface    string
	Surface1   string
	Border     string
	Text       string
	Subtext    string
	Muted      string
	Green      string
	Red        string
}

// Colours provides the default site palette
var Colours = ColourScheme{
	Primary:    "#DC2626",
	PrimaryDim: "#7F1D1D",
	Surface:    "#18181B",
	Surface1:   "#27272A",
	Border:     "#3F3F46",
	Text:       "#FAFAFA",
	Subtext:    "#A1A1AA",
	Muted:      "#71717A",
	Green:      "#22C55E",
	Red:        "#EF4444",
}
