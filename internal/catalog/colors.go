package catalog

import "strings"

// CoverColor is the customer-selectable cover palette.
type CoverColor string

const (
	ColorBlue   CoverColor = "blue"
	ColorPink   CoverColor = "pink"
	ColorPurple CoverColor = "purple"
	ColorGreen  CoverColor = "green"
	ColorYellow CoverColor = "yellow"
	ColorRed    CoverColor = "red"
	ColorOrange CoverColor = "orange"
	ColorTeal   CoverColor = "teal"
)

// ColorScheme is the palette bound to a cover color.
type ColorScheme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
}

// Every CoverColor has exactly one scheme; SchemeFor is total over the enum.
var colorSchemes = map[CoverColor]ColorScheme{
	ColorBlue:   {Primary: "#3B82F6", Secondary: "#1E40AF", Accent: "#60A5FA", Background: "#EFF6FF"},
	ColorPink:   {Primary: "#EC4899", Secondary: "#BE185D", Accent: "#F472B6", Background: "#FDF2F8"},
	ColorPurple: {Primary: "#8B5CF6", Secondary: "#6D28D9", Accent: "#A78BFA", Background: "#F3E8FF"},
	ColorGreen:  {Primary: "#10B981", Secondary: "#059669", Accent: "#34D399", Background: "#ECFDF5"},
	ColorYellow: {Primary: "#F59E0B", Secondary: "#D97706", Accent: "#FBBF24", Background: "#FFFBEB"},
	ColorRed:    {Primary: "#EF4444", Secondary: "#DC2626", Accent: "#F87171", Background: "#FEF2F2"},
	ColorOrange: {Primary: "#F97316", Secondary: "#EA580C", Accent: "#FB923C", Background: "#FFF7ED"},
	ColorTeal:   {Primary: "#14B8A6", Secondary: "#0D9488", Accent: "#5EEAD4", Background: "#F0FDFA"},
}

// ParseCoverColor normalizes and validates a cover color value.
func ParseCoverColor(value string) (CoverColor, bool) {
	color := CoverColor(strings.ToLower(strings.TrimSpace(value)))
	_, ok := colorSchemes[color]
	return color, ok
}

// SchemeFor returns the palette for a parsed cover color.
func SchemeFor(color CoverColor) ColorScheme {
	return colorSchemes[color]
}

// CoverColors lists the selectable colors in display order.
func CoverColors() []CoverColor {
	return []CoverColor{
		ColorBlue, ColorPink, ColorPurple, ColorGreen,
		ColorYellow, ColorRed, ColorOrange, ColorTeal,
	}
}
