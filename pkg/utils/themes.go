package utils

// Theme is the color set a client applies to a destination card. Kept as a
// pure lookup so the mapping stays out of the view layer.
type Theme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

var defaultTheme = Theme{Primary: "#0B1E3F", Secondary: "#1E4D8C", Accent: "#54C7EC"}

var regionThemes = map[string]Theme{
	"France": {Primary: "#1C2541", Secondary: "#3A506B", Accent: "#E0A458"},
	"Japan":  {Primary: "#2D132C", Secondary: "#801336", Accent: "#EE4540"},
	"Greece": {Primary: "#05386B", Secondary: "#379683", Accent: "#8EE4AF"},
	"USA":    {Primary: "#22223B", Secondary: "#4A4E69", Accent: "#F2E9E4"},
}

// RegionTheme returns the theme for a region, falling back to a neutral set
// for regions without a dedicated palette.
func RegionTheme(region string) Theme {
	if theme, ok := regionThemes[region]; ok {
		return theme
	}
	return defaultTheme
}
