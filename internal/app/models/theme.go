package models

// ShiftTheme is the closed set of display variants a shift block may carry.
// Sources hand us free-form theme strings; anything outside this set is
// mapped to the default rather than passed through.
type ShiftTheme string

const (
	ThemeWhite      ShiftTheme = "white"
	ThemeBlue       ShiftTheme = "blue"
	ThemeGreen      ShiftTheme = "green"
	ThemePurple     ShiftTheme = "purple"
	ThemePink       ShiftTheme = "pink"
	ThemeYellow     ShiftTheme = "yellow"
	ThemeGray       ShiftTheme = "gray"
	ThemeDarkBlue   ShiftTheme = "darkBlue"
	ThemeDarkGreen  ShiftTheme = "darkGreen"
	ThemeDarkPurple ShiftTheme = "darkPurple"
	ThemeDarkPink   ShiftTheme = "darkPink"
	ThemeDarkYellow ShiftTheme = "darkYellow"
)

var knownThemes = map[ShiftTheme]bool{
	ThemeWhite:      true,
	ThemeBlue:       true,
	ThemeGreen:      true,
	ThemePurple:     true,
	ThemePink:       true,
	ThemeYellow:     true,
	ThemeGray:       true,
	ThemeDarkBlue:   true,
	ThemeDarkGreen:  true,
	ThemeDarkPurple: true,
	ThemeDarkPink:   true,
	ThemeDarkYellow: true,
}

// ParseShiftTheme maps a source theme string onto the closed variant set,
// defaulting unknown or empty values to blue.
func ParseShiftTheme(s string) ShiftTheme {
	theme := ShiftTheme(s)
	if knownThemes[theme] {
		return theme
	}
	return ThemeBlue
}
