// Package theme holds the palettes tarifa can draw with. Both the calculator
// screen and `tarifa quote` read colors from Active.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps each visual role in tarifa to a color.
type Theme struct {
	Name string

	// Layers, back to front.
	Background lipgloss.Color
	Surface    lipgloss.Color // card fill

	// Card outlines. BorderAccent marks the card holding the inputs.
	Border       lipgloss.Color
	BorderAccent lipgloss.Color

	TextPrimary lipgloss.Color // values and typed input
	TextMuted   lipgloss.Color // field labels
	TextDim     lipgloss.Color // placeholders, hints, empty bar track

	Accent       lipgloss.Color // focus marker, table headers
	AccentBright lipgloss.Color // titles, focused label
	Money        lipgloss.Color // formatted euro amounts
	KeyHint      lipgloss.Color // keys in the help overlay

	// Billable-share scale, best to worst: Green, Yellow, Orange, Red.
	// Orange doubles as the warning color, Red as the error color.
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Orange lipgloss.Color
	Red    lipgloss.Color
}

// Active is the palette in use. SetActive replaces it.
var Active = FlexokiDark

// FlexokiDark is the default palette.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	TextMuted:    lipgloss.Color("#878580"),
	TextDim:      lipgloss.Color("#575653"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Money:        lipgloss.Color("#A3B859"),
	KeyHint:      lipgloss.Color("#24837B"),
	Green:        lipgloss.Color("#879A39"),
	Yellow:       lipgloss.Color("#D0A215"),
	Orange:       lipgloss.Color("#DA702C"),
	Red:          lipgloss.Color("#D14D41"),
}

// CatppuccinMocha follows the Catppuccin Mocha flavor.
var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Background:   lipgloss.Color("#1E1E2E"),
	Surface:      lipgloss.Color("#313244"),
	Border:       lipgloss.Color("#585B70"),
	BorderAccent: lipgloss.Color("#89B4FA"),
	TextPrimary:  lipgloss.Color("#CDD6F4"),
	TextMuted:    lipgloss.Color("#A6ADC8"),
	TextDim:      lipgloss.Color("#6C7086"),
	Accent:       lipgloss.Color("#89B4FA"),
	AccentBright: lipgloss.Color("#B4D0FB"),
	Money:        lipgloss.Color("#C6F6C1"),
	KeyHint:      lipgloss.Color("#94E2D5"),
	Green:        lipgloss.Color("#A6E3A1"),
	Yellow:       lipgloss.Color("#F9E2AF"),
	Orange:       lipgloss.Color("#FAB387"),
	Red:          lipgloss.Color("#F38BA8"),
}

// TokyoNight follows the Tokyo Night storm colors.
var TokyoNight = Theme{
	Name:         "tokyo-night",
	Background:   lipgloss.Color("#1A1B26"),
	Surface:      lipgloss.Color("#24283B"),
	Border:       lipgloss.Color("#565F89"),
	BorderAccent: lipgloss.Color("#7AA2F7"),
	TextPrimary:  lipgloss.Color("#C0CAF5"),
	TextMuted:    lipgloss.Color("#A9B1D6"),
	TextDim:      lipgloss.Color("#565F89"),
	Accent:       lipgloss.Color("#7AA2F7"),
	AccentBright: lipgloss.Color("#A9C1FF"),
	Money:        lipgloss.Color("#B9E87A"),
	KeyHint:      lipgloss.Color("#7DCFFF"),
	Green:        lipgloss.Color("#9ECE6A"),
	Yellow:       lipgloss.Color("#E0AF68"),
	Orange:       lipgloss.Color("#FF9E64"),
	Red:          lipgloss.Color("#F7768E"),
}

// Terminal sticks to the 16 ANSI colors so the user's terminal scheme decides.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextPrimary:  lipgloss.Color("15"),
	TextMuted:    lipgloss.Color("7"),
	TextDim:      lipgloss.Color("8"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	Money:        lipgloss.Color("10"),
	KeyHint:      lipgloss.Color("6"),
	Green:        lipgloss.Color("2"),
	Yellow:       lipgloss.Color("3"),
	Orange:       lipgloss.Color("3"),
	Red:          lipgloss.Color("1"),
}

// All lists the palettes in the order the setup form offers them.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// Names returns the palette names in All order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// Valid reports whether name is one of All.
func Valid(name string) bool {
	for _, t := range All {
		if t.Name == name {
			return true
		}
	}
	return false
}

// ByName looks up a palette, falling back to FlexokiDark for unknown names.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive switches Active to the named palette.
func SetActive(name string) {
	Active = ByName(name)
}
