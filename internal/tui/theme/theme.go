// Package theme defines color themes for the creditsim TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps the dashboard's color roles to concrete colors. The money
// roles carry meaning: a balance that reaches zero is always Paid, one that
// grows over the run is always Owed.
type Theme struct {
	Name string

	Background lipgloss.Color // app background
	Surface    lipgloss.Color // cards, bars, tab strip
	Highlight  lipgloss.Color // active tab, selected grid row
	Border     lipgloss.Color
	Focus      lipgloss.Color // help card border

	TextDim   lipgloss.Color // hints, axes
	TextMuted lipgloss.Color // labels
	Text      lipgloss.Color

	Accent       lipgloss.Color
	AccentBright lipgloss.Color

	Paid      lipgloss.Color // cleared balance, successful status
	Shrinking lipgloss.Color // balance falling but not cleared
	Owed      lipgloss.Color // growing balance, input errors
	Payment   lipgloss.Color
	Interest  lipgloss.Color
	Override  lipgloss.Color // per-month charge overrides
	Key       lipgloss.Color // shortcut keys
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme, warm and paper-inspired.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   "#100F0F",
	Surface:      "#1C1B1A",
	Highlight:    "#282726",
	Border:       "#403E3C",
	Focus:        "#3AA99F",
	TextDim:      "#575653",
	TextMuted:    "#878580",
	Text:         "#FFFCF0",
	Accent:       "#3AA99F",
	AccentBright: "#5BC8BE",
	Paid:         "#879A39",
	Shrinking:    "#DA702C",
	Owed:         "#D14D41",
	Payment:      "#4385BE",
	Interest:     "#DA702C",
	Override:     "#D0A215",
	Key:          "#24837B",
}

// CatppuccinMocha is a soft pastel theme.
var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Background:   "#1E1E2E",
	Surface:      "#313244",
	Highlight:    "#45475A",
	Border:       "#585B70",
	Focus:        "#89B4FA",
	TextDim:      "#6C7086",
	TextMuted:    "#A6ADC8",
	Text:         "#CDD6F4",
	Accent:       "#89B4FA",
	AccentBright: "#B4D0FB",
	Paid:         "#A6E3A1",
	Shrinking:    "#FAB387",
	Owed:         "#F38BA8",
	Payment:      "#74C7EC",
	Interest:     "#FAB387",
	Override:     "#F9E2AF",
	Key:          "#94E2D5",
}

// TokyoNight is a cool blue and purple theme.
var TokyoNight = Theme{
	Name:         "tokyo-night",
	Background:   "#1A1B26",
	Surface:      "#24283B",
	Highlight:    "#343A52",
	Border:       "#565F89",
	Focus:        "#7AA2F7",
	TextDim:      "#565F89",
	TextMuted:    "#A9B1D6",
	Text:         "#C0CAF5",
	Accent:       "#7AA2F7",
	AccentBright: "#A9C1FF",
	Paid:         "#9ECE6A",
	Shrinking:    "#FF9E64",
	Owed:         "#F7768E",
	Payment:      "#7DCFFF",
	Interest:     "#E0AF68",
	Override:     "#BB9AF7",
	Key:          "#7DCFFF",
}

// Terminal sticks to the 16 ANSI colors.
var Terminal = Theme{
	Name:         "terminal",
	Background:   "0",
	Surface:      "0",
	Highlight:    "8",
	Border:       "8",
	Focus:        "6",
	TextDim:      "8",
	TextMuted:    "7",
	Text:         "15",
	Accent:       "6",
	AccentBright: "14",
	Paid:         "2",
	Shrinking:    "3",
	Owed:         "1",
	Payment:      "4",
	Interest:     "3",
	Override:     "5",
	Key:          "6",
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// Names lists theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// BalanceColor returns Paid when a run clears the balance, Shrinking when it
// ends below where it started, and Owed otherwise.
func (t Theme) BalanceColor(start, final float64) lipgloss.Color {
	switch {
	case final <= 0:
		return t.Paid
	case final < start:
		return t.Shrinking
	default:
		return t.Owed
	}
}
