package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the colour scheme chosen by the host terminal.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// palette holds the theme-dependent colours.
type palette struct {
	headerBg    lipgloss.Color
	inputBg     lipgloss.Color
	inputFg     lipgloss.Color
	inputBorder lipgloss.Color
	placeholder lipgloss.Color
	itemBg      lipgloss.Color
	emptyFg     lipgloss.Color
	fg          lipgloss.Color
}

var palettes = map[Theme]palette{
	ThemeLight: {
		headerBg:    lipgloss.Color("#A1CEDC"),
		inputBg:     lipgloss.Color("#FFFFFF"),
		inputFg:     lipgloss.Color("#000000"),
		inputBorder: lipgloss.Color("#DDDDDD"),
		placeholder: lipgloss.Color("#888888"),
		itemBg:      lipgloss.Color("#F0F0F0"),
		emptyFg:     lipgloss.Color("#888888"),
		fg:          lipgloss.Color("#11181C"),
	},
	ThemeDark: {
		headerBg:    lipgloss.Color("#1D3D47"),
		inputBg:     lipgloss.Color("#333333"),
		inputFg:     lipgloss.Color("#FFFFFF"),
		inputBorder: lipgloss.Color("#666666"),
		placeholder: lipgloss.Color("#CCCCCC"),
		itemBg:      lipgloss.Color("#444444"),
		emptyFg:     lipgloss.Color("#AAAAAA"),
		fg:          lipgloss.Color("#ECEDEE"),
	},
}

// Shared colours
var (
	colorTimer   = lipgloss.Color("#0000FF")
	colorPrimary = lipgloss.Color("#0A7EA4")
	colorMuted   = lipgloss.Color("#687076")
	colorSuccess = lipgloss.Color("#2ECC71")
	colorError   = lipgloss.Color("#E74C3C")
)

type styles struct {
	header      lipgloss.Style
	title       lipgloss.Style
	input       lipgloss.Style
	placeholder lipgloss.Style
	inputText   lipgloss.Style
	timer       lipgloss.Style
	button      lipgloss.Style
	buttonStop  lipgloss.Style
	item        lipgloss.Style
	empty       lipgloss.Style
	panel       lipgloss.Style
	muted       lipgloss.Style
	success     lipgloss.Style
	errorText   lipgloss.Style
	footer      lipgloss.Style
}

func newStyles(th Theme) styles {
	p := palettes[th]
	return styles{
		header: lipgloss.NewStyle().
			Background(p.headerBg).
			Padding(1, 2),

		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.fg),

		input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.inputBorder).
			Background(p.inputBg).
			Padding(0, 1),

		placeholder: lipgloss.NewStyle().
			Foreground(p.placeholder),

		inputText: lipgloss.NewStyle().
			Foreground(p.inputFg),

		timer: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTimer).
			Align(lipgloss.Center),

		button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 2),

		buttonStop: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorError).
			Padding(0, 2),

		item: lipgloss.NewStyle().
			Background(p.itemBg).
			Foreground(p.fg).
			Padding(0, 1).
			MarginBottom(1),

		empty: lipgloss.NewStyle().
			Foreground(p.emptyFg).
			Align(lipgloss.Center),

		panel: lipgloss.NewStyle().
			Padding(0, 2),

		muted: lipgloss.NewStyle().
			Foreground(colorMuted),

		success: lipgloss.NewStyle().
			Foreground(colorSuccess),

		errorText: lipgloss.NewStyle().
			Foreground(colorError),

		footer: lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1),
	}
}
