package ui

import (
	gloss "github.com/charmbracelet/lipgloss"
)

type Theme string

const (
	ThemeDay    Theme = "day"
	ThemeNight  Theme = "night"
	ThemeSystem Theme = "system"
)

// ResolveTheme maps a configured theme name to day or night. "system" asks
// the terminal once; anything unrecognised falls back to day.
func ResolveTheme(name string) Theme {
	switch Theme(name) {
	case ThemeDay, ThemeNight:
		return Theme(name)
	case ThemeSystem:
		if gloss.HasDarkBackground() {
			return ThemeNight
		}
	}
	return ThemeDay
}

func (t Theme) Toggle() Theme {
	if t == ThemeNight {
		return ThemeDay
	}
	return ThemeNight
}

// Palette holds the two base colours; night swaps them.
type Palette struct {
	Dark  gloss.Color
	Light gloss.Color
}

var (
	colorInk   = gloss.Color("#0a0a14")
	colorPaper = gloss.Color("#ffffff")
	colorMuted = gloss.Color("#585b70")
	colorRule  = gloss.Color("#363a4f")
)

func PaletteFor(t Theme) Palette {
	if t == ThemeNight {
		return Palette{Dark: colorPaper, Light: colorInk}
	}
	return Palette{Dark: colorInk, Light: colorPaper}
}

const (
	ListMaxWidth    = 60
	dialogMaxWidth  = 64
	dialogMinWidth  = 24
	headerPaddingLR = 4
)

// Styles is rebuilt whenever the theme changes.
type Styles struct {
	Theme   Theme
	Palette Palette

	Header      gloss.Style
	Underline   gloss.Style
	ListBox     gloss.Style
	Centered    gloss.Style
	Status      gloss.Style
	StatusMuted gloss.Style
	ShowMore    gloss.Style
	ShowMoreOff gloss.Style

	SelectedTitle gloss.Style
	SelectedDesc  gloss.Style
	NormalTitle   gloss.Style
	NormalDesc    gloss.Style

	DialogBox   gloss.Style
	DialogTitle gloss.Style
	DialogSub   gloss.Style
	DialogBody  gloss.Style
	DialogHint  gloss.Style

	FieldLabel       gloss.Style
	FieldLabelActive gloss.Style
	FieldValue       gloss.Style
	Prompt           gloss.Style
	PromptText       gloss.Style
	Placeholder      gloss.Style
}

func NewStyles(t Theme) Styles {
	p := PaletteFor(t)
	accent := p.Dark

	return Styles{
		Theme:   t,
		Palette: p,

		Header: gloss.NewStyle().
			Foreground(accent).
			Background(p.Light).
			Padding(1, headerPaddingLR, 0, headerPaddingLR).
			Align(gloss.Center).
			Bold(true),
		Underline: gloss.NewStyle().
			Foreground(colorRule).
			Align(gloss.Center),
		ListBox: gloss.NewStyle().
			Align(gloss.Left).
			Padding(1, 4),
		Centered: gloss.NewStyle().
			Align(gloss.Center),
		Status: gloss.NewStyle().
			Foreground(accent).
			Padding(1, 4, 0, 4).
			Align(gloss.Center),
		StatusMuted: gloss.NewStyle().
			Foreground(colorMuted).
			PaddingTop(1).
			Align(gloss.Center),
		ShowMore: gloss.NewStyle().
			Foreground(p.Light).
			Background(p.Dark).
			Padding(0, 2).
			Bold(true),
		ShowMoreOff: gloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 2),

		SelectedTitle: gloss.NewStyle().
			Foreground(accent).
			BorderLeft(true).
			BorderStyle(gloss.NormalBorder()).
			BorderForeground(accent).
			PaddingLeft(1).
			Bold(true),
		SelectedDesc: gloss.NewStyle().
			Foreground(accent).
			BorderLeft(true).
			BorderStyle(gloss.NormalBorder()).
			BorderForeground(accent).
			PaddingLeft(1),
		NormalTitle: gloss.NewStyle().
			Foreground(colorMuted).
			PaddingLeft(2),
		NormalDesc: gloss.NewStyle().
			Foreground(colorMuted).
			PaddingLeft(2),

		DialogBox: gloss.NewStyle().
			Border(gloss.RoundedBorder()).
			BorderForeground(accent).
			Foreground(p.Dark).
			Background(p.Light).
			Padding(1, 2),
		DialogTitle: gloss.NewStyle().
			Foreground(accent).
			Bold(true),
		DialogSub: gloss.NewStyle().
			Foreground(colorMuted).
			Italic(true),
		DialogBody: gloss.NewStyle().
			Foreground(p.Dark),
		DialogHint: gloss.NewStyle().
			Foreground(colorMuted).
			PaddingTop(1),

		FieldLabel: gloss.NewStyle().
			Foreground(colorMuted).
			Width(10),
		FieldLabelActive: gloss.NewStyle().
			Foreground(accent).
			Width(10).
			Bold(true),
		FieldValue: gloss.NewStyle().
			Foreground(p.Dark),
		Prompt: gloss.NewStyle().
			Foreground(accent),
		PromptText: gloss.NewStyle().
			Foreground(p.Dark),
		Placeholder: gloss.NewStyle().
			Foreground(colorMuted),
	}
}

// dialogWidths returns the overlay width and the usable content width inside
// its border and padding.
func dialogWidths(termWidth int) (dlgW, contentW int) {
	dlgW = min(max(termWidth-6, dialogMinWidth), dialogMaxWidth)
	// border 1+1, padding 2+2
	contentW = max(dlgW-6, 10)
	return dlgW, contentW
}

func listWidth(termWidth int) int {
	w := termWidth - 8
	if w > ListMaxWidth || w < 0 {
		w = ListMaxWidth
	}
	return w
}
