package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/checklist/internal/notify"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CardPalette is cycled through by display position on the dashboard.
var CardPalette = []lipgloss.Color{
	ColorBlue,
	ColorGreen,
	ColorYellow,
	lipgloss.Color("#f2a7c3"), // pink
	ColorPurple,
	lipgloss.Color("#458588"), // indigo
}

// CardColor returns the palette entry for the card at display index i.
func CardColor(i int) lipgloss.Color {
	if i < 0 {
		i = -i
	}
	return CardPalette[i%len(CardPalette)]
}

// LevelStyle returns the style a notification of level is rendered with.
func LevelStyle(level notify.Level) lipgloss.Style {
	switch level {
	case notify.Success:
		return StyleGreen
	case notify.Warning:
		return StyleYellow
	case notify.Error:
		return StyleRed
	default:
		return StyleBlue
	}
}

// LevelGlyph returns the one-character marker for level.
func LevelGlyph(level notify.Level) string {
	switch level {
	case notify.Success:
		return "✔"
	case notify.Warning:
		return "!"
	case notify.Error:
		return "✖"
	default:
		return "i"
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
