package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/checklist/internal/domain"
	"github.com/alexanderramin/checklist/internal/notify"
	"github.com/charmbracelet/lipgloss"
)

// NoNamePlaceholder is shown for an item the API returned without a label.
const NoNamePlaceholder = "(no name)"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// ItemLabel returns the item's display name, or a dimmed placeholder.
func ItemLabel(it domain.Item) string {
	name := it.DisplayName()
	if strings.TrimSpace(name) == "" {
		return StyleDim.Italic(true).Render(NoNamePlaceholder)
	}
	if it.Completed {
		return StyleDim.Strikethrough(true).Render(name)
	}
	return StyleFg.Render(name)
}

// CheckBox renders the completion marker of an item.
func CheckBox(completed bool) string {
	if completed {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}

// Counts renders "3 done · 2 to go".
func Counts(done, pending int) string {
	return fmt.Sprintf("%s %s %s",
		StyleGreen.Render(fmt.Sprintf("%d done", done)),
		Dim("·"),
		StyleYellow.Render(fmt.Sprintf("%d to go", pending)))
}

// RenderNotice renders a notification as a single glyph-prefixed line.
func RenderNotice(n notify.Notification) string {
	style := LevelStyle(n.Level)
	return style.Bold(true).Render(LevelGlyph(n.Level)) + " " + style.Render(n.Text)
}

// RenderToast renders a notification as a bordered banner for the TUI.
func RenderToast(n notify.Notification, width int) string {
	color := LevelStyle(n.Level).GetForeground()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		PaddingLeft(1).
		PaddingRight(1)
	if width > 4 {
		box = box.MaxWidth(width)
	}
	return box.Render(RenderNotice(n))
}
