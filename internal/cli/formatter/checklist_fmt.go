package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/checklist/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const cardBarWidth = 16

// FormatChecklists renders the dashboard listing as a table.
func FormatChecklists(lists []domain.Checklist, progress domain.ProgressMap) string {
	if len(lists) == 0 {
		return Dim("No checklists yet.") + "\n"
	}
	rows := make([][]string, 0, len(lists))
	for i, cl := range lists {
		rows = append(rows, []string{
			TruncID(cl.ID),
			lipgloss.NewStyle().Foreground(CardColor(i)).Render(cl.Name),
			RenderProgress(progress.Of(cl.ID), 12),
		})
	}
	return RenderTable([]string{"ID", "NAME", "PROGRESS"}, rows)
}

// FormatItems renders a checklist's items followed by their counts.
func FormatItems(checklistID string, items []domain.Item) string {
	var b strings.Builder
	b.WriteString(Header("Checklist " + checklistID))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(Dim("No items yet.") + "\n")
	}
	for _, it := range items {
		fmt.Fprintf(&b, "%s %s %s\n", CheckBox(it.Completed), TruncID(it.ID), ItemLabel(it))
	}
	done, pending := domain.CountItems(items)
	b.WriteString("\n")
	b.WriteString(Counts(done, pending))
	b.WriteString("  ")
	b.WriteString(RenderProgress(domain.Percent(done, done+pending), 12))
	b.WriteString("\n")
	return b.String()
}

// RenderCard renders one dashboard card: name and progress, bordered in
// the palette color for its display index.
func RenderCard(index int, cl domain.Checklist, pct int, selected bool, width int) string {
	color := CardColor(index)
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		PaddingLeft(1).
		PaddingRight(1)
	if width > 4 {
		style = style.Width(width - 2)
	}
	if selected {
		style = style.Border(lipgloss.ThickBorder()).BorderForeground(ColorHeader)
	}

	name := lipgloss.NewStyle().Foreground(color).Bold(true).Render(cl.Name)
	if strings.TrimSpace(cl.Name) == "" {
		name = Dim(NoNamePlaceholder)
	}
	return style.Render(name + "\n" + RenderProgress(pct, cardBarWidth))
}
