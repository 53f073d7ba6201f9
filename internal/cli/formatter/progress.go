package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct int, width int) string {
	pct = clampPct(pct)
	return fmt.Sprintf("[%s] %3d%%", progressStyle(pct).Render(progressBlocks(pct, width)), pct)
}

// RenderCompactBar renders the bar alone, without brackets or a label.
func RenderCompactBar(pct int, width int) string {
	pct = clampPct(pct)
	return progressStyle(pct).Render(progressBlocks(pct, width))
}

func progressBlocks(pct, width int) string {
	if width < 2 {
		width = 2
	}
	filled := pct * width / 100
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func progressStyle(pct int) lipgloss.Style {
	switch {
	case pct < 33:
		return StyleRed
	case pct < 66:
		return StyleYellow
	default:
		return StyleGreen
	}
}

func clampPct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
