package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/checklist/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a vertical list of labelled text inputs with one focused field.
type form struct {
	labels []string
	inputs []textinput.Model
	cur    int
}

func newForm(labels []string, inputs ...textinput.Model) form {
	return form{labels: labels, inputs: inputs}
}

func (f *form) focus(i int) tea.Cmd {
	if i < 0 || i >= len(f.inputs) {
		return nil
	}
	f.inputs[f.cur].Blur()
	f.cur = i
	return f.inputs[i].Focus()
}

func (f *form) next() tea.Cmd { return f.focus((f.cur + 1) % len(f.inputs)) }
func (f *form) prev() tea.Cmd { return f.focus((f.cur + len(f.inputs) - 1) % len(f.inputs)) }
func (f *form) onLast() bool { return f.cur == len(f.inputs)-1 }
func (f *form) value(i int) string { return f.inputs[i].Value() }

// update routes msg to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.cur], cmd = f.inputs[f.cur].Update(msg)
	return cmd
}

func (f *form) view() string {
	width := 0
	for _, l := range f.labels {
		width = max(width, len(l))
	}
	var b strings.Builder
	for i, in := range f.inputs {
		label := fmt.Sprintf("%-*s", width, f.labels[i])
		if i == f.cur {
			label = formatter.StyleHeader.Render(label)
		} else {
			label = formatter.Dim(label)
		}
		b.WriteString("  " + label + "  " + in.View() + "\n")
	}
	return b.String()
}
