package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewLogin ViewID = iota
	ViewRegister
	ViewDashboard
	ViewChecklist
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// inputCapturer is implemented by views that own text inputs. While
// capturesInput reports true, every key goes to the view, bypassing
// global bindings such as q.
type inputCapturer interface {
	capturesInput() bool
}

// viewCapturesInput returns true if the active view should receive all key
// events.
func viewCapturesInput(v View) bool {
	if c, ok := v.(inputCapturer); ok {
		return c.capturesInput()
	}
	return false
}

func binding(keys, help string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, help))
}
