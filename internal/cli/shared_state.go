package cli

import (
	"github.com/alexanderramin/checklist/internal/notify"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
)

// SharedState holds context shared across all views via pointer.
// Only the session outlives a view; everything else a view loads is
// discarded on navigation.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

func (s *SharedState) loggedIn() bool {
	return s.App.Session.Current().Active()
}

func (s *SharedState) catalog() *notify.Catalog {
	return s.App.Catalog
}

// newInput builds a text input in the shared style.
func (s *SharedState) newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = "› "
	if s.App.StaticCursor {
		ti.Cursor.SetMode(cursor.CursorStatic)
	}
	return ti
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines), toast (up to 3 lines), and status bar
// (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 7
	if h < 1 {
		return 1
	}
	return h
}
