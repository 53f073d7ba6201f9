package cli

import (
	"github.com/alexanderramin/checklist/internal/notify"
	tea "github.com/charmbracelet/bubbletea"
)

// Messages used by views to talk to the appModel.

// navigateMsg asks the router to replace the active view with route.
// Guards run before the target view is built.
type navigateMsg struct {
	route Route
}

// notifyMsg shows a toast.
type notifyMsg struct {
	note notify.Notification
}

// toastExpiredMsg dismisses the toast with the given sequence number.
type toastExpiredMsg struct {
	seq int
}

// quitMsg ends the program.
type quitMsg struct{}

// navigate returns a tea.Cmd that routes to r.
func navigate(r Route) tea.Cmd {
	return func() tea.Msg { return navigateMsg{route: r} }
}

// notifyCmd returns a tea.Cmd that shows a toast.
func notifyCmd(n notify.Notification) tea.Cmd {
	return func() tea.Msg { return notifyMsg{note: n} }
}
