package cli

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/checklist/internal/cli/formatter"
	"github.com/alexanderramin/checklist/internal/notify"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model for the TUI. It owns the router:
// exactly one view is active, and navigating replaces it after the route
// guards have run. Each view gets its own context, cancelled when the view
// is replaced, so loads it started cannot land on its successor.
type appModel struct {
	state    *SharedState
	route    Route
	active   View
	cancel   context.CancelFunc
	quitting bool

	toast    *notify.Notification
	toastSeq int

	// startNote is what the guards said about the start route.
	startNote *notify.Notification
}

func newAppModel(app *App, start Route) appModel {
	m := appModel{state: &SharedState{App: app}}
	m.startNote = m.mount(start)
	return m
}

// mount runs the guards for r and builds the resulting view. It returns
// the notification the guard produced, if any.
func (m *appModel) mount(r Route) *notify.Notification {
	target, note := guard(r, m.state.loggedIn(), m.state.catalog())

	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.route = target

	switch target.Name {
	case RouteRegister:
		m.active = newRegisterView(ctx, m.state)
	case RouteDashboard:
		m.active = newDashboardView(ctx, m.state)
	case RouteChecklist:
		m.active = newChecklistView(ctx, m.state, target.ChecklistID)
	default:
		m.active = newLoginView(ctx, m.state)
	}
	if m.state.Width > 0 {
		updated, _ := m.active.Update(tea.WindowSizeMsg{Width: m.state.Width, Height: m.state.Height})
		m.active = updated.(View)
	}
	return note
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if m.startNote != nil {
		return tea.Batch(m.active.Init(), notifyCmd(*m.startNote))
	}
	return m.active.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case navigateMsg:
		note := m.mount(msg.route)
		cmds := []tea.Cmd{m.active.Init()}
		if note != nil {
			cmds = append(cmds, m.showToast(*note))
		}
		return m, tea.Batch(cmds...)

	case notifyMsg:
		return m, m.showToast(msg.note)

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case quitMsg:
		m.quitting = true
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	}

	return m.forward(msg)
}

func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.active.Update(msg)
	m.active = updated.(View)
	return m, cmd
}

// showToast replaces the current toast and schedules its dismissal.
func (m *appModel) showToast(n notify.Notification) tea.Cmd {
	m.toastSeq++
	m.toast = &n
	ttl := m.state.App.ToastTTL
	if ttl <= 0 {
		return nil
	}
	seq := m.toastSeq
	return tea.Tick(ttl, func(_ time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.Update(quitMsg{})
	}

	if viewCapturesInput(m.active) {
		return m.forward(msg)
	}

	if msg.String() == "q" {
		return m.Update(quitMsg{})
	}
	return m.forward(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if m.toast != nil {
		sections = append(sections, formatter.RenderToast(*m.toast, m.state.Width))
	}
	sections = append(sections, m.active.View(), m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	header := formatter.StylePurple.Render("checklist")
	if t := m.active.Title(); t != "" {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(t)
	}
	header += "  " + formatter.Dim(m.route.Path())
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.active.ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	if !viewCapturesInput(m.active) {
		hints = append(hints, formatter.Dim("q: quit"))
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

// runTUI starts the full-screen program at start.
func runTUI(app *App, start Route) error {
	m := newAppModel(app, start)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
