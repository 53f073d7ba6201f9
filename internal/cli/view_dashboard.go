package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/checklist/internal/cli/formatter"
	"github.com/alexanderramin/checklist/internal/domain"
	"github.com/alexanderramin/checklist/internal/listing"
	"github.com/alexanderramin/checklist/internal/notify"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

const (
	cardWidth  = 28
	cardHeight = 4
)

// ── messages ─────────────────────────────────────────────────────────────────

type checklistsLoadedMsg struct {
	gen   string
	lists []domain.Checklist
	err   error
}

type progressLoadedMsg struct {
	gen      string
	progress domain.ProgressMap
	err      error
}

type checklistCreatedMsg struct{ err error }

type checklistDeletedMsg struct{ err error }

type logoutResultMsg struct{ err error }

// ── view ─────────────────────────────────────────────────────────────────────

type dashboardMode int

const (
	dashBrowse dashboardMode = iota
	dashCreating
	dashFiltering
)

// dashboardView shows every checklist as a card with its progress.
type dashboardView struct {
	ctx   context.Context
	state *SharedState

	// gen identifies the newest load; results from older loads are dropped.
	gen      string
	loading  bool
	lists    []domain.Checklist
	progress domain.ProgressMap

	mode   dashboardMode
	create textinput.Model
	filter textinput.Model
	query  string
	order  listing.Order
	cursor int
	offset int

	// submitting is set while a create is in flight; enter is ignored until it returns.
	submitting bool
}

func newDashboardView(ctx context.Context, state *SharedState) *dashboardView {
	return &dashboardView{
		ctx:      ctx,
		state:    state,
		progress: domain.ProgressMap{},
		create:   state.newInput("new checklist title", 120),
		filter:   state.newInput("search", 64),
		order:    listing.Ascending,
	}
}

func (v *dashboardView) ID() ViewID { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) capturesInput() bool {
	return v.mode != dashBrowse
}

func (v *dashboardView) ShortHelp() []key.Binding {
	switch v.mode {
	case dashCreating:
		return []key.Binding{binding("enter", "create"), binding("esc", "cancel")}
	case dashFiltering:
		return []key.Binding{binding("enter", "keep"), binding("esc", "clear")}
	}
	return []key.Binding{
		binding("enter", "open"),
		binding("n", "new"),
		binding("d", "delete"),
		binding("/", "search"),
		binding("s", "sort "+string(v.order.Toggle())),
		binding("r", "refresh"),
		binding("L", "log out"),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.load()
}

// load starts a new generation: the checklist list first, then progress.
func (v *dashboardView) load() tea.Cmd {
	v.gen = uuid.NewString()
	v.loading = true
	gen, ctx, svc := v.gen, v.ctx, v.state.App.Checklists
	return func() tea.Msg {
		lists, err := svc.List(ctx)
		return checklistsLoadedMsg{gen: gen, lists: lists, err: err}
	}
}

func (v *dashboardView) measure(lists []domain.Checklist) tea.Cmd {
	gen, ctx, svc := v.gen, v.ctx, v.state.App.Progress
	return func() tea.Msg {
		progress, err := svc.Measure(ctx, lists)
		return progressLoadedMsg{gen: gen, progress: progress, err: err}
	}
}

// visible returns the checklists as displayed: filtered, then sorted.
func (v *dashboardView) visible() []domain.Checklist {
	return v.state.App.arrange(v.lists, v.query, v.order)
}

func (v *dashboardView) selected() (domain.Checklist, bool) {
	vis := v.visible()
	if v.cursor < 0 || v.cursor >= len(vis) {
		return domain.Checklist{}, false
	}
	return vis[v.cursor], true
}

func (v *dashboardView) columns() int {
	if v.state.Width < cardWidth {
		return 1
	}
	return v.state.Width / cardWidth
}

func (v *dashboardView) clampCursor() {
	n := len(v.visible())
	if v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cat := v.state.catalog()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return v, nil

	case checklistsLoadedMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		if msg.err != nil {
			v.loading = false
			if errors.Is(msg.err, context.Canceled) {
				return v, nil
			}
			return v, notifyCmd(cat.Error(notify.ChecklistLoadFailed))
		}
		v.lists = msg.lists
		v.clampCursor()
		return v, v.measure(msg.lists)

	case progressLoadedMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		v.loading = false
		if msg.err == nil {
			v.progress = msg.progress
		}
		return v, nil

	case checklistCreatedMsg:
		v.submitting = false
		if msg.err != nil {
			return v, notifyCmd(cat.Error(notify.ChecklistCreateFailed))
		}
		v.create.Reset()
		v.create.Blur()
		v.mode = dashBrowse
		return v, tea.Batch(notifyCmd(cat.Success(notify.ChecklistCreated)), v.load())

	case checklistDeletedMsg:
		if msg.err != nil {
			return v, notifyCmd(cat.Error(notify.ChecklistDeleteFailed))
		}
		return v, tea.Batch(notifyCmd(cat.Success(notify.ChecklistDeleted)), v.load())

	case logoutResultMsg:
		if msg.err != nil {
			return v, notifyCmd(cat.Error(notify.LogoutFailed))
		}
		return v, tea.Batch(notifyCmd(cat.Success(notify.LogoutSuccess)), navigate(Route{Name: RouteLogin}))

	case tea.KeyMsg:
		switch v.mode {
		case dashCreating:
			return v.updateCreating(msg)
		case dashFiltering:
			return v.updateFiltering(msg)
		}
		return v.updateBrowse(msg)
	}

	return v, nil
}

func (v *dashboardView) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(v.visible())
	switch msg.String() {
	case "right", "l", "tab":
		if v.cursor < n-1 {
			v.cursor++
		}
	case "left", "h", "shift+tab":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor+v.columns() < n {
			v.cursor += v.columns()
		}
	case "up", "k":
		if v.cursor-v.columns() >= 0 {
			v.cursor -= v.columns()
		}
	case "enter":
		if cl, ok := v.selected(); ok {
			return v, navigate(Route{Name: RouteChecklist, ChecklistID: cl.ID})
		}
	case "n":
		v.mode = dashCreating
		return v, v.create.Focus()
	case "/":
		v.mode = dashFiltering
		return v, v.filter.Focus()
	case "s":
		v.order = v.order.Toggle()
		v.cursor = 0
	case "r":
		return v, v.load()
	case "d":
		if cl, ok := v.selected(); ok {
			return v, v.remove(cl.ID)
		}
	case "L":
		return v, v.logout()
	}
	return v, nil
}

func (v *dashboardView) updateCreating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.create.Blur()
		v.mode = dashBrowse
		return v, nil
	case "enter":
		if v.submitting {
			return v, nil
		}
		name := v.create.Value()
		if domain.IsBlankName(name) {
			return v, notifyCmd(v.state.catalog().Warning(notify.ChecklistBlankName))
		}
		v.submitting = true
		svc, ctx := v.state.App.Checklists, v.ctx
		return v, func() tea.Msg {
			return checklistCreatedMsg{err: svc.Create(ctx, name)}
		}
	}
	var cmd tea.Cmd
	v.create, cmd = v.create.Update(msg)
	return v, cmd
}

func (v *dashboardView) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.filter.Reset()
		v.query = ""
		v.filter.Blur()
		v.mode = dashBrowse
		v.clampCursor()
		return v, nil
	case "enter":
		v.filter.Blur()
		v.mode = dashBrowse
		return v, nil
	}
	var cmd tea.Cmd
	v.filter, cmd = v.filter.Update(msg)
	v.query = v.filter.Value()
	v.cursor = 0
	return v, cmd
}

func (v *dashboardView) remove(id string) tea.Cmd {
	svc, ctx := v.state.App.Checklists, v.ctx
	return func() tea.Msg {
		return checklistDeletedMsg{err: svc.Delete(ctx, id)}
	}
}

func (v *dashboardView) logout() tea.Cmd {
	auth, ctx := v.state.App.Auth, v.ctx
	return func() tea.Msg {
		return logoutResultMsg{err: auth.Logout(ctx)}
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	status := formatter.Header("Your checklists") + "  " + formatter.Dim("sorted "+string(v.order))
	if v.query != "" && v.mode != dashFiltering {
		status += "  " + formatter.Dim("search: ") + v.query
	}
	b.WriteString("  " + status + "\n")

	switch v.mode {
	case dashCreating:
		b.WriteString("  " + formatter.Bold("New") + "  " + v.create.View() + "\n")
	case dashFiltering:
		b.WriteString("  " + formatter.Bold("Search") + "  " + v.filter.View() + "\n")
	}
	b.WriteString("\n")

	vis := v.visible()
	switch {
	case v.loading && v.lists == nil:
		b.WriteString("  " + formatter.Dim("Loading checklists...") + "\n")
		return b.String()
	case len(v.lists) == 0:
		b.WriteString("  " + formatter.Dim("No checklists yet. Press n to create one.") + "\n")
		return b.String()
	case len(vis) == 0:
		b.WriteString("  " + formatter.Dim("No checklist matches the search.") + "\n")
		return b.String()
	}

	b.WriteString(v.renderGrid(vis))
	return b.String()
}

// renderGrid lays cards out in rows, scrolled so the selected card is visible.
func (v *dashboardView) renderGrid(vis []domain.Checklist) string {
	cols := v.columns()
	rowsFit := max(1, (v.state.ContentHeight()-4)/cardHeight)
	curRow := v.cursor / cols
	if curRow < v.offset {
		v.offset = curRow
	}
	if curRow >= v.offset+rowsFit {
		v.offset = curRow - rowsFit + 1
	}

	var rows []string
	for start := v.offset * cols; start < len(vis) && len(rows) < rowsFit; start += cols {
		end := min(start+cols, len(vis))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cl := vis[i]
			cards = append(cards, formatter.RenderCard(i, cl, v.progress.Of(cl.ID), i == v.cursor, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}
