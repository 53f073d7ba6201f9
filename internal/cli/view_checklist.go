package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/checklist/internal/cli/formatter"
	"github.com/alexanderramin/checklist/internal/domain"
	"github.com/alexanderramin/checklist/internal/notify"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type itemsLoadedMsg struct {
	gen   string
	items []domain.Item
	err   error
}

type itemCreatedMsg struct{ err error }

type itemToggledMsg struct{ err error }

type itemRenamedMsg struct{ err error }

type itemDeletedMsg struct{ err error }

type checklistMode int

const (
	itemsBrowse checklistMode = iota
	itemsAdding
	itemsRenaming
)

// checklistView lists the items of one checklist.
type checklistView struct {
	ctx         context.Context
	state       *SharedState
	checklistID string

	gen     string
	loading bool
	items   []domain.Item
	cursor  int
	offset  int

	mode      checklistMode
	add       textinput.Model
	edit      textinput.Model
	editingID string

	// submitting is set while an add or rename is in flight.
	submitting bool
}

func newChecklistView(ctx context.Context, state *SharedState, checklistID string) *checklistView {
	return &checklistView{
		ctx:         ctx,
		state:       state,
		checklistID: checklistID,
		add:         state.newInput("new item", 200),
		edit:        state.newInput("item name", 200),
	}
}

func (v *checklistView) ID() ViewID { return ViewChecklist }
func (v *checklistView) Title() string { return "Checklist" }

func (v *checklistView) capturesInput() bool {
	return v.mode != itemsBrowse
}

func (v *checklistView) ShortHelp() []key.Binding {
	switch v.mode {
	case itemsAdding:
		return []key.Binding{binding("enter", "add"), binding("esc", "done")}
	case itemsRenaming:
		return []key.Binding{binding("enter", "save"), binding("esc", "cancel")}
	}
	return []key.Binding{
		binding("space", "toggle"),
		binding("a", "add"),
		binding("e", "rename"),
		binding("d", "delete"),
		binding("r", "refresh"),
		binding("esc", "back"),
	}
}

func (v *checklistView) Init() tea.Cmd {
	return v.load()
}

func (v *checklistView) load() tea.Cmd {
	v.gen = uuid.NewString()
	v.loading = true
	gen, ctx, svc, id := v.gen, v.ctx, v.state.App.Items, v.checklistID
	return func() tea.Msg {
		items, err := svc.List(ctx, id)
		return itemsLoadedMsg{gen: gen, items: items, err: err}
	}
}

func (v *checklistView) selected() (domain.Item, bool) {
	if v.cursor < 0 || v.cursor >= len(v.items) {
		return domain.Item{}, false
	}
	return v.items[v.cursor], true
}

func (v *checklistView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cat := v.state.catalog()

	switch msg := msg.(type) {
	case itemsLoadedMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, context.Canceled) {
				return v, nil
			}
			return v, notifyCmd(cat.Error(notify.ItemLoadFailed))
		}
		v.items = msg.items
		if v.cursor >= len(v.items) {
			v.cursor = max(len(v.items)-1, 0)
		}
		return v, nil

	case itemCreatedMsg:
		v.submitting = false
		if msg.err != nil {
			return v, notifyCmd(cat.Error(notify.ItemCreateFailed))
		}
		v.add.Reset()
		return v, tea.Batch(notifyCmd(cat.Success(notify.ItemCreated)), v.load())

	case itemToggledMsg:
		if msg.err != nil {
			return v, notifyCmd(cat.Error(notify.ItemToggleFailed))
		}
		return v, v.load()

	case itemRenamedMsg:
		v.submitting = false
		if msg.err != nil {
			return v, notifyCmd(cat.Error(notify.ItemRenameFailed))
		}
		v.stopEditing()
		return v, tea.Batch(notifyCmd(cat.Success(notify.ItemRenamed)), v.load())

	case itemDeletedMsg:
		if msg.err != nil {
			return v, notifyCmd(cat.Error(notify.ItemDeleteFailed))
		}
		return v, tea.Batch(notifyCmd(cat.Success(notify.ItemDeleted)), v.load())

	case tea.KeyMsg:
		switch v.mode {
		case itemsAdding:
			return v.updateAdding(msg)
		case itemsRenaming:
			return v.updateRenaming(msg)
		}
		return v.updateBrowse(msg)
	}

	return v, nil
}

func (v *checklistView) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		return v, navigate(Route{Name: RouteDashboard})
	case "down", "j":
		if v.cursor < len(v.items)-1 {
			v.cursor++
		}
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case " ", "x":
		if it, ok := v.selected(); ok {
			return v, v.toggle(it.ID)
		}
	case "a":
		v.mode = itemsAdding
		return v, v.add.Focus()
	case "e":
		if it, ok := v.selected(); ok {
			v.mode = itemsRenaming
			v.editingID = it.ID
			v.edit.SetValue(it.EditName())
			v.edit.CursorEnd()
			return v, v.edit.Focus()
		}
	case "d":
		if it, ok := v.selected(); ok {
			return v, v.remove(it.ID)
		}
	case "r":
		return v, v.load()
	}
	return v, nil
}

func (v *checklistView) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.add.Blur()
		v.mode = itemsBrowse
		return v, nil
	case "enter":
		if v.submitting {
			return v, nil
		}
		name := v.add.Value()
		if domain.IsBlankName(name) {
			return v, notifyCmd(v.state.catalog().Warning(notify.ItemBlankName))
		}
		v.submitting = true
		svc, ctx, id := v.state.App.Items, v.ctx, v.checklistID
		return v, func() tea.Msg {
			return itemCreatedMsg{err: svc.Create(ctx, id, name)}
		}
	}
	var cmd tea.Cmd
	v.add, cmd = v.add.Update(msg)
	return v, cmd
}

func (v *checklistView) updateRenaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.stopEditing()
		return v, nil
	case "enter":
		if v.submitting {
			return v, nil
		}
		name := v.edit.Value()
		if domain.IsBlankName(name) {
			return v, notifyCmd(v.state.catalog().Warning(notify.ItemBlankName))
		}
		v.submitting = true
		svc, ctx, cid, iid := v.state.App.Items, v.ctx, v.checklistID, v.editingID
		return v, func() tea.Msg {
			return itemRenamedMsg{err: svc.Rename(ctx, cid, iid, name)}
		}
	}
	var cmd tea.Cmd
	v.edit, cmd = v.edit.Update(msg)
	return v, cmd
}

func (v *checklistView) stopEditing() {
	v.edit.Blur()
	v.edit.Reset()
	v.editingID = ""
	v.mode = itemsBrowse
}

func (v *checklistView) toggle(itemID string) tea.Cmd {
	svc, ctx, id := v.state.App.Items, v.ctx, v.checklistID
	return func() tea.Msg {
		return itemToggledMsg{err: svc.Toggle(ctx, id, itemID)}
	}
}

func (v *checklistView) remove(itemID string) tea.Cmd {
	svc, ctx, id := v.state.App.Items, v.ctx, v.checklistID
	return func() tea.Msg {
		return itemDeletedMsg{err: svc.Delete(ctx, id, itemID)}
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *checklistView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.Header("Checklist "+v.checklistID) + "\n")

	done, pending := domain.CountItems(v.items)
	b.WriteString("  " + formatter.Counts(done, pending) + "  " +
		formatter.RenderProgress(domain.Percent(done, done+pending), 20) + "\n")

	if v.mode == itemsAdding {
		b.WriteString("  " + formatter.Bold("Add") + "  " + v.add.View() + "\n")
	}
	b.WriteString("\n")

	switch {
	case v.loading && v.items == nil:
		b.WriteString("  " + formatter.Dim("Loading items...") + "\n")
		return b.String()
	case len(v.items) == 0:
		b.WriteString("  " + formatter.Dim("No items yet. Press a to add one.") + "\n")
		return b.String()
	}

	rows := max(1, v.state.ContentHeight()-5)
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+rows {
		v.offset = v.cursor - rows + 1
	}
	end := min(v.offset+rows, len(v.items))

	for i := v.offset; i < end; i++ {
		it := v.items[i]
		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("› ")
		}
		label := formatter.ItemLabel(it)
		if v.mode == itemsRenaming && it.ID == v.editingID {
			label = v.edit.View()
		}
		fmt.Fprintf(&b, "  %s%s %s\n", marker, formatter.CheckBox(it.Completed), label)
	}
	if end < len(v.items) {
		b.WriteString("  " + formatter.Dim(fmt.Sprintf("… %d more", len(v.items)-end)) + "\n")
	}
	return b.String()
}
