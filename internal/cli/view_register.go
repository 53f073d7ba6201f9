package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/checklist/internal/api"
	"github.com/alexanderramin/checklist/internal/cli/formatter"
	"github.com/alexanderramin/checklist/internal/notify"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type registerResultMsg struct {
	err error
}

// registerView creates an account. It never logs the user in; a
// successful registration goes back to the login form.
type registerView struct {
	ctx        context.Context
	state      *SharedState
	fields     form
	submitting bool
}

func newRegisterView(ctx context.Context, state *SharedState) *registerView {
	email := state.newInput("you@example.com", 128)
	username := state.newInput("username", 64)
	password := state.newInput("password", 128)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	return &registerView{
		ctx:    ctx,
		state:  state,
		fields: newForm([]string{"Email", "Username", "Password"}, email, username, password),
	}
}

func (v *registerView) ID() ViewID { return ViewRegister }
func (v *registerView) Title() string { return "Register" }
func (v *registerView) capturesInput() bool { return true }

func (v *registerView) ShortHelp() []key.Binding {
	return []key.Binding{
		binding("tab", "next field"),
		binding("enter", "register"),
		binding("esc", "back to login"),
	}
}

func (v *registerView) Init() tea.Cmd {
	return v.fields.focus(0)
}

func (v *registerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		v.submitting = false
		cat := v.state.catalog()
		if msg.err != nil {
			return v, notifyCmd(cat.Error(notify.RegisterFailed))
		}
		return v, tea.Batch(notifyCmd(cat.Success(notify.RegisterSuccess)), navigate(Route{Name: RouteLogin}))

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, navigate(Route{Name: RouteLogin})
		case "enter":
			if v.fields.onLast() {
				return v, v.submit()
			}
			return v, v.fields.next()
		case "tab", "down":
			return v, v.fields.next()
		case "shift+tab", "up":
			return v, v.fields.prev()
		}
	}
	return v, v.fields.update(msg)
}

func (v *registerView) submit() tea.Cmd {
	if v.submitting {
		return nil
	}
	v.submitting = true
	reg := api.Registration{
		Email:    v.fields.value(0),
		Username: v.fields.value(1),
		Password: v.fields.value(2),
	}
	auth, ctx := v.state.App.Auth, v.ctx
	return func() tea.Msg {
		return registerResultMsg{err: auth.Register(ctx, reg)}
	}
}

func (v *registerView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.Header("Create an account") + "\n\n")
	b.WriteString(v.fields.view())
	if v.submitting {
		b.WriteString("\n  " + formatter.Dim("Registering...") + "\n")
	}
	return b.String()
}
