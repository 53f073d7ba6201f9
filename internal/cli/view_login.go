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

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	err error
}

// loginView asks for username and password.
type loginView struct {
	ctx        context.Context
	state      *SharedState
	fields     form
	submitting bool
}

func newLoginView(ctx context.Context, state *SharedState) *loginView {
	username := state.newInput("username", 64)
	password := state.newInput("password", 128)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	return &loginView{
		ctx:    ctx,
		state:  state,
		fields: newForm([]string{"Username", "Password"}, username, password),
	}
}

func (v *loginView) ID() ViewID { return ViewLogin }
func (v *loginView) Title() string { return "Login" }
func (v *loginView) capturesInput() bool { return true }

func (v *loginView) ShortHelp() []key.Binding {
	return []key.Binding{
		binding("tab", "next field"),
		binding("enter", "log in"),
		binding("ctrl+r", "register"),
	}
}

func (v *loginView) Init() tea.Cmd {
	return v.fields.focus(0)
}

func (v *loginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		v.submitting = false
		cat := v.state.catalog()
		if msg.err != nil {
			return v, notifyCmd(cat.Error(notify.LoginFailed))
		}
		return v, tea.Batch(notifyCmd(cat.Success(notify.LoginSuccess)), navigate(Route{Name: RouteDashboard}))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+r":
			return v, navigate(Route{Name: RouteRegister})
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

func (v *loginView) submit() tea.Cmd {
	if v.submitting {
		return nil
	}
	v.submitting = true
	creds := api.Credentials{
		Username: v.fields.value(0),
		Password: v.fields.value(1),
	}
	auth, ctx := v.state.App.Auth, v.ctx
	return func() tea.Msg {
		return loginResultMsg{err: auth.Login(ctx, creds)}
	}
}

func (v *loginView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.Header("Log in") + "\n\n")
	b.WriteString(v.fields.view())
	if v.submitting {
		b.WriteString("\n  " + formatter.Dim("Logging in...") + "\n")
	}
	b.WriteString("\n  " + formatter.Dim("No account yet? Press ctrl+r to register.") + "\n")
	return b.String()
}
