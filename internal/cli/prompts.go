package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/checklist/internal/api"
	"github.com/alexanderramin/checklist/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// checklistHuhTheme returns a huh theme using the Gruvbox palette.
func checklistHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// requiredText rejects blank input for the field called title.
func requiredText(title string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", strings.ToLower(title))
		}
		return nil
	}
}

func textInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(requiredText(title))
}

func passwordInput(value *string) *huh.Input {
	return textInput("Password", "", value).EchoMode(huh.EchoModePassword)
}

// credentialsForm asks for whichever login fields are still empty.
func credentialsForm(creds *api.Credentials) *huh.Form {
	var fields []huh.Field
	if creds.Username == "" {
		fields = append(fields, textInput("Username", "username", &creds.Username))
	}
	if creds.Password == "" {
		fields = append(fields, passwordInput(&creds.Password))
	}
	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(checklistHuhTheme()).
		WithShowHelp(false)
}

// registrationForm asks for whichever registration fields are still empty.
func registrationForm(reg *api.Registration) *huh.Form {
	var fields []huh.Field
	if reg.Email == "" {
		fields = append(fields, textInput("Email", "you@example.com", &reg.Email))
	}
	if reg.Username == "" {
		fields = append(fields, textInput("Username", "username", &reg.Username))
	}
	if reg.Password == "" {
		fields = append(fields, passwordInput(&reg.Password))
	}
	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(checklistHuhTheme()).
		WithShowHelp(false)
}
