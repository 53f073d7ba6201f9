package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/checklist/internal/cli/formatter"
	"github.com/alexanderramin/checklist/internal/notify"
	"github.com/alexanderramin/checklist/internal/session"
	"github.com/spf13/cobra"
)

// announce prints a notification line to stderr.
func announce(cmd *cobra.Command, n notify.Notification) {
	fmt.Fprintln(cmd.ErrOrStderr(), formatter.RenderNotice(n))
}

// fail prints n and returns it as the command error, wrapping cause when
// there is one.
func fail(cmd *cobra.Command, n notify.Notification, cause error) error {
	announce(cmd, n)
	if cause == nil {
		return errors.New(n.Text)
	}
	return fmt.Errorf("%s: %w", n.Text, cause)
}

// requireSession stops an authenticated command before it issues any
// request when nobody is logged in.
func requireSession(cmd *cobra.Command, app *App) error {
	if app.Session.Current().Active() {
		return nil
	}
	return fail(cmd, app.Catalog.Error(notify.SessionRequired), session.ErrNoSession)
}

// spin shows a spinner on stderr while a request runs on a terminal.
func spin(cmd *cobra.Command, app *App, msg string) func() {
	return formatter.StartSpinner(cmd.ErrOrStderr(), msg, app.interactive())
}
