package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [route]",
		Short: "Start the full-screen interface",
		Long: `Start the full-screen interface, optionally at a route:
  /login, /register, /dashboard or /checklist/<id>.
Routes that need a session fall back to /login when nobody is logged in.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("tui needs an interactive terminal")
			}
			start := Route{Name: RouteLogin}
			if len(args) == 1 {
				start = ParseRoute(args[0])
			}
			return runTUI(app, start)
		},
	}
}
