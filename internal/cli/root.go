package cli

import (
	"time"

	"github.com/alexanderramin/checklist/internal/domain"
	"github.com/alexanderramin/checklist/internal/listing"
	"github.com/alexanderramin/checklist/internal/notify"
	"github.com/alexanderramin/checklist/internal/service"
	"github.com/alexanderramin/checklist/internal/session"
	"github.com/spf13/cobra"
)

// SessionReader exposes the active session to views and commands. Only the
// auth use cases change it.
type SessionReader interface {
	Current() session.Session
}

// Overrides are root flags that take precedence over the environment.
type Overrides struct {
	APIURL  string
	Locale  string
	Verbose bool
}

// App holds references to all services and presentation helpers used by
// CLI commands and the TUI.
type App struct {
	Auth       service.AuthService
	Checklists service.ChecklistService
	Items      service.ItemService
	Progress   service.ProgressService
	Session    SessionReader

	Catalog *notify.Catalog
	Sorter  *listing.Sorter

	// APIURL is the API base URL, shown by status.
	APIURL string

	// ToastTTL is how long a TUI toast stays up. Zero keeps toasts until
	// the next one replaces them.
	ToastTTL time.Duration

	// StaticCursor disables cursor blinking in text inputs.
	StaticCursor bool

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool

	// Boot wires the fields above once flags are parsed. Nil when the App
	// is already wired.
	Boot func(Overrides) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// arrange applies a search query and sort order to fetched checklists.
func (a *App) arrange(lists []domain.Checklist, query string, order listing.Order) []domain.Checklist {
	if a.Sorter == nil {
		return listing.Filter(lists, query)
	}
	return a.Sorter.View(lists, query, order)
}

// NewRootCmd creates the top-level "checklist" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var opts Overrides

	root := &cobra.Command{
		Use:           "checklist",
		Short:         "Terminal client for the checklist service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Boot == nil {
				return nil
			}
			return app.Boot(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runTUI(app, Route{Name: RouteLogin})
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.APIURL, "api-url", "", "base URL of the checklist API (overrides CHECKLIST_API_URL)")
	flags.StringVar(&opts.Locale, "locale", "", "message language: en or id (overrides CHECKLIST_LOCALE)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log API calls and use cases to stderr")

	root.AddCommand(
		newTUICmd(app),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newStatusCmd(app),
		newListCmd(app),
		newAddCmd(app),
		newRemoveCmd(app),
		newItemsCmd(app),
		newItemCmd(app),
	)

	return root
}
