package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/checklist/internal/cli/formatter"
	"github.com/alexanderramin/checklist/internal/domain"
	"github.com/alexanderramin/checklist/internal/listing"
	"github.com/alexanderramin/checklist/internal/notify"
	"github.com/alexanderramin/checklist/internal/service"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var search string
	order := listing.Ascending

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List checklists with their progress",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			stop := spin(cmd, app, "Loading checklists...")
			ov, err := app.Checklists.Overview(cmd.Context())
			stop()
			if err != nil {
				return fail(cmd, app.Catalog.Error(notify.ChecklistLoadFailed), err)
			}

			lists := app.arrange(ov.Checklists, search, order)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChecklists(lists, ov.Progress))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "only show checklists whose name contains this text")
	cmd.Flags().Var(&order, "sort", "sort by name: asc or desc")

	return cmd
}

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name...>",
		Short: "Create a checklist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}
			name := strings.Join(args, " ")
			if domain.IsBlankName(name) {
				return fail(cmd, app.Catalog.Warning(notify.ChecklistBlankName), service.ErrBlankName)
			}

			stop := spin(cmd, app, "Creating checklist...")
			err := app.Checklists.Create(cmd.Context(), name)
			stop()
			if err != nil {
				return fail(cmd, app.Catalog.Error(notify.ChecklistCreateFailed), err)
			}
			announce(cmd, app.Catalog.Success(notify.ChecklistCreated))
			return nil
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <checklist-id>",
		Aliases: []string{"remove"},
		Short:   "Delete a checklist",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			stop := spin(cmd, app, "Deleting checklist...")
			err := app.Checklists.Delete(cmd.Context(), args[0])
			stop()
			if err != nil {
				return fail(cmd, app.Catalog.Error(notify.ChecklistDeleteFailed), err)
			}
			announce(cmd, app.Catalog.Success(notify.ChecklistDeleted))
			return nil
		},
	}
}
