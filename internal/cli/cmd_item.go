package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/checklist/internal/cli/formatter"
	"github.com/alexanderramin/checklist/internal/domain"
	"github.com/alexanderramin/checklist/internal/notify"
	"github.com/alexanderramin/checklist/internal/service"
	"github.com/spf13/cobra"
)

func newItemsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "items <checklist-id>",
		Short: "Show the items of a checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			stop := spin(cmd, app, "Loading items...")
			items, err := app.Items.List(cmd.Context(), args[0])
			stop()
			if err != nil {
				return fail(cmd, app.Catalog.Error(notify.ItemLoadFailed), err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItems(args[0], items))
			return nil
		},
	}
}

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Change the items of a checklist",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemToggleCmd(app),
		newItemRenameCmd(app),
		newItemRemoveCmd(app),
	)

	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <checklist-id> <name...>",
		Short: "Add an item to a checklist",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}
			name := strings.Join(args[1:], " ")
			if domain.IsBlankName(name) {
				return fail(cmd, app.Catalog.Warning(notify.ItemBlankName), service.ErrBlankName)
			}

			stop := spin(cmd, app, "Adding item...")
			err := app.Items.Create(cmd.Context(), args[0], name)
			stop()
			if err != nil {
				return fail(cmd, app.Catalog.Error(notify.ItemCreateFailed), err)
			}
			announce(cmd, app.Catalog.Success(notify.ItemCreated))
			return nil
		},
	}
}

func newItemToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <checklist-id> <item-id>",
		Short: "Flip an item between done and not done",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			ctx := cmd.Context()
			stop := spin(cmd, app, "Updating item...")
			err := app.Items.Toggle(ctx, args[0], args[1])
			if err != nil {
				stop()
				return fail(cmd, app.Catalog.Error(notify.ItemToggleFailed), err)
			}
			items, err := app.Items.List(ctx, args[0])
			stop()
			if err != nil {
				return fail(cmd, app.Catalog.Error(notify.ItemLoadFailed), err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItems(args[0], items))
			return nil
		},
	}
}

func newItemRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <checklist-id> <item-id> <name...>",
		Short: "Rename an item",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}
			name := strings.Join(args[2:], " ")
			if domain.IsBlankName(name) {
				return fail(cmd, app.Catalog.Warning(notify.ItemBlankName), service.ErrBlankName)
			}

			stop := spin(cmd, app, "Renaming item...")
			err := app.Items.Rename(cmd.Context(), args[0], args[1], name)
			stop()
			if err != nil {
				return fail(cmd, app.Catalog.Error(notify.ItemRenameFailed), err)
			}
			announce(cmd, app.Catalog.Success(notify.ItemRenamed))
			return nil
		},
	}
}

func newItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <checklist-id> <item-id>",
		Aliases: []string{"remove"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			stop := spin(cmd, app, "Deleting item...")
			err := app.Items.Delete(cmd.Context(), args[0], args[1])
			stop()
			if err != nil {
				return fail(cmd, app.Catalog.Error(notify.ItemDeleteFailed), err)
			}
			announce(cmd, app.Catalog.Success(notify.ItemDeleted))
			return nil
		},
	}
}
