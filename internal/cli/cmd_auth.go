package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/checklist/internal/api"
	"github.com/alexanderramin/checklist/internal/notify"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var errMissingCredentials = errors.New("missing credentials")

func newLoginCmd(app *App) *cobra.Command {
	var creds api.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if creds.Username == "" || creds.Password == "" {
				if !app.interactive() {
					return fmt.Errorf("--username and --password are required: %w", errMissingCredentials)
				}
				if err := credentialsForm(&creds).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
			}

			stop := spin(cmd, app, "Logging in...")
			err := app.Auth.Login(cmd.Context(), creds)
			stop()
			if err != nil {
				return fail(cmd, app.Catalog.Error(notify.LoginFailed), err)
			}
			announce(cmd, app.Catalog.Success(notify.LoginSuccess))
			return nil
		},
	}

	cmd.Flags().StringVarP(&creds.Username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&creds.Password, "password", "p", "", "account password")

	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var reg api.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if reg.Email == "" || reg.Username == "" || reg.Password == "" {
				if !app.interactive() {
					return fmt.Errorf("--email, --username and --password are required: %w", errMissingCredentials)
				}
				if err := registrationForm(&reg).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
			}

			stop := spin(cmd, app, "Registering...")
			err := app.Auth.Register(cmd.Context(), reg)
			stop()
			if err != nil {
				return fail(cmd, app.Catalog.Error(notify.RegisterFailed), err)
			}
			announce(cmd, app.Catalog.Success(notify.RegisterSuccess))
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.Email, "email", "", "email address")
	cmd.Flags().StringVarP(&reg.Username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&reg.Password, "password", "p", "", "account password")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(cmd.Context()); err != nil {
				return fail(cmd, app.Catalog.Error(notify.LogoutFailed), err)
			}
			announce(cmd, app.Catalog.Success(notify.LogoutSuccess))
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a session is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if app.APIURL != "" {
				fmt.Fprintf(out, "API:     %s\n", app.APIURL)
			}
			if app.Session.Current().Active() {
				fmt.Fprintln(out, "Session: logged in")
			} else {
				fmt.Fprintln(out, "Session: logged out")
			}
			return nil
		},
	}
}
