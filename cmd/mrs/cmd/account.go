package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/ui"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/validation"
)

func RegisterCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: action(func(cmd *cobra.Command, args []string) error {
			p := env.prompt

			username, err := p.Text(validation.UsernameField)
			if err != nil {
				return err
			}
			email, err := p.Text(validation.EmailField)
			if err != nil {
				return err
			}
			password, err := p.Password(validation.PasswordField)
			if err != nil {
				return err
			}
			again, err := p.Password(validation.PasswordAgainField)
			if err != nil {
				return err
			}

			user, err := env.App.AuthService.Register(cmd.Context(), username, email, password, again)
			if err != nil {
				return err
			}

			p.Show(ui.Info("Account created", fmt.Sprintf("Account %s was created! You can log in now.", user.Username)))
			return nil
		}),
	}
}

func LoginCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session for the next commands",
		Args:  cobra.NoArgs,
		RunE: action(func(cmd *cobra.Command, args []string) error {
			p := env.prompt

			username, err := p.Text(validation.UsernameField)
			if err != nil {
				return err
			}
			password, err := p.Password(validation.PasswordField)
			if err != nil {
				return err
			}

			user, err := env.App.AuthService.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			err = env.App.SignIn(cmd.Context(), user)
			if err != nil {
				return err
			}

			p.Show(ui.Info("Welcome", fmt.Sprintf("Welcome %s!", user.Username)))
			return nil
		}),
	}
}

func LogoutCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: action(func(cmd *cobra.Command, args []string) error {
			err := env.App.SignOut(cmd.Context())
			if err != nil {
				return err
			}
			env.prompt.Show(ui.Info("Logout", "You are logged out."))
			return nil
		}),
	}
}

func WhoamiCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: action(func(cmd *cobra.Command, args []string) error {
			err := env.requireUser()
			if err != nil {
				return err
			}
			user := env.App.State.User
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.Username, user.Email)
			return nil
		}),
	}
}
