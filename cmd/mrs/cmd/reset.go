package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/service"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/ui"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/validation"
)

func ForgotPasswordCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "forgot-password",
		Short: "Reset a password with a token sent by email",
		Args:  cobra.NoArgs,
		RunE: action(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := env.prompt
			state := env.App.State
			defer state.ResetDone()

			email, err := p.Text(validation.EmailField)
			if err != nil {
				return err
			}

			ticket, err := env.App.PasswordResetService.RequestReset(ctx, email)
			switch {
			case errors.Is(err, service.ErrTokenActive):
				ok, err := p.Ask(ui.TokenExists(func() error {
					// The token may have run out while the notice was open.
					tokenState, err := env.App.PasswordResetService.State(ctx, ticket.Username, ticket.Email)
					if err != nil {
						return err
					}
					if tokenState != model.TokenStateActive {
						return failWith(service.ErrTokenExpired, ui.TokenExpired(ticket.Username))
					}
					p.Show(ui.Info("Token active", fmt.Sprintf("The token sent to %s is valid until %s.",
						ticket.Email, ticket.ExpiresAt.Local().Format("15:04:05"))))
					return nil
				}))
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			case err != nil:
				return err
			case ticket.DeliveryErr != nil:
				p.Show(ui.TokenEmailFailed())
			default:
				p.Show(ui.Info("Token sent", fmt.Sprintf("A token was sent to %s. It is valid until %s.",
					ticket.Email, ticket.ExpiresAt.Local().Format("15:04:05"))))
			}
			state.Ticket = ticket

			for state.Verified == nil {
				value, err := p.Text("Token")
				if err != nil {
					return err
				}

				verified, err := env.App.PasswordResetService.Verify(ctx, ticket, value)
				if errors.Is(err, service.ErrTokenMismatch) {
					p.Show(ui.FromError(err))
					continue
				}
				if errors.Is(err, service.ErrTokenExpired) {
					return failWith(err, ui.TokenExpired(ticket.Username))
				}
				if err != nil {
					return err
				}
				state.Verified = verified
			}

			for {
				password, err := p.Password(validation.NewPasswordField)
				if err != nil {
					return err
				}
				again, err := p.Password(validation.PasswordAgainField)
				if err != nil {
					return err
				}

				err = env.App.PasswordResetService.CompleteReset(ctx, state.Verified, password, again)
				var fe *validation.FieldError
				if errors.As(err, &fe) {
					p.Show(ui.FromError(err))
					continue
				}
				if errors.Is(err, service.ErrTokenExpired) {
					return failWith(err, ui.TokenExpired(ticket.Username))
				}
				if err != nil {
					return err
				}
				break
			}

			p.Show(ui.PasswordUpdated(ticket.Username))
			return nil
		}),
	}
}
