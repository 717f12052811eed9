// Package ui turns core results into notices for the presentation layer.
package ui

import (
	"errors"
	"fmt"

	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/service"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/validation"
)

type Kind int

const (
	KindError Kind = iota
	KindInfo
	KindConfirm
	KindTokenExists
	KindPasswordUpdated
	KindTokenExpired
	KindEmailFailed
)

const (
	ButtonOK     = "OK"
	ButtonCancel = "CANCEL"
)

// Notice is one dialog: what to show and what happens on confirmation.
type Notice struct {
	Kind      Kind
	Title     string
	Message   string
	Buttons   []string
	OnConfirm func() error
}

// Confirm runs the confirmation action, if any.
func (n Notice) Confirm() error {
	if n.OnConfirm == nil {
		return nil
	}
	return n.OnConfirm()
}

func (n Notice) String() string {
	return fmt.Sprintf("%s: %s", n.Title, n.Message)
}

func Info(title, message string) Notice {
	return Notice{Kind: KindInfo, Title: title, Message: message, Buttons: []string{ButtonOK}}
}

func Confirm(title, message string, onConfirm func() error) Notice {
	return Notice{
		Kind:      KindConfirm,
		Title:     title,
		Message:   message,
		Buttons:   []string{ButtonOK, ButtonCancel},
		OnConfirm: onConfirm,
	}
}

func errorNotice(title, message string) Notice {
	return Notice{Kind: KindError, Title: title, Message: message, Buttons: []string{ButtonOK}}
}

// TokenExists tells the user to check their email and continues to verification on confirm.
func TokenExists(onConfirm func() error) Notice {
	return Notice{
		Kind:      KindTokenExists,
		Title:     "Token already exists",
		Message:   "A valid token was already generated for this account!\nCheck email address and validate token on next window!",
		Buttons:   []string{ButtonOK},
		OnConfirm: onConfirm,
	}
}

func PasswordUpdated(username string) Notice {
	return Notice{
		Kind:    KindPasswordUpdated,
		Title:   "Password Updated Successfully",
		Message: fmt.Sprintf("Password for username %s was updated!\nLogin Again with new password.", username),
		Buttons: []string{ButtonOK},
	}
}

func TokenExpired(username string) Notice {
	return Notice{
		Kind:    KindTokenExpired,
		Title:   "Token Expired During Reset Process",
		Message: fmt.Sprintf("During reset password process for %s\nassociated token expired! Try again!", username),
		Buttons: []string{ButtonOK},
	}
}

// BookingEmailFailed reports a confirmation email that could not be sent for a stored booking.
func BookingEmailFailed() Notice {
	return Notice{
		Kind:    KindEmailFailed,
		Title:   "Email Send Error",
		Message: "An error occurred during send email process!\nYour schedule is registered and valid.",
		Buttons: []string{ButtonOK},
	}
}

// TokenEmailFailed reports a reset token that was stored but not delivered.
func TokenEmailFailed() Notice {
	return Notice{
		Kind:    KindEmailFailed,
		Title:   "Email Send Error",
		Message: "An error occurred during send email process!\nThe token was generated, request a new one once it expires.",
		Buttons: []string{ButtonOK},
	}
}

func ConfirmBooking(room, date, interval, email string, onConfirm func() error) Notice {
	message := fmt.Sprintf("You are going to schedule %s for date %s\non %s!\nPress OK to continue (check %s)\nor\nCANCEL to return.",
		room, date, interval, email)
	return Confirm("Schedule room", message, onConfirm)
}

// FromError maps a core error to the notice shown to the user.
func FromError(err error) Notice {
	var fe *validation.FieldError
	if errors.As(err, &fe) {
		if fe.Kind == validation.Mismatch {
			return errorNotice("Different password", fe.Message)
		}
		return errorNotice("Login Error", fe.Message)
	}

	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		return errorNotice("Login Error", "Username already exists!")
	case errors.Is(err, service.ErrEmailTaken):
		return errorNotice("Login Error", "An account with this email address already exists!")
	case errors.Is(err, service.ErrUsernameNotFound):
		return errorNotice("Login Error", "Username doesn't exist!")
	case errors.Is(err, service.ErrEmailNotFound):
		return errorNotice("Login Error", "An account with this email address doesn't exist!")
	case errors.Is(err, service.ErrIncorrectPassword):
		return errorNotice("Login Error", "Incorrect password! Try again!")
	case errors.Is(err, service.ErrNotSignedIn), errors.Is(err, service.ErrInvalidSession):
		return errorNotice("Login Error", "Please log in first!")
	case errors.Is(err, service.ErrTokenActive):
		return TokenExists(nil)
	case errors.Is(err, service.ErrTokenMismatch):
		return errorNotice("Different Tokens", "You entered a wrong token!")
	case errors.Is(err, service.ErrTokenExpired):
		return Notice{
			Kind:    KindTokenExpired,
			Title:   "Token Expired During Reset Process",
			Message: "The token expired! Try again!",
			Buttons: []string{ButtonOK},
		}
	case errors.Is(err, service.ErrDeliveryFailed):
		return Notice{
			Kind:    KindEmailFailed,
			Title:   "Email Send Error",
			Message: "An error occurred during send email process!",
			Buttons: []string{ButtonOK},
		}
	case errors.Is(err, service.ErrDateInPast), errors.Is(err, service.ErrSlotPassed):
		return errorNotice("Time passed", "The selected interval is in the past!")
	case errors.Is(err, service.ErrSlotTaken):
		return errorNotice("Schedule room", "The selected interval is already booked!")
	case errors.Is(err, service.ErrRoomNotFound):
		return errorNotice("Schedule room", "Room doesn't exist!")
	case errors.Is(err, service.ErrPicturesMissing):
		return errorNotice("Room pictures", "Pictures for this room are not available!")
	case errors.Is(err, service.ErrUnknownInterval):
		return errorNotice("Schedule room", "Interval doesn't exist!")
	case errors.Is(err, service.ErrIntegrityViolation):
		return errorNotice("Error", "The request conflicted with another one. Please try again.")
	}

	return errorNotice("Error", "Something went wrong. Please try again.")
}
