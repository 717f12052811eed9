package service

import (
	"fmt"
	"time"
)

func tokenEmailTemplate(username, token string, expiry time.Duration, appName string) (string, string) {
	subject := fmt.Sprintf("%s Reset Password", appName)
	body := fmt.Sprintf(`Greetings from %s!

To reset your password for username %s use this token:

%s

This token expires in %d minutes. If you didn't request this, you can safely ignore this email.

Wish you all the best!`, appName, username, token, int(expiry.Minutes()))

	return subject, body
}

func bookingConfirmationTemplate(room, date, interval, appName string) (string, string) {
	subject := fmt.Sprintf("%s Booking Confirmation", appName)
	body := fmt.Sprintf(`Greetings from %s!

You have a schedule for %s on %s at %s.

Wish you all the best!`, appName, room, date, interval)

	return subject, body
}
