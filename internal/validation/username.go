package validation

import (
	"strings"
)

const UsernameField = "Username"

// ValidateUsername checks that the username is neither empty nor blank.
func ValidateUsername(username string) error {
	if username == "" {
		return fail(UsernameField, EmptyField, "Username field is empty!")
	}

	if strings.TrimSpace(username) == "" {
		return fail(UsernameField, BlankField, "Username field contains only ' ' !")
	}

	return nil
}

// ValidateRequired only rejects empty and blank values.
// Login uses it so that a wrong password is reported as such rather than as a weak one.
func ValidateRequired(value, label string) error {
	if value == "" {
		return fail(label, EmptyField, label+" field is empty!")
	}

	if strings.TrimSpace(value) == "" {
		return fail(label, BlankField, label+" field contains only ' '!")
	}

	return nil
}
