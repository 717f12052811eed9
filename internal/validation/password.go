package validation

import (
	"strings"
)

const (
	PasswordField      = "Password"
	PasswordAgainField = "Type Password Again"
	NewPasswordField   = "New Password"

	// MinPasswordLength applies to the password without surrounding spaces.
	MinPasswordLength = 8

	// SpecialCharacters is the ASCII punctuation set.
	SpecialCharacters = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// ValidatePassword checks presence, length and strength of a password field.
func ValidatePassword(password, label string) error {
	err := ValidateRequired(password, label)
	if err != nil {
		return err
	}

	trimmed := strings.TrimSpace(password)
	if len(trimmed) < MinPasswordLength {
		return fail(label, TooShort, label+" must contain at least 8 characters!")
	}

	return PasswordStrength(trimmed, label)
}

// PasswordStrength reports the first missing character class,
// checked in order: uppercase, lowercase, digit, special.
func PasswordStrength(password, label string) error {
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(SpecialCharacters, r):
			special = true
		}
	}

	switch {
	case !upper:
		return fail(label, MissingUppercase, label+" has no uppercase character!")
	case !lower:
		return fail(label, MissingLowercase, label+" has no lowercase character!")
	case !digit:
		return fail(label, MissingDigit, label+" has no digit character!")
	case !special:
		return fail(label, MissingSpecial, label+" has no special character")
	}

	return nil
}

// ValidatePasswordsMatch compares the password with its confirmation.
func ValidatePasswordsMatch(password, again string) error {
	if password != again {
		return fail(PasswordAgainField, Mismatch, "Password and Type Password Again must be the same!")
	}
	return nil
}
