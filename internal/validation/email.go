package validation

import (
	"strings"
)

const EmailField = "Email address"

// ValidateEmail checks the address syntax step by step and reports the first failure.
// All checks after the blank check run on the trimmed address.
func ValidateEmail(email string) error {
	if email == "" {
		return fail(EmailField, EmptyField, "Email address field is empty!")
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return fail(EmailField, BlankField, "Email address field contains only ' '!")
	}

	switch strings.Count(email, "@") {
	case 0:
		return fail(EmailField, MissingAt, "Email address must contain '@'!")
	case 1:
	default:
		return fail(EmailField, MultipleAt, "Email address must contain only one '@' char!")
	}

	at := strings.Index(email, "@")
	if at == len(email)-1 {
		return fail(EmailField, MissingDomain, "Enter a domain [username]@[domain]!")
	}
	if at == 0 {
		return fail(EmailField, MissingLocalPart, "Enter an username [username]@[domain]!")
	}

	domain := email[at+1:]
	if len(domain) < 3 {
		return fail(EmailField, DomainTooShort, "Domain length must be at least 3 chars [username]@[domain]!")
	}

	if !strings.Contains(domain, ".") {
		return fail(EmailField, DomainMissingDot, "Domain must contain '.' [username]@[domain]!")
	}

	subdomain, _, _ := strings.Cut(domain, ".")
	if subdomain == "" {
		return fail(EmailField, EmptySubdomain, "Subdomain must have at least 1 char! Email: [username]@[domain] domain:[subdomain].[top-level domain]")
	}

	topLevel := domain[strings.LastIndex(domain, ".")+1:]
	if len(topLevel) < 2 {
		return fail(EmailField, TopLevelTooShort, "Top level domain must have at least 2 chars [username]@[domain]!")
	}

	return nil
}
