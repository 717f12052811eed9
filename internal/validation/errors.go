package validation

// Kind identifies which rule a field failed.
type Kind string

const (
	EmptyField       Kind = "empty_field"
	BlankField       Kind = "blank_field"
	TooShort         Kind = "too_short"
	MissingUppercase Kind = "missing_uppercase"
	MissingLowercase Kind = "missing_lowercase"
	MissingDigit     Kind = "missing_digit"
	MissingSpecial   Kind = "missing_special"
	MissingAt        Kind = "missing_at"
	MultipleAt       Kind = "multiple_at"
	MissingLocalPart Kind = "missing_local_part"
	MissingDomain    Kind = "missing_domain"
	DomainTooShort   Kind = "domain_too_short"
	DomainMissingDot Kind = "domain_missing_dot"
	EmptySubdomain   Kind = "empty_subdomain"
	TopLevelTooShort Kind = "top_level_too_short"
	Mismatch         Kind = "mismatch"
	InvalidDate      Kind = "invalid_date"
)

// FieldError is a failed field check with the message shown to the user.
type FieldError struct {
	Field   string
	Kind    Kind
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func fail(field string, kind Kind, message string) *FieldError {
	return &FieldError{Field: field, Kind: kind, Message: message}
}
