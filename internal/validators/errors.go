package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrRequiredFieldsMissing is returned when name or email is empty.
	// Its message is surfaced verbatim in problem responses.
	ErrRequiredFieldsMissing = errors.New("Name and Email are required fields.")

	// ErrInvalidEmailFormat is returned when an email does not match the
	// local@domain.tld pattern. Its message is surfaced verbatim in problem
	// responses.
	ErrInvalidEmailFormat = errors.New("Invalid email format.")
)
