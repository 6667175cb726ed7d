package validators

import (
	"context"
	"regexp"

	"github.com/MKhiriev/go-user-registry/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldRequired targets the presence check for both name and email.
	FieldRequired = "required"

	// FieldEmail targets the email format check.
	FieldEmail = "email"
)

// emailPattern accepts one or more word/dot/hyphen characters, an "@", one
// or more groups of word/hyphen characters followed by a literal dot, and a
// 2-4 character top-level segment.
var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+\w{2,4}$`)

// UserValidator implements the Validator interface for the User model.
// Both rules are pure: they never mutate their input.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation based on the dynamic type of obj. Both
// value and pointer forms of models.User are accepted.
//
// Returns ErrUnsupportedType if obj is not a user.
// Optional fields restrict validation to the named subset; when omitted,
// both the required-fields and email-format rules run.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUser runs the requested rules against user, in the order the
// fields were given, returning the first failure.
func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if user.Name == "" || user.Email == "" {
				return ErrRequiredFieldsMissing
			}
		case FieldEmail:
			if !emailPattern.MatchString(user.Email) {
				return ErrInvalidEmailFormat
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
