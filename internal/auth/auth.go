package auth

import (
	"errors"

	"github.com/Skyhigh44/Productivity/internal/model"

	"github.com/go-playground/validator/v10"
)

const (
	MsgPINFormat      = "PIN must be exactly 4 digits"
	MsgUsernameLength = "Username must be at least 3 characters"
)

// ValidationError is a form-level failure shown inline next to the sign-in form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// credentials field order is the check order: the PIN is reported before the username.
type credentials struct {
	PIN      string `validate:"len=4,number"`
	Username string `validate:"min=3"`
}

var validate = validator.New()

var fieldMessages = map[string]*ValidationError{
	"PIN":      {Field: "pin", Message: MsgPINFormat},
	"Username": {Field: "username", Message: MsgUsernameLength},
}

// Validate checks the sign-in form. Only the format is checked; the PIN value
// is never compared against anything.
func Validate(username, pin string) error {
	err := validate.Struct(credentials{PIN: pin, Username: username})
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	if ve, ok := fieldMessages[fieldErrs[0].StructField()]; ok {
		return &ValidationError{Field: ve.Field, Message: ve.Message}
	}
	return err
}

// SignIn performs the only session transition (signed out -> signed in).
// The username is carried verbatim; the PIN is dropped after validation.
func SignIn(s model.Session, username, pin string) (model.Session, error) {
	if s.Authenticated {
		return s, nil
	}
	if err := Validate(username, pin); err != nil {
		return s, err
	}
	return model.Session{Authenticated: true, Username: username}, nil
}
