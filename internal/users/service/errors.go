package service

import "errors"

var (
	// ErrEmailTaken is returned when a create or register hits an email that
	// already belongs to a user.
	ErrEmailTaken = errors.New("email already registered")

	// ErrEmailTakenByOther is the update-path variant: the email belongs to a
	// different user than the one being updated.
	ErrEmailTakenByOther = errors.New("email already registered by another user")

	// ErrInvalidCredentials covers both unknown email and wrong password so a
	// login response never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserInactive is returned on login for a deactivated account.
	ErrUserInactive = errors.New("user account is inactive")

	// ErrUserNotFoundOrInactive is returned on refresh when the token subject
	// no longer resolves to an active user.
	ErrUserNotFoundOrInactive = errors.New("user not found or inactive")
)

// ValidationError is an input validation failure; handlers map it to a 400
// with the message as the error string.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// IsValidationError reports whether err is a validation failure.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
