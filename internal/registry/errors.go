package registry

import "errors"

var (
	// ErrMissingFields signals a required field was empty.
	ErrMissingFields = errors.New("registry: required fields missing")
	// ErrPasswordMismatch signals password and confirmation differ.
	ErrPasswordMismatch = errors.New("registry: passwords do not match")
	// ErrPasswordTooShort signals the password is under the policy floor.
	ErrPasswordTooShort = errors.New("registry: password too short")
	// ErrInvalidEmail signals a malformed email address.
	ErrInvalidEmail = errors.New("registry: invalid email address")
	// ErrInvalidPhone signals a phone number that is not ten digits.
	ErrInvalidPhone = errors.New("registry: invalid phone number")
	// ErrDuplicatePhone signals the phone is already registered in the role's collection.
	ErrDuplicatePhone = errors.New("registry: phone already registered")
	// ErrDuplicateEmail signals the email is already registered in the role's collection.
	ErrDuplicateEmail = errors.New("registry: email already registered")
	// ErrInvalidCredentials signals a failed sign-in. It deliberately does
	// not distinguish an unknown identifier from a wrong password.
	ErrInvalidCredentials = errors.New("registry: invalid credentials")
	// ErrNotFound signals a session that no longer resolves to a record.
	ErrNotFound = errors.New("registry: record not found")
)
