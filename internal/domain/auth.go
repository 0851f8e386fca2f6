package domain

import "errors"

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token is expired")
)

// Fields a login failure can be reported under. The login identifier is
// reported as "email" on the wire regardless of the request field name.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// CredentialsError is a login failure attributed to a single input field.
type CredentialsError struct {
	Field   string
	Message string
}

func (e *CredentialsError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	ErrMalformedCredentials = &CredentialsError{Field: FieldEmail, Message: "invalid credentials"}
	ErrLoginRequired        = &CredentialsError{Field: FieldEmail, Message: "must enter an email"}
	ErrPasswordRequired     = &CredentialsError{Field: FieldPassword, Message: "must enter a password"}
	ErrUnknownLogin         = &CredentialsError{Field: FieldEmail, Message: "incorrect email"}
	ErrWrongPassword        = &CredentialsError{Field: FieldPassword, Message: "incorrect password"}
)

// ValidationErrors maps a field name to the messages accumulated against it.
// Login short-circuits on the first failure, so in practice one field holds
// one message, but the container keeps the list shape on the wire.
type ValidationErrors map[string][]string

func (v ValidationErrors) Add(field, message string) ValidationErrors {
	v[field] = append(v[field], message)
	return v
}
