package rephrase

import "errors"

// Not-found errors deliberately cover both "absent" and "owned by someone
// else" so existence never leaks across users.
var (
	ErrSessionNotFound = errors.New("Rephrase session not found")
	ErrVariantNotFound = errors.New("Rephrase variant not found")
)

// ValidationError reports an input-shape violation detected before any
// persistence access.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErr(msg string) error { return &ValidationError{Msg: msg} }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
