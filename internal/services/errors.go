package services

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned by Login whether the username is unknown
// or the password does not match. Callers must not distinguish the two.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports bad or missing user input for a specific field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
