package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across layers.
var (
	ErrNoLogs      = errors.New("no logs loaded")
	ErrUnknownDate = errors.New("no log for date")
)

// ValidationError carries the structured {"detail": ...} body the
// backend returns for a rejected entry (e.g. an unknown food). The UI
// surfaces Detail inline next to the food-name field; every other
// failure is generic.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("entry rejected: %s", e.Detail)
}

// AsValidation unwraps err into a *ValidationError, or returns nil.
func AsValidation(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
