package model

import "errors"

var ErrEventNotFound = errors.New("event not found")

// ValidationError rejects a request field before anything reaches the store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
