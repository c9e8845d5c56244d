package pod

import "fmt"

type TransitionError struct {
	Code    string
	Message string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewTransitionError(msg string) error {
	return &TransitionError{
		Code:    "invalidTransition",
		Message: msg,
	}
}
