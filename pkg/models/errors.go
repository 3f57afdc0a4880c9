package models

import (
	"errors"
	"fmt"
)

/* BadRequestError */

var ErrBadRequest = errors.New("bad request")

type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

func (*BadRequestError) Unwrap() error {
	return ErrBadRequest
}

func NewBadRequestError(message string) error {
	return &BadRequestError{Message: message}
}

/* ProviderError */

var ErrProvider = errors.New("text provider failed")

// ProviderError wraps a failure raised by an NLP capability.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() []error {
	return []error{ErrProvider, e.Err}
}

func NewProviderError(op string, err error) error {
	return &ProviderError{Op: op, Err: err}
}
