package services

import "errors"

var (
	// ErrValidation marks a request that failed input or structural validation.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an operation on an identity absent from the store.
	ErrNotFound = errors.New("topic not found")

	// ErrParentNotFound is returned when a parent reference does not name a
	// current topic. It matches both ErrNotFound and ErrValidation.
	ErrParentNotFound error = &kindError{
		msg:   "parent topic does not exist",
		kinds: []error{ErrNotFound, ErrValidation},
	}
)

// kindError is an error that belongs to more than one sentinel category.
type kindError struct {
	msg   string
	kinds []error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() []error { return e.kinds }
