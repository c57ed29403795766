package entities

import "errors"

var (
	// ErrUnknownCollection is returned for any collection outside the store registry.
	ErrUnknownCollection = errors.New("unknown collection")
	// ErrPersistence wraps a failure to write the store document.
	ErrPersistence = errors.New("persistence failure")
	// ErrReadOnly is returned by mutations attempted inside a read-only view.
	ErrReadOnly = errors.New("read-only view")
)
