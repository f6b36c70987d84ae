package models

import (
	"errors"
	"fmt"
)

// ValidationError reports an invalid argument. It is returned before any
// mutation or persistence attempt.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// NotFoundError reports an operation that referenced a product ID absent
// from the target collection.
type NotFoundError struct {
	Resource  string
	ProductID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: product %d not found", e.Resource, e.ProductID)
}

// StorageError reports a rejected key-value store read or write. The
// in-memory collection has not been mutated when one is returned.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// FetchError reports a failed or malformed product catalog fetch.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}
