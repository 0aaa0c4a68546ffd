package api

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced by resource reads, tools and prompts.
type ErrorKind string

const (
	// ErrorKindNotFound means the URI matched no dispatch rule. The caller can correct it.
	ErrorKindNotFound ErrorKind = "NOT_FOUND"
	// ErrorKindInternal means the URI was recognized but the backend call failed.
	ErrorKindInternal ErrorKind = "INTERNAL"
	// ErrorKindInvalidArgument means a required argument was missing or malformed.
	ErrorKindInvalidArgument ErrorKind = "INVALID_ARGUMENT"
)

// ResourceError is the classified error returned by the resource router and the tools built on it.
type ResourceError struct {
	Kind    ErrorKind
	URI     string
	Message string
	Err     error
}

func (e *ResourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates an error for a URI that no dispatch rule recognizes.
func NewNotFoundError(uri string) *ResourceError {
	return &ResourceError{
		Kind:    ErrorKindNotFound,
		URI:     uri,
		Message: fmt.Sprintf("Resource not found: %s", uri),
	}
}

// NewInternalError wraps a backend failure for a recognized URI.
// An error that is already classified is returned unchanged.
func NewInternalError(uri, message string, err error) error {
	var re *ResourceError
	if errors.As(err, &re) {
		return err
	}
	return &ResourceError{
		Kind:    ErrorKindInternal,
		URI:     uri,
		Message: message,
		Err:     err,
	}
}

// NewInvalidArgumentError creates an error for a missing or malformed argument.
func NewInvalidArgumentError(message string) *ResourceError {
	return &ResourceError{
		Kind:    ErrorKindInvalidArgument,
		Message: message,
	}
}

// KindOf returns the kind of a classified error, or ErrorKindInternal for anything else.
func KindOf(err error) ErrorKind {
	var re *ResourceError
	if errors.As(err, &re) {
		return re.Kind
	}
	return ErrorKindInternal
}

func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == ErrorKindNotFound
}

func IsInternal(err error) bool {
	return err != nil && KindOf(err) == ErrorKindInternal
}

func IsInvalidArgument(err error) bool {
	return err != nil && KindOf(err) == ErrorKindInvalidArgument
}
