package errors

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorType string

func (s ErrorType) String() string {
	return strings.ToLower(string(s))
}

const (
	ErrInternalError   ErrorType = "Internal Error"
	ErrInvalidArgument ErrorType = "Invalid Argument"
	ErrTransport       ErrorType = "Transport Error"
	ErrDecode          ErrorType = "Decode Error"
	ErrStore           ErrorType = "Store Error"
	ErrInvalidInput    ErrorType = "Invalid Input"
)

type DomainError struct {
	ErrorType  ErrorType
	Entity     string
	Message    string
	WrappedErr error
}

func InternalError(entity, msg string, err error) *DomainError {
	return &DomainError{
		ErrorType:  ErrInternalError,
		Entity:     entity,
		Message:    msg,
		WrappedErr: err,
	}
}

func InvalidArgument(entity, msg string) *DomainError {
	return &DomainError{
		ErrorType: ErrInvalidArgument,
		Entity:    entity,
		Message:   msg,
	}
}

// Transport is raised when an API call could not complete with status 200
func Transport(entity, msg string, err error) *DomainError {
	return &DomainError{
		ErrorType:  ErrTransport,
		Entity:     entity,
		Message:    msg,
		WrappedErr: err,
	}
}

// Decode is raised when a successful response carries a body that cannot be decoded
func Decode(entity, msg string, err error) *DomainError {
	return &DomainError{
		ErrorType:  ErrDecode,
		Entity:     entity,
		Message:    msg,
		WrappedErr: err,
	}
}

// Store is raised when the persistence backend fails
func Store(entity, msg string, err error) *DomainError {
	return &DomainError{
		ErrorType:  ErrStore,
		Entity:     entity,
		Message:    msg,
		WrappedErr: err,
	}
}

// InvalidInput is raised when the operator answers something unexpected
func InvalidInput(entity, msg string) *DomainError {
	return &DomainError{
		ErrorType: ErrInvalidInput,
		Entity:    entity,
		Message:   msg,
	}
}

func (e *DomainError) Error() string {
	if e.WrappedErr != nil {
		return fmt.Sprintf("%v for entity %v: %v: %v",
			e.ErrorType.String(), e.Entity, e.Message, e.WrappedErr.Error())
	}
	return fmt.Sprintf("%v for entity %v: %v",
		e.ErrorType.String(), e.Entity, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.WrappedErr
}

// IsErrorType reports whether any DomainError in the chain has the given type
func IsErrorType(err error, errType ErrorType) bool {
	var de *DomainError
	for err != nil {
		if !errors.As(err, &de) {
			return false
		}
		if de.ErrorType == errType {
			return true
		}
		err = de.WrappedErr
	}
	return false
}
