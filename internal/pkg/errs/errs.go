package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Code is a stable error category shared with API clients. Codes never change
// once published; transport status mapping is derived from them exclusively.
type Code string

const (
	CodeValidation      Code = "AE400"
	CodeUnauthenticated Code = "AE401"
	CodeForbidden       Code = "AE403"
	CodeNotFound        Code = "AE404"
	CodeGone            Code = "AE410"
	CodeCancelled       Code = "AE499"
	CodeInternal        Code = "AE500"
)

// StatusClientClosedRequest is the non-standard status reported when the
// caller aborts the request before the operation finishes.
const StatusClientClosedRequest = 499

// AllCodes returns every published code. Used to verify the status table
// stays exhaustive as codes are added.
func AllCodes() []Code {
	return []Code{
		CodeValidation,
		CodeUnauthenticated,
		CodeForbidden,
		CodeNotFound,
		CodeGone,
		CodeCancelled,
		CodeInternal,
	}
}

var codeStatuses = map[Code]int{
	CodeValidation:      http.StatusBadRequest,
	CodeUnauthenticated: http.StatusUnauthorized,
	CodeForbidden:       http.StatusForbidden,
	CodeNotFound:        http.StatusNotFound,
	CodeGone:            http.StatusGone,
	CodeCancelled:       StatusClientClosedRequest,
	CodeInternal:        http.StatusInternalServerError,
}

// HTTPStatus returns the transport status for the code.
// Codes without an explicit mapping answer with 400.
func (c Code) HTTPStatus() int {
	if status, ok := codeStatuses[c]; ok {
		return status
	}
	return http.StatusBadRequest
}

var (
	ErrValidation      = errors.New("request validation failed")
	ErrObjectNotFound  = errors.New("object not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrGone            = errors.New("gone")
)

// coded is satisfied by every error type in this package.
type coded interface {
	ErrorCode() Code
}

// CodeOf extracts the stable code from anywhere in the error chain.
// Returns false for errors outside the taxonomy (unexpected faults).
func CodeOf(err error) (Code, bool) {
	var c coded
	if errors.As(err, &c) {
		return c.ErrorCode(), true
	}
	return "", false
}

// ValidationError reports the first failing rule of a request.
// Message is client-facing; ParamName identifies the offending field.
type ValidationError struct {
	ParamName string
	Message   string
}

// NewValidationError creates a validation error for the given field.
func NewValidationError(paramName string, message string) *ValidationError {
	return &ValidationError{
		ParamName: paramName,
		Message:   message,
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func (e *ValidationError) ErrorCode() Code {
	return CodeValidation
}

// ObjectNotFoundError is raised when an entity is absent or soft-deleted.
type ObjectNotFoundError struct {
	Entity string
	Cause  error
}

// NewObjectNotFoundError creates an error naming the missing entity type.
func NewObjectNotFoundError(entity string) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		Entity: entity,
	}
}

// NewObjectNotFoundErrorWithCause creates an error naming the missing entity type
// with an underlying cause.
func NewObjectNotFoundErrorWithCause(entity string, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		Entity: entity,
		Cause:  cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s not found. (cause: %s)", e.Entity, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s not found.", e.Entity)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

func (e *ObjectNotFoundError) ErrorCode() Code {
	return CodeNotFound
}

// UnauthenticatedError is raised when the request carries no valid principal.
type UnauthenticatedError struct {
	Cause error
}

// NewUnauthenticatedError creates an unauthenticated error.
func NewUnauthenticatedError() *UnauthenticatedError {
	return &UnauthenticatedError{}
}

// NewUnauthenticatedErrorWithCause creates an unauthenticated error with an
// underlying cause. The cause never reaches the client.
func NewUnauthenticatedErrorWithCause(cause error) *UnauthenticatedError {
	return &UnauthenticatedError{Cause: cause}
}

func (e *UnauthenticatedError) Error() string {
	return "Unauthorized"
}

func (e *UnauthenticatedError) Unwrap() error {
	return ErrUnauthenticated
}

func (e *UnauthenticatedError) ErrorCode() Code {
	return CodeUnauthenticated
}

// ForbiddenError is raised when an authenticated caller lacks permission.
type ForbiddenError struct{}

// NewForbiddenError creates a forbidden error.
func NewForbiddenError() *ForbiddenError {
	return &ForbiddenError{}
}

func (e *ForbiddenError) Error() string {
	return "Forbidden"
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

func (e *ForbiddenError) ErrorCode() Code {
	return CodeForbidden
}

// GoneError is raised when an entity existed but is permanently unavailable.
type GoneError struct {
	Entity string
}

// NewGoneError creates a gone error naming the unavailable entity type.
func NewGoneError(entity string) *GoneError {
	return &GoneError{Entity: entity}
}

func (e *GoneError) Error() string {
	return fmt.Sprintf("%s is gone.", e.Entity)
}

func (e *GoneError) Unwrap() error {
	return ErrGone
}

func (e *GoneError) ErrorCode() Code {
	return CodeGone
}

// sanitize keeps cause text on a single line for log and response safety.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}
