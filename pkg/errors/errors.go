package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrPermission     ErrorCode = "PERMISSION"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Input document errors
	ErrManifest ErrorCode = "MANIFEST"
	ErrPom      ErrorCode = "POM"

	// Artifact errors
	ErrMissingVersion ErrorCode = "MISSING_VERSION"
	ErrResolve        ErrorCode = "RESOLVE"
	ErrFilter         ErrorCode = "FILTER"

	// Materialization errors
	ErrNotYetProduced ErrorCode = "NOT_YET_PRODUCED"
	ErrMaterialize    ErrorCode = "MATERIALIZE"
	ErrCrossDevice    ErrorCode = "CROSS_DEVICE"
	ErrDirCreate      ErrorCode = "DIR_CREATE"
)

// ArtlinkError represents a structured error with code and details
type ArtlinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ArtlinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ArtlinkError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ArtlinkError) Is(target error) bool {
	var targetErr *ArtlinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ArtlinkError with the given code and message
func New(code ErrorCode, message string) *ArtlinkError {
	return &ArtlinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ArtlinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ArtlinkError {
	return &ArtlinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an ArtlinkError
func Wrap(err error, code ErrorCode, message string) *ArtlinkError {
	if err == nil {
		return nil
	}
	return &ArtlinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ArtlinkError {
	if err == nil {
		return nil
	}
	return &ArtlinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ArtlinkError) WithDetail(key string, value interface{}) *ArtlinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ArtlinkError) WithDetails(details map[string]interface{}) *ArtlinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var artErr *ArtlinkError
	if errors.As(err, &artErr) {
		return artErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an ArtlinkError
func GetErrorCode(err error) ErrorCode {
	var artErr *ArtlinkError
	if errors.As(err, &artErr) {
		return artErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an ArtlinkError
func GetErrorDetails(err error) map[string]interface{} {
	var artErr *ArtlinkError
	if errors.As(err, &artErr) {
		return artErr.Details
	}
	return nil
}

// Config builds a CONFIG_INVALID error, the configuration error kind that is
// always fatal and never retried.
func Config(format string, args ...interface{}) *ArtlinkError {
	return Newf(ErrConfigValid, format, args...)
}

// MissingVersion reports that no version could be found for groupId:artifactId.
func MissingVersion(groupID, artifactID string) *ArtlinkError {
	return Newf(ErrMissingVersion,
		"unable to find artifact version of %s:%s in either dependency list or in project's dependency management",
		groupID, artifactID).
		WithDetail("groupId", groupID).
		WithDetail("artifactId", artifactID)
}

// NotYetProduced reports a source file that does not exist yet or is not a
// regular file.
func NotYetProduced(source string) *ArtlinkError {
	return Newf(ErrNotYetProduced,
		"artifact %s has not been produced yet; when linking build outputs, link must run after the producer has written them",
		source).
		WithDetail("source", source)
}
