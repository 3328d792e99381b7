package catalog

import (
	"fmt"
	"net/http"
)

// Error type names included in structured error responses
const (
	ErrTypeResourceNotFound     = "ResourceNotFoundException"
	ErrTypeInvalidParameters    = "InvalidParametersException"
	ErrTypeFilterNotImplemented = "FilterNotImplementedException"
)

// APIError is implemented by error kinds that map onto wire errors
type APIError interface {
	error
	ErrorType() string
	StatusCode() int
}

// ResourceNotFoundError is returned when an identifier or name fails to resolve
type ResourceNotFoundError struct {
	ResourceID   string
	ResourceType string
	Message      string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.ResourceID)
}

// ErrorType returns the wire error type name
func (e *ResourceNotFoundError) ErrorType() string {
	return ErrTypeResourceNotFound
}

// StatusCode returns the HTTP status for the error
func (e *ResourceNotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// newNotFoundError builds the not-found error, recording which identifier
// was used for the failed lookup as "<name>=<value>"
func newNotFoundError(resourceType string, message string, identifierName string, identifier string) *ResourceNotFoundError {
	return &ResourceNotFoundError{
		ResourceID:   fmt.Sprintf("%s=%s", identifierName, identifier),
		ResourceType: resourceType,
		Message:      message,
	}
}

// InvalidParametersError is returned when a request carries values the
// registry rejects, such as duplicate names
type InvalidParametersError struct {
	Message string
}

func (e *InvalidParametersError) Error() string {
	return e.Message
}

// ErrorType returns the wire error type name
func (e *InvalidParametersError) ErrorType() string {
	return ErrTypeInvalidParameters
}

// StatusCode returns the HTTP status for the error
func (e *InvalidParametersError) StatusCode() int {
	return http.StatusBadRequest
}

// FilterNotImplementedError names a search filter field the registry does
// not recognize
type FilterNotImplementedError struct {
	Field string
}

func (e *FilterNotImplementedError) Error() string {
	return fmt.Sprintf("Filter not implemented: %s", e.Field)
}

// ErrorType returns the wire error type name
func (e *FilterNotImplementedError) ErrorType() string {
	return ErrTypeFilterNotImplemented
}

// StatusCode returns the HTTP status for the error
func (e *FilterNotImplementedError) StatusCode() int {
	return http.StatusBadRequest
}
