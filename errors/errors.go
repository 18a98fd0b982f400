// Package errors provides the worker's structured error types: an
// *NFError carries an *ErrorType category plus field/value context.
package errors

import (
	"fmt"
)

// Error types for different categories of failures
var (
	// ErrConfig represents configuration-related errors
	ErrConfig = &ErrorType{Code: "CONFIG", Message: "Configuration error"}

	// ErrValidation represents validation-related errors
	ErrValidation = &ErrorType{Code: "VALIDATION", Message: "Validation error"}

	// ErrNetwork represents network/communication errors
	ErrNetwork = &ErrorType{Code: "NETWORK", Message: "Network error"}

	// ErrXML represents XML processing errors
	ErrXML = &ErrorType{Code: "XML", Message: "XML processing error"}

	// ErrUnknownModel is raised when the root dispatcher cannot
	// classify the document or its fiscal model.
	ErrUnknownModel = &ErrorType{Code: "UNKNOWN_MODEL", Message: "unknown document or fiscal model"}

	// ErrUnexpectedEOF is raised when a decoder reaches end of input
	// before observing the end tag it was waiting for.
	ErrUnexpectedEOF = &ErrorType{Code: "UNEXPECTED_EOF", Message: "unexpected end of document"}

	// ErrIncompleteChoice is raised when a choice-of-variant element
	// closes without a complete witness pair for any of its variants.
	ErrIncompleteChoice = &ErrorType{Code: "INCOMPLETE_CHOICE", Message: "no variant witness pair completed before end tag"}

	// ErrDescriptorDecode is raised when the inbound job descriptor
	// cannot be decoded from JSON.
	ErrDescriptorDecode = &ErrorType{Code: "DESCRIPTOR_DECODE", Message: "could not decode job descriptor"}

	// ErrStorageFetch is raised when the object storage gateway
	// cannot retrieve the referenced object.
	ErrStorageFetch = &ErrorType{Code: "STORAGE_FETCH", Message: "could not fetch object from storage"}

	// ErrPublish is raised when the downstream publish step fails.
	ErrPublish = &ErrorType{Code: "PUBLISH", Message: "could not publish result"}

	// ErrBrokerConnect is raised when the broker connection cannot
	// be established. Policy is retry-with-backoff, not reject.
	ErrBrokerConnect = &ErrorType{Code: "BROKER_CONNECT", Message: "could not connect to broker"}
)

// ErrorType represents a category of error
type ErrorType struct {
	Code    string
	Message string
}

// Error implements the error interface, so an *ErrorType can be passed
// to NFError.Is as a target.
func (t *ErrorType) Error() string {
	return t.Message
}

// NFError represents a structured error with context
type NFError struct {
	Type    *ErrorType
	Message string
	Field   string
	Value   interface{}
	Cause   error
}

// Error implements the error interface
func (e *NFError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s (field: %s, value: %v)", e.Type.Code, e.Message, e.Field, e.Value)
	}
	return fmt.Sprintf("[%s] %s", e.Type.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *NFError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches a specific error type
func (e *NFError) Is(target error) bool {
	switch t := target.(type) {
	case *NFError:
		return e.Type.Code == t.Type.Code
	case *ErrorType:
		return e.Type.Code == t.Code
	}
	return false
}

// NewConfigError creates a new configuration error
func NewConfigError(message string, field string, value interface{}) *NFError {
	return &NFError{
		Type:    ErrConfig,
		Message: message,
		Field:   field,
		Value:   value,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, field string, value interface{}) *NFError {
	return &NFError{
		Type:    ErrValidation,
		Message: message,
		Field:   field,
		Value:   value,
	}
}

// NewNetworkError creates a new network error
func NewNetworkError(message string, cause error) *NFError {
	return &NFError{
		Type:    ErrNetwork,
		Message: message,
		Cause:   cause,
	}
}

// NewXMLError creates a new XML processing error
func NewXMLError(message string, field string, cause error) *NFError {
	return &NFError{
		Type:    ErrXML,
		Message: message,
		Field:   field,
		Cause:   cause,
	}
}

// NewUnknownModelError reports a document whose root element or
// fiscal model the dispatcher could not classify.
func NewUnknownModelError(value string) *NFError {
	return &NFError{
		Type:    ErrUnknownModel,
		Message: "document root or <mod> value is not recognized",
		Value:   value,
	}
}

// NewUnexpectedEOFError reports end of input while a decoder was
// still waiting for elem's matching end tag.
func NewUnexpectedEOFError(elem string) *NFError {
	return &NFError{
		Type:    ErrUnexpectedEOF,
		Message: "reached end of document before closing element",
		Field:   elem,
	}
}

// NewIncompleteChoiceError reports that elem closed without either
// witness pair of its rate/quantity choice completing.
func NewIncompleteChoiceError(elem string) *NFError {
	return &NFError{
		Type:    ErrIncompleteChoice,
		Message: "element closed without a complete variant witness pair",
		Field:   elem,
	}
}

// NewDescriptorDecodeError wraps a job descriptor JSON decode failure.
func NewDescriptorDecodeError(cause error) *NFError {
	return &NFError{
		Type:    ErrDescriptorDecode,
		Message: "job descriptor is not valid JSON",
		Cause:   cause,
	}
}

// NewStorageFetchError wraps an object storage retrieval failure.
func NewStorageFetchError(objectKey string, cause error) *NFError {
	return &NFError{
		Type:    ErrStorageFetch,
		Message: "failed to fetch object from storage",
		Field:   "object_key",
		Value:   objectKey,
		Cause:   cause,
	}
}

// NewPublishError wraps a downstream publish failure.
func NewPublishError(cause error) *NFError {
	return &NFError{
		Type:    ErrPublish,
		Message: "failed to publish result to downstream queue",
		Cause:   cause,
	}
}

// NewBrokerConnectError wraps a broker connection failure. Callers
// retry with backoff rather than surfacing this to a delivery.
func NewBrokerConnectError(cause error) *NFError {
	return &NFError{
		Type:    ErrBrokerConnect,
		Message: "failed to connect to broker",
		Cause:   cause,
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType *ErrorType, message string) *NFError {
	return &NFError{
		Type:    errorType,
		Message: message,
		Cause:   err,
	}
}