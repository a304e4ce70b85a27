/*
Package errs defines the error kinds surfaced by the SDK. Callers can tell
them apart with errors.As, every other layer passes them through unchanged.
*/
package errs

import (
	"fmt"
	"net/http"
)

type (
	// ValidationError is returned for malformed caller input. It's always
	// produced before any network request is made.
	ValidationError struct {
		Message string
	}

	// KeyDerivationError is returned when a private key can't be turned into a
	// curve scalar.
	KeyDerivationError struct {
		Key string
		Err error
	}

	// TransportError is returned for network failures and non-2xx gateway
	// responses. Status is zero when no HTTP response was received.
	TransportError struct {
		Status  int
		Code    string
		Message string
	}

	// SchemaError is returned when a gateway response doesn't match the shape
	// expected for the operation.
	SchemaError struct {
		Operation string
		Err       error
	}
)

// NewValidationError creates a ValidationError with the formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Error implements the error interface.
func (e *KeyDerivationError) Error() string {
	return fmt.Sprintf("invalid private key %q: %s", e.Key, e.Err)
}

// Unwrap returns the underlying cause.
func (e *KeyDerivationError) Unwrap() error {
	return e.Err
}

// NewTransportError returns a TransportError that only carries the message of
// err. It's used at the Provider boundary to normalize arbitrary failures.
func NewTransportError(err error) *TransportError {
	return &TransportError{Message: err.Error()}
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	if e.Code != "" {
		return fmt.Sprintf("HTTP %d/%s: %s: %s", e.Status, http.StatusText(e.Status), e.Code, e.Message)
	}
	return fmt.Sprintf("HTTP %d/%s: %s", e.Status, http.StatusText(e.Status), e.Message)
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("unexpected %s response: %s", e.Operation, e.Err)
}

// Unwrap returns the underlying cause.
func (e *SchemaError) Unwrap() error {
	return e.Err
}
