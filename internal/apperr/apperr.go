package apperr

import (
	"errors"
	"fmt"
)

// AppError carries a stable code alongside a human-readable message.
// The message is what ends up in a slice's error field; the code is what
// coordinators branch on.
type AppError struct {
	Code    string
	Message string
	Status  int // HTTP status when the error came off the wire, else 0
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeRemote          = "REMOTE_ERROR"
	CodeNetwork         = "NETWORK_ERROR"
	CodeValidation      = "VALIDATION_ERROR"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeNotFound        = "NOT_FOUND"
)

func Unauthenticated(message string) *AppError {
	if message == "" {
		message = "authentication required"
	}
	return &AppError{Code: CodeUnauthenticated, Message: message, Status: 401}
}

func Remote(status int, message string) *AppError {
	if message == "" {
		message = "the server could not complete the request"
	}
	return &AppError{Code: CodeRemote, Message: message, Status: status}
}

func Network(err error) *AppError {
	return &AppError{Code: CodeNetwork, Message: "could not reach the server", Err: err}
}

func Validation(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func InvalidFormat(message string, err error) *AppError {
	return &AppError{Code: CodeInvalidFormat, Message: message, Err: err}
}

func NotFound(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: resource + " not found", Status: 404}
}

// Is reports whether err is an AppError with the given code.
func Is(err error, code string) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

// Message extracts the human-readable message for display; non-AppErrors
// fall back to their Error() string.
func Message(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
