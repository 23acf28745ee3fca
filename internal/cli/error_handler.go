package cli

import (
	stderrors "errors"
	"fmt"

	"taskboard/internal/errors"
	"taskboard/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// handledError carries terminal-ready text while keeping the original error
// reachable through errors.As.
type handledError struct {
	msg   string
	cause error
}

func (e *handledError) Error() string { return e.msg }

func (e *handledError) Unwrap() error { return e.cause }

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	return &handledError{msg: fmt.Sprintf("failed to %s: %s", operation, eh.message(err)), cause: err}
}

// HandleSimple provides user-friendly error messages without operation
// context. Errors already shaped by Handle pass through unchanged.
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}
	var handled *handledError
	if stderrors.As(err, &handled) {
		return err
	}
	return &handledError{msg: eh.message(err), cause: err}
}

// Cause returns the error a handled error was built from.
func (eh *ErrorHandler) Cause(err error) error {
	var handled *handledError
	if stderrors.As(err, &handled) {
		return handled.cause
	}
	return err
}

// message prefers the field-level validation text, then the AppError text.
func (eh *ErrorHandler) message(err error) string {
	if validationErr, ok := validation.AsValidationError(err); ok {
		return validationErr.GetUserFriendlyMessage()
	}
	return errors.GetUserMessage(err)
}

// IsStorageError checks if an error came from the durable store
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
