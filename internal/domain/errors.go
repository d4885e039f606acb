package domain

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeDuplicateID       ErrorCode = "DUPLICATE_ID"
	CodeNotFound          ErrorCode = "NOT_FOUND"
	CodeTypeMismatch      ErrorCode = "TYPE_MISMATCH"
	CodeEmptyField        ErrorCode = "EMPTY_FIELD"
	CodeInvalidEmail      ErrorCode = "INVALID_EMAIL"
	CodeInvalidPhone      ErrorCode = "INVALID_PHONE"
	CodeInvalidField      ErrorCode = "INVALID_FIELD"
	CodeInvalidInput      ErrorCode = "INVALID_INPUT"
	CodeInsufficientStock ErrorCode = "INSUFFICIENT_STOCK"
)

// Error is the failure result every store operation reports to its caller.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// CodeOf extracts the domain error code, or "" for non-domain errors.
func CodeOf(err error) ErrorCode {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
