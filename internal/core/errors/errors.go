package errors

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeFileNotFound    ErrorCode = "FILE_NOT_FOUND"
	CodeUnsupportedFile ErrorCode = "UNSUPPORTED_FILE_TYPE"
	CodeNoComponent     ErrorCode = "NO_COMPONENT"
	CodeNoJSX           ErrorCode = "NO_JSX"
	CodeNoSelectorMatch ErrorCode = "NO_SELECTOR_MATCH"
	CodeValidation      ErrorCode = "VALIDATION_ERROR"
	CodeInternal        ErrorCode = "INTERNAL_ERROR"
)

type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
	Context map[string]interface{}
}

const (
	CtxPath      = "path"
	CtxExtension = "extension"
	CtxSelector  = "selector"
	CtxAnalyzer  = "analyzer"
)

func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if len(e.Context) > 0 {
		msg += fmt.Sprintf(" %v", e.Context)
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, msg string) error {
	return &DomainError{Code: code, Message: msg}
}

func Wrap(err error, code ErrorCode, msg string) error {
	return &DomainError{Code: code, Message: msg, Err: err}
}

func AddContext(err error, key string, value interface{}) error {
	var de *DomainError
	if errors.As(err, &de) {
		de.WithContext(key, value)
		return de
	}
	return &DomainError{
		Code:    CodeInternal,
		Message: "wrapped error",
		Err:     err,
		Context: map[string]interface{}{key: value},
	}
}

func IsCode(err error, code ErrorCode) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ContextOf returns the structured context attached to a DomainError, or nil.
func ContextOf(err error) map[string]interface{} {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Context
	}
	return nil
}

// CodeOf returns the error code, defaulting to CodeInternal for foreign errors.
func CodeOf(err error) ErrorCode {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
