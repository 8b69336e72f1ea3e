package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an engine error
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates a caller supplied malformed input (bad recipe, bad config)
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a referenced die, type or skill does not exist
	CodeNotFound Code = "not_found"

	// CodeInvalidAttack indicates a proposal that is not legal right now.
	// Recoverable: the caller should re-request legal attacks and re-prompt.
	CodeInvalidAttack Code = "invalid_attack"

	// CodeInternalInconsistency indicates a skill or attack type broke an engine
	// invariant. Not recoverable for the current resolution.
	CodeInternalInconsistency Code = "internal_inconsistency"

	// CodeInternal indicates an internal system error
	CodeInternal Code = "internal"
)

// Meta keys used for diagnostics on InternalInconsistency errors
const (
	MetaHook       = "hook"
	MetaSkill      = "skill"
	MetaAttackType = "attack_type"
	MetaDieID      = "die_id"
	MetaGameID     = "game_id"
)

// Error is an engine error with code and diagnostic metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, keeping the code of engine errors
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var engineErr *Error
	if errors.As(err, &engineErr) {
		return &Error{
			Code:    engineErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(engineErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidAttack creates an invalid attack error
func InvalidAttack(message string) *Error {
	return New(CodeInvalidAttack, message)
}

// InvalidAttackf creates a formatted invalid attack error
func InvalidAttackf(format string, args ...any) *Error {
	return Newf(CodeInvalidAttack, format, args...)
}

// InternalInconsistency creates an internal inconsistency error
func InternalInconsistency(message string) *Error {
	return New(CodeInternalInconsistency, message)
}

// InternalInconsistencyf creates a formatted internal inconsistency error
func InternalInconsistencyf(format string, args ...any) *Error {
	return Newf(CodeInternalInconsistency, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var engineErr *Error
	if errors.As(err, &engineErr) {
		return engineErr.Code == code
	}
	return false
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidAttack checks if the error is an invalid attack error
func IsInvalidAttack(err error) bool {
	return Is(err, CodeInvalidAttack)
}

// IsInternalInconsistency checks if the error is an internal inconsistency error
func IsInternalInconsistency(err error) bool {
	return Is(err, CodeInternalInconsistency)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var engineErr *Error
	if errors.As(err, &engineErr) {
		return engineErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var engineErr *Error
	if errors.As(err, &engineErr) {
		return engineErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
