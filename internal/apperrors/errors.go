// Package apperrors defines the error taxonomy shared by the engagement engine.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers that need to branch on it.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindInvalidTransition Kind = "invalid_transition"
	KindPreconditionSkip  Kind = "precondition_skip"
	KindGateway           Kind = "gateway"
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
)

var (
	ErrValidation        = &Error{Kind: KindValidation, Msg: "validation failed"}
	ErrInvalidTransition = &Error{Kind: KindInvalidTransition, Msg: "invalid transition"}
	ErrPreconditionSkip  = &Error{Kind: KindPreconditionSkip, Msg: "precondition not met"}
	ErrGateway           = &Error{Kind: KindGateway, Msg: "messaging gateway failure"}
	ErrNotFound          = &Error{Kind: KindNotFound, Msg: "not found"}
	ErrConflict          = &Error{Kind: KindConflict, Msg: "conflict"}

	ErrEmptyAudience  = &Error{Kind: KindValidation, Code: "EMPTY_AUDIENCE", Msg: "campaign filter matches no contacts"}
	ErrCampaignActive = &Error{Kind: KindConflict, Code: "CAMPAIGN_ACTIVE", Msg: "campaign is sending"}
)

// Error carries a Kind plus an optional machine code and wrapped cause.
type Error struct {
	Kind Kind
	Code string
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Code when the target has one, otherwise on Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code != "" {
		return e.Code == t.Code
	}
	return e.Kind == t.Kind
}

func newError(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func Validation(op, format string, args ...any) error {
	return newError(KindValidation, op, format, args...)
}

func InvalidTransition(op, format string, args ...any) error {
	return newError(KindInvalidTransition, op, format, args...)
}

func Skip(op, format string, args ...any) error {
	return newError(KindPreconditionSkip, op, format, args...)
}

func NotFound(op, format string, args ...any) error {
	return newError(KindNotFound, op, format, args...)
}

func Conflict(op, format string, args ...any) error {
	return newError(KindConflict, op, format, args...)
}

// Gateway wraps a provider failure.
func Gateway(op string, err error) error {
	return &Error{Kind: KindGateway, Op: op, Msg: "messaging gateway failure", Err: err}
}

// KindOf returns the Kind of the first *Error in the chain, or "" when none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsSkip reports whether err is a business-rule skip rather than a failure.
func IsSkip(err error) bool {
	return errors.Is(err, ErrPreconditionSkip)
}
