// Package apierror provides the error envelope written to clients and the
// typed errors services return. Internal causes (SQL errors, stack traces)
// stay in the logs; clients only see Mensaje.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the canonical error envelope: {"ok": false, "error": "..."}.
type APIError struct {
	OK      bool   `json:"ok"`
	Mensaje string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Mensaje: msg}
}

// ValidationError carries the failing fields next to the message.
type ValidationError struct {
	OK      bool              `json:"ok"`
	Mensaje string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(msg string, fields map[string]string) *ValidationError {
	return &ValidationError{Mensaje: msg, Fields: fields}
}

// Kind classifies a service error.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Error is the typed error returned by services.
type Error struct {
	Kind    Kind
	Mensaje string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Mensaje, e.Err)
	}
	return e.Mensaje
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Mensaje: msg} }

func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Mensaje: msg} }

func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Mensaje: msg} }

// Persistence wraps a data-store failure. The cause is kept for logging.
func Persistence(msg string, err error) *Error {
	return &Error{Kind: KindPersistence, Mensaje: msg, Err: err}
}

// KindOf reports the Kind of err, or KindUnknown for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Message returns the client-safe message of err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Mensaje
	}
	return "Error interno del servidor"
}

// Status maps an error to the HTTP status used by endpoints that report
// failures through the status code.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
