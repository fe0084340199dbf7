package restaurant

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies domain failures. The set is closed; every error produced by
// the service and repositories carries exactly one Kind.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindInvalidKey
	KindValidation
	KindNotFound
	KindDuplicate
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindInvalidKey:
		return "invalid_key"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindDuplicate:
		return "duplicate"
	case KindStorage:
		return "storage"
	}
	return "unknown"
}

// InvalidIDMessage is reported for any malformed restaurant key.
const InvalidIDMessage = "Invalid restaurant ID format"

// Error is the tagged domain error.
type Error struct {
	Kind       Kind
	Message    string
	Violations []Violation
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Violation is a single failed field rule.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func InvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

func InvalidKey(id string) *Error {
	return &Error{Kind: KindInvalidKey, Message: InvalidIDMessage, Err: fmt.Errorf("malformed id %q", id)}
}

// ValidationFailed aggregates every violation into one message.
func ValidationFailed(vs []Violation) *Error {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.Message)
	}
	return &Error{Kind: KindValidation, Message: "Validation error: " + strings.Join(parts, "; "), Violations: vs}
}

func NotFound(id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("Restaurant with ID %s not found", id)}
}

func Duplicate(field, value string, err error) *Error {
	return &Error{Kind: KindDuplicate, Message: fmt.Sprintf("A restaurant with %s %q already exists", field, value), Err: err}
}

func Storage(op string, err error) *Error {
	return &Error{Kind: KindStorage, Message: "storage " + op + " failed", Err: err}
}

// KindOf returns the Kind of err, or KindUnknown when err is not a domain error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
