package errors

import (
	// Go Internal Packages
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies an error so transports can decide how to report it.
type Kind uint8

const (
	Other Kind = iota
	Invalid
	InvalidAmount
	InvalidState
	NotFound
	Forbidden
	Conflict
	Timeout
	Internal
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case InvalidAmount:
		return "invalid amount"
	case InvalidState:
		return "invalid state"
	case NotFound:
		return "not found"
	case Forbidden:
		return "forbidden"
	case Conflict:
		return "conflict"
	case Timeout:
		return "timeout"
	case Internal:
		return "internal"
	default:
		return "other"
	}
}

// Error is the error type returned by every terminal component.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// E builds an *Error. err may be nil.
func E(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the outermost *Error in the chain, or Other.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		if e.Kind == Other && e.Err != nil {
			return KindOf(e.Err)
		}
		return e.Kind
	}
	return Other
}

// Is reports whether err carries the given kind.
func Is(kind Kind, err error) bool {
	return err != nil && KindOf(err) == kind
}

// ValidationErrors collects field level problems before failing once.
type ValidationErrors struct {
	fields map[string][]string
}

func ValidationErrs() *ValidationErrors {
	return &ValidationErrors{fields: make(map[string][]string)}
}

// Add records a message against field.
func (v *ValidationErrors) Add(field, msg string) {
	v.fields[field] = append(v.fields[field], msg)
}

// Fields returns the recorded messages keyed by field.
func (v *ValidationErrors) Fields() map[string][]string {
	return v.fields
}

// Err returns nil when nothing was recorded.
func (v *ValidationErrors) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return v
}

func (v *ValidationErrors) Error() string {
	keys := make([]string, 0, len(v.fields))
	for k := range v.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, strings.Join(v.fields[k], ", ")))
	}
	return strings.Join(parts, "; ")
}
