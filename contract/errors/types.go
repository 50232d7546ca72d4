// Package errors defines the typed failures returned by the message builder.
// Every failure stems from caller input or startup configuration, so none of
// them are retried automatically.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Kind is the machine-readable category of a builder failure.
type Kind string

const (
	UnknownContract   Kind = "UnknownContract"
	NoMatchingVariant Kind = "NoMatchingVariant"
	AmbiguousVariant  Kind = "AmbiguousVariant"
	MissingField      Kind = "MissingField"
	TypeMismatch      Kind = "TypeMismatch"
	UnknownField      Kind = "UnknownField"
	InvalidFunds      Kind = "InvalidFunds"
	UnexpectedFunds   Kind = "UnexpectedFunds"

	// InvalidConfig is raised while loading registries at startup and must
	// stop the process before any call is served.
	InvalidConfig Kind = "InvalidConfig"
)

// Error is a structured builder failure. Only the fields relevant to Kind are set.
type Error struct {
	Kind     Kind     `json:"kind"`
	Message  string   `json:"message"`
	Variant  string   `json:"variant,omitempty"`
	Field    string   `json:"field,omitempty"`
	Expected string   `json:"expected,omitempty"`
	Actual   string   `json:"actual,omitempty"`
	Tag      string   `json:"tag,omitempty"`
	Legal    []string `json:"legal,omitempty"`
	Address  string   `json:"address,omitempty"`
	Funds    string   `json:"funds,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches any *Error of the same Kind, so errors.Is(err, &Error{Kind: k}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf extracts the Kind from err, or "" when err is not a builder error.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// As returns the *Error carried by err, if any.
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrors.As(err, &e)
	return e, ok
}

// IsKind reports whether err is a builder error of kind k.
func IsKind(err error, k Kind) bool { return KindOf(err) == k }

func NewUnknownContract(address string) *Error {
	return &Error{
		Kind:    UnknownContract,
		Message: fmt.Sprintf("contract address %q is not a known deployment", address),
		Address: address,
	}
}

func NewNoMatchingVariant(tag string, legal []string) *Error {
	msg := fmt.Sprintf("%q is not a known variant; expected one of: %s", tag, strings.Join(legal, ", "))
	if tag == "" {
		msg = fmt.Sprintf("payload must be an object with exactly one variant key; expected one of: %s", strings.Join(legal, ", "))
	}
	return &Error{
		Kind:    NoMatchingVariant,
		Message: msg,
		Tag:     tag,
		Legal:   append([]string(nil), legal...),
	}
}

func NewAmbiguousVariant(tags []string) *Error {
	return &Error{
		Kind:    AmbiguousVariant,
		Message: fmt.Sprintf("payload selects more than one variant: %s", strings.Join(tags, ", ")),
		Tag:     strings.Join(tags, ","),
	}
}

func NewMissingField(variant, field string) *Error {
	return &Error{
		Kind:    MissingField,
		Message: fmt.Sprintf("variant %q is missing required field %q", variant, field),
		Variant: variant,
		Field:   field,
	}
}

func NewTypeMismatch(variant, field, expected, actual string) *Error {
	target := fmt.Sprintf("field %q", field)
	if field == "" {
		target = "body"
	}
	return &Error{
		Kind:     TypeMismatch,
		Message:  fmt.Sprintf("variant %q %s: expected %s, got %s", variant, target, expected, actual),
		Variant:  variant,
		Field:    field,
		Expected: expected,
		Actual:   actual,
	}
}

func NewUnknownField(variant, field string) *Error {
	return &Error{
		Kind:    UnknownField,
		Message: fmt.Sprintf("variant %q does not accept field %q", variant, field),
		Variant: variant,
		Field:   field,
	}
}

func NewInvalidFunds(funds, reason string) *Error {
	return &Error{
		Kind:    InvalidFunds,
		Message: fmt.Sprintf("funds %q: %s", funds, reason),
		Funds:   funds,
	}
}

func NewUnexpectedFunds(variant, funds string) *Error {
	return &Error{
		Kind:    UnexpectedFunds,
		Message: fmt.Sprintf("variant %q is not payable but %s was attached", variant, funds),
		Variant: variant,
		Funds:   funds,
	}
}

// NewInvalidConfig reports a malformed registry or deployment table.
func NewInvalidConfig(format string, args ...any) *Error {
	return &Error{Kind: InvalidConfig, Message: fmt.Sprintf(format, args...)}
}
