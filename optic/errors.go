package optic

import (
	"errors"
	"fmt"
)

// Kind classifies a parse failure.
type Kind uint8

const (
	// KindMissingValue: the argument list ran out while an option expected
	// a value token.
	KindMissingValue Kind = iota + 1
	// KindInvalidValue: a value token failed strict type conversion.
	KindInvalidValue
	// KindOptionRepeated: a single-value option was matched a second time.
	KindOptionRepeated
	// KindUnknownOption: a token matched no registered long or short name.
	KindUnknownOption
	// KindUnsupportedSyntax: packed short options (-abc).
	KindUnsupportedSyntax
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMissingValue:
		return "missing value"
	case KindInvalidValue:
		return "invalid value"
	case KindOptionRepeated:
		return "option repeated"
	case KindUnknownOption:
		return "unknown option"
	case KindUnsupportedSyntax:
		return "unsupported syntax"
	default:
		return "unknown"
	}
}

// Error describes a failure while matching or converting command-line
// arguments. The message is the whole payload; Kind classifies it.
type Error struct {
	Kind    Kind
	Message string

	cause error
}

func (e *Error) Error() string { return e.Message }

// Unwrap returns the underlying codec error for option-level wrappers,
// nil otherwise.
func (e *Error) Unwrap() error { return e.cause }

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// wrapOption prefixes a codec or cursor failure with the option name,
// keeping the underlying kind reachable through both Kind and Unwrap.
func wrapOption(name string, err error) *Error {
	kind := KindInvalidValue
	var oe *Error
	if errors.As(err, &oe) {
		kind = oe.Kind
	}
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf("option '%s': %s", name, err),
		cause:   err,
	}
}
