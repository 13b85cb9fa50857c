package parser

import "fmt"

// ErrKind classifies the structural failures the parser can report.
type ErrKind int

const (
	ErrNoInvocations ErrKind = iota
	ErrMissingToken
	ErrMissingFunctionName
	ErrInvalidFunctionName
	ErrUnexpectedWhitespace
	ErrUnbalancedParentheses
	ErrInconsistentLayerSize
	ErrUnexpectedKeyCount
)

func (k ErrKind) String() string {
	switch k {
	case ErrNoInvocations:
		return "no invocations found"
	case ErrMissingToken:
		return "missing token"
	case ErrMissingFunctionName:
		return "missing function name"
	case ErrInvalidFunctionName:
		return "invalid function name"
	case ErrUnexpectedWhitespace:
		return "unexpected whitespace"
	case ErrUnbalancedParentheses:
		return "unbalanced parentheses"
	case ErrInconsistentLayerSize:
		return "inconsistent layer size"
	case ErrUnexpectedKeyCount:
		return "unexpected key count"
	default:
		return "unknown error"
	}
}

// Error is a structural parse failure. Offset is the absolute byte
// position of the offending character in the original source, so a
// caller can point a user at the exact spot.
type Error struct {
	Kind   ErrKind
	Offset int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Detail)
}

func newError(kind ErrKind, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}
