package domain

import (
	"errors"
	"strings"
)

// Kind classifies a failure so the HTTP boundary can pick a status code
// without inspecting causes.
type Kind int

const (
	KindUnknown Kind = iota
	KindDuplicateUser
	KindInvalidCredentials
	KindStoreUnavailable
	KindHashingFailure
)

func (k Kind) String() string {
	switch k {
	case KindDuplicateUser:
		return "duplicate user"
	case KindInvalidCredentials:
		return "invalid credentials"
	case KindStoreUnavailable:
		return "store unavailable"
	case KindHashingFailure:
		return "hashing failure"
	default:
		return "unknown"
	}
}

// Error is the typed result returned by account operations.
type Error struct {
	Kind Kind   // Failure classification
	Op   string // Operation that failed, e.g. "account.Register"
	Err  error  // Underlying cause, may be nil
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrDuplicateUser      = &Error{Kind: KindDuplicateUser}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
	ErrStoreUnavailable   = &Error{Kind: KindStoreUnavailable}
	ErrHashingFailure     = &Error{Kind: KindHashingFailure}
	ErrUserNotFound       = errors.New("user not found")
)

// E builds an *Error for op with the given kind and cause.
func E(op string, kind Kind, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
