// Package fault classifies language pipeline failures as user or internal.
//
// The Language API reports failures in-band through the error_type response
// field rather than through gRPC status codes, so every failure on the
// translate and synthesize paths must carry a classification. Errors without
// one are treated as internal.
package fault

import (
	"errors"
	"fmt"

	languagepb "github.com/itsHabib/grpc-translate-service/api/gen/go/language"
)

// Kind partitions failures by who must act on them.
type Kind int

const (
	// KindInternal marks backend or configuration failures. Retrying the
	// same request without operator action is unlikely to help.
	KindInternal Kind = iota
	// KindUser marks failures caused by request content. The caller can
	// change the request and retry.
	KindUser
)

// String returns the lowercase label used in logs.
func (k Kind) String() string {
	if k == KindUser {
		return "user"
	}
	return "internal"
}

// Error is a classified language pipeline failure.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "language fault"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// User creates a user-classified error.
func User(message string) *Error {
	return &Error{Kind: KindUser, Message: message}
}

// Userf creates a user-classified error with a formatted message.
func Userf(format string, args ...any) *Error {
	return &Error{Kind: KindUser, Message: fmt.Sprintf(format, args...)}
}

// Internal creates an internal-classified error wrapping a cause.
func Internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, Cause: cause}
}

// UserWrap creates a user-classified error wrapping a cause.
func UserWrap(message string, cause error) *Error {
	return &Error{Kind: KindUser, Message: message, Cause: cause}
}

// KindOf returns the classification for err. Unclassified errors are
// internal.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindInternal
}

// WireType maps err to the ErrorType reported on responses. A nil error
// maps to None.
func WireType(err error) languagepb.ErrorType {
	if err == nil {
		return languagepb.ErrorType_None
	}
	if KindOf(err) == KindUser {
		return languagepb.ErrorType_User
	}
	return languagepb.ErrorType_Internal
}
