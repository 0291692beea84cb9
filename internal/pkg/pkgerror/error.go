package pkgerror

import (
	"errors"
	"fmt"
)

// Error is a typed application error.
//
// Status and name are fixed by the constructor; the message is either the one
// given by the caller or the default message of the kind.
type Error struct {
	err    error
	msg    string
	kind   Kind
	status int
	name   string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		if e.msg == "" {
			return e.err.Error()
		}
		return e.msg + ": " + e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	return e.kind.DefaultMessage()
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Name: %s, Status: %d, Message: %s, Underlying Error: %v",
		e.name,
		e.status,
		e.msg,
		e.err,
	)
}

// Msg returns the user-facing message.
func (e *Error) Msg() string {
	return e.msg
}

// Status returns the HTTP status code to emit.
func (e *Error) Status() int {
	return e.status
}

// Name returns the display name (for example "BadRequest").
func (e *Error) Name() string {
	return e.name
}

// Kind returns the catalog entry the error was built from.
func (e *Error) Kind() Kind {
	return e.kind
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// Is reports whether target is the kind of e. Custom errors only match KindCustom.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.kind
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var perr *Error
	if !errors.As(err, &perr) {
		return KindCustom, false
	}
	return perr.kind, true
}

func newKind(k Kind, msg string, err error) *Error {
	if msg == "" {
		msg = k.DefaultMessage()
	}
	return &Error{err: err, msg: msg, kind: k, status: k.Status(), name: k.Name()}
}

// New creates a caller-defined application error with an explicit status and
// name. An empty msg selects "Unknown error".
func New(msg string, status int, name string) error {
	e := newKind(KindCustom, msg, nil)
	e.status, e.name = status, name
	return e
}

// Wrap creates an error of kind k with its default message, wrapping err.
func Wrap(err error, k Kind) error {
	return newKind(k, "", err)
}

// Of creates an error of kind k. An empty msg selects the default message.
func Of(k Kind, msg string) error {
	return newKind(k, msg, nil)
}

func NewBadRequest(msg string) error           { return newKind(KindBadRequest, msg, nil) }
func NewUnauthorized(msg string) error         { return newKind(KindUnauthorized, msg, nil) }
func NewPaymentRequired(msg string) error      { return newKind(KindPaymentRequired, msg, nil) }
func NewForbidden(msg string) error            { return newKind(KindForbidden, msg, nil) }
func NewNotFound(msg string) error             { return newKind(KindNotFound, msg, nil) }
func NewConflict(msg string) error             { return newKind(KindConflict, msg, nil) }
func NewGone(msg string) error                 { return newKind(KindGone, msg, nil) }
func NewLengthRequired(msg string) error       { return newKind(KindLengthRequired, msg, nil) }
func NewPreconditionFailed(msg string) error   { return newKind(KindPreconditionFailed, msg, nil) }
func NewUnsupportedMediaType(msg string) error { return newKind(KindUnsupportedMediaType, msg, nil) }
func NewRequestRangeNotSatisfiable(msg string) error {
	return newKind(KindRequestRangeNotSatisfiable, msg, nil)
}
func NewExpectationFailed(msg string) error  { return newKind(KindExpectationFailed, msg, nil) }
func NewTeapot(msg string) error             { return newKind(KindTeapot, msg, nil) }
func NewMisdirectedRequest(msg string) error { return newKind(KindMisdirectedRequest, msg, nil) }
func NewUnprocessableEntity(msg string) error {
	return newKind(KindUnprocessableEntity, msg, nil)
}
func NewUpgradeRequired(msg string) error       { return newKind(KindUpgradeRequired, msg, nil) }
func NewUnsupportedUpgrade(msg string) error    { return newKind(KindUnsupportedUpgrade, msg, nil) }
func NewInvalidSSLCertificate(msg string) error { return newKind(KindInvalidSSLCertificate, msg, nil) }
func NewTooManyRequests(msg string) error       { return newKind(KindTooManyRequests, msg, nil) }
func NewRequestHeaderFieldsTooLarge(msg string) error {
	return newKind(KindRequestHeaderFieldsTooLarge, msg, nil)
}
func NewUnavailableForLegalReasons(msg string) error {
	return newKind(KindUnavailableForLegalReasons, msg, nil)
}
func NewInternalServerError(msg string) error { return newKind(KindInternalServerError, msg, nil) }
func NewGatewayTimeout(msg string) error      { return newKind(KindGatewayTimeout, msg, nil) }
func NewUnavailable(msg string) error         { return newKind(KindUnavailable, msg, nil) }
func NewDependencyTimeout(msg string) error   { return newKind(KindDependencyTimeout, msg, nil) }
func NewVariantAlsoNegotiates(msg string) error {
	return newKind(KindVariantAlsoNegotiates, msg, nil)
}
func NewInsufficientStorage(msg string) error { return newKind(KindInsufficientStorage, msg, nil) }
func NewLoopDetected(msg string) error        { return newKind(KindLoopDetected, msg, nil) }
