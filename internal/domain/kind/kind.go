// Package kind defines the closed set of error kinds shared between layers.
//
// Kinds carry no transport knowledge. Adapters decide how a kind is
// presented to their clients.
package kind

import (
	"errors"
)

// Kind classifies a failure.
type Kind uint8

// Known kinds. Unexpected is the zero value so unclassified errors fall into it.
const (
	Unexpected Kind = iota
	NotFound
	Validation
)

// Sentinel kinds for errors.Is checks.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// String returns the lowercase name used in logs and metric labels.
func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case Validation:
		return "validation"
	default:
		return "unexpected"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case NotFound:
		return ErrNotFound
	case Validation:
		return ErrValidation
	default:
		return nil
	}
}

// Error is a classified failure. Msg is safe to show to API clients.
type Error struct {
	Op   string
	Kind Kind
	Msg  string
	Err  error
}

// New returns a classified error without a cause.
func New(op string, k Kind, msg string) *Error {
	return &Error{Op: op, Kind: k, Msg: msg}
}

// Wrap classifies err under k with a public message.
func Wrap(op string, k Kind, err error, msg string) *Error {
	return &Error{Op: op, Kind: k, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// Of resolves the kind of err. NotFound wins over Validation; anything
// else is Unexpected.
func Of(err error) Kind {
	switch {
	case err == nil:
		return Unexpected
	case errors.Is(err, ErrNotFound):
		return NotFound
	case errors.Is(err, ErrValidation):
		return Validation
	default:
		return Unexpected
	}
}

// Message returns the public message of the outermost classified error
// whose kind is Of(err), or err.Error() when there is none.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if ke := find(err, Of(err)); ke != nil {
		return ke.Error()
	}
	return err.Error()
}

// find walks the chain depth first, like errors.As, for an *Error of kind k.
func find(err error, k Kind) *Error {
	for err != nil {
		if ke, ok := err.(*Error); ok && ke.Kind == k {
			return ke
		}
		switch u := err.(type) {
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		case interface{ Unwrap() []error }:
			for _, e := range u.Unwrap() {
				if ke := find(e, k); ke != nil {
					return ke
				}
			}
			return nil
		default:
			return nil
		}
	}
	return nil
}
