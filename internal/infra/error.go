package infra

import (
	"errors"

	"ticketboss/internal/pkg/errs"
)

type StoreErrorKind string

type StoreError struct {
	Kind StoreErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e StoreError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e StoreError) Unwrap() error {
	return e.err
}

// WrapStoreErr attaches a kind to an engine failure. The engine itself never
// logs; translation and logging happen at the router boundary.
func WrapStoreErr(kind StoreErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return StoreError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Engine-specific error kinds
const (
	KindNotFound             StoreErrorKind = "NOT_FOUND"
	KindInsufficientCapacity StoreErrorKind = "INSUFFICIENT_CAPACITY"
	KindTerminalState        StoreErrorKind = "TERMINAL_STATE"
	KindInvalidArgument      StoreErrorKind = "INVALID_ARGUMENT"
	KindAlreadyExists        StoreErrorKind = "ALREADY_EXISTS"
	KindCorruptedState       StoreErrorKind = "CORRUPTED_STATE"
)
