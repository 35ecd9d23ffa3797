package domain

import (
	"errors"
	"fmt"
)

// ErrNoData marks an empty result that cannot feed a chart. It is not a failure.
var ErrNoData = errors.New("no data available")

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// StorageError wraps a failed read against the relational store.
// Unavailable is set when the connection itself is unusable.
type StorageError struct {
	Op          string
	Unavailable bool
	Err         error
}

func (e StorageError) Error() string {
	msg := "storage error"
	if e.Unavailable {
		msg = "storage unavailable"
	}
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", msg, e.Op, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", msg, e.Op)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", msg, e.Err)
	default:
		return msg
	}
}

func (e StorageError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsStorage(err error) bool {
	var target StorageError
	return errors.As(err, &target)
}

// IsUnavailable reports whether err is a StorageError for an unusable connection.
func IsUnavailable(err error) bool {
	var target StorageError
	return errors.As(err, &target) && target.Unavailable
}

func IsNoData(err error) bool {
	return errors.Is(err, ErrNoData)
}
