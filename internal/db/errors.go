package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"redbus/internal/domain"

	"github.com/go-sql-driver/mysql"
)

// Wrap turns a driver error into a domain.StorageError tagged with op.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	LogBadConn("["+op+"]", err)
	return domain.StorageError{Op: op, Unavailable: IsConnError(err), Err: err}
}

// IsConnError reports whether err means the store cannot be reached at all.
// A query that runs out of time against a reachable store is not one.
func IsConnError(err error) bool {
	if err == nil {
		return false
	}
	// context errors satisfy net.Error, so rule them out first
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
