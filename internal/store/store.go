// Package store implements data access for all entity collections.
// Functions operate on an explicitly passed *sql.DB so callers own the
// database handle; there is no package-level state.
package store

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by mutations that target an ID with no row.
var ErrNotFound = errors.New("not found")

// IsDuplicate reports whether err is a unique-constraint violation.
func IsDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
