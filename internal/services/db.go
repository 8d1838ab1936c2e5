// internal/services/db.go
package services

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// isDuplicateError reports whether err is a unique constraint violation.
// Postgres reports SQLSTATE 23505; the sqlite driver used in tests reports a
// plain error mentioning the UNIQUE constraint.
func isDuplicateError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(strings.ToUpper(err.Error()), "UNIQUE")
}
