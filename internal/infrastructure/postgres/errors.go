package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the repositories reclassify into the API taxonomy.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeCheckViolation      = "23514"
	codeStringTooLong       = "22001"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isConstraintViolation reports whether err is a schema-level rejection of
// the written values (length bounds, required fields).
func isConstraintViolation(err error) bool {
	switch pgCode(err) {
	case codeNotNullViolation, codeCheckViolation, codeStringTooLong:
		return true
	}
	return false
}
