package errors

// SQLSTATE classification for pgx errors. The storage gateway wraps every
// driver failure through FromPostgres so repos and services only ever see
// the ErrorCode taxonomy

import (
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	sqlstateUniqueViolation     = "23505"
	sqlstateForeignKeyViolation = "23503"
	sqlstateNotNullViolation    = "23502"
	sqlstateCheckViolation      = "23514"
	sqlstateStringTooLong       = "22001"
	sqlstateBadTextRepr         = "22P02"
	sqlstateSerializationFail   = "40001"
	sqlstateDeadlock            = "40P01"
	sqlstateLockNotAvailable    = "55P03"
	sqlstateCannotConnectNow    = "57P03"
)

// codeForSQLState maps one SQLSTATE onto the taxonomy
func codeForSQLState(state string) ErrorCode {
	switch state {
	case sqlstateUniqueViolation:
		return ErrorCodeDuplicateKey
	case sqlstateForeignKeyViolation, sqlstateStringTooLong, sqlstateBadTextRepr:
		return ErrorCodeInvalidArgument
	case sqlstateNotNullViolation, sqlstateCheckViolation:
		return ErrorCodeValidation
	case sqlstateCannotConnectNow:
		return ErrorCodeUnavailable
	default:
		return ErrorCodeDB
	}
}

// FromPostgres wraps a storage error with its mapped code. Errors that are
// not PgErrors (closed pools, context cancellation) wrap as ErrorCodeDB.
// nil stays nil, and our own errors pass through untouched
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return Wrap(err, codeForSQLState(pgErr.Code), msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// IsDuplicateKey reports a unique constraint violation anywhere in the chain
func IsDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return stderrs.As(err, &pgErr) && pgErr.Code == sqlstateUniqueViolation
}
