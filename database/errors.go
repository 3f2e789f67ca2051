package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Known request error codes.
const (
	CodeValueTooLong        = "P2000"
	CodeUniqueConstraint    = "P2002"
	CodeForeignKey          = "P2003"
	CodeConstraintFailed    = "P2004"
	CodeNullConstraint      = "P2011"
	CodeValueOutOfRange     = "P2020"
	CodeRecordNotFound      = "P2025"
	CodeTransactionConflict = "P2034"
)

var sqlStateCodes = map[string]string{
	"22001": CodeValueTooLong,        // string_data_right_truncation
	"23505": CodeUniqueConstraint,    // unique_violation
	"23503": CodeForeignKey,          // foreign_key_violation
	"23514": CodeConstraintFailed,    // check_violation
	"23502": CodeNullConstraint,      // not_null_violation
	"22003": CodeValueOutOfRange,     // numeric_value_out_of_range
	"40001": CodeTransactionConflict, // serialization_failure
}

// KnownRequestError is a database failure of a recognized category.
// Message is the raw diagnostic text; the human-readable detail follows
// the line carrying the arrow marker.
type KnownRequestError struct {
	Code    string
	Message string
	Meta    map[string]string
	cause   error
}

func (e *KnownRequestError) Error() string {
	return e.Message
}

func (e *KnownRequestError) Unwrap() error {
	return e.cause
}

// NewKnownRequestError builds a KnownRequestError in the standard diagnostic
// shape: a header, an arrow line naming the operation, then the detail.
func NewKnownRequestError(code, operation, detail string, cause error) *KnownRequestError {
	return &KnownRequestError{
		Code:    code,
		Message: fmt.Sprintf("Invalid `%s` invocation:\n\n→ %s\n  %s\n", operation, operation, detail),
		Meta:    map[string]string{},
		cause:   cause,
	}
}

// AsKnownRequestError finds a KnownRequestError in err's chain.
func AsKnownRequestError(err error) (*KnownRequestError, bool) {
	var known *KnownRequestError
	if errors.As(err, &known) {
		return known, true
	}
	return nil, false
}

// Translate converts driver errors into KnownRequestError values.
// Errors with no known category are returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := AsKnownRequestError(err); ok {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return NewKnownRequestError(CodeRecordNotFound, "query",
			"An operation failed because it depends on one or more records that were required but not found.", err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	code, ok := sqlStateCodes[pgErr.Code]
	if !ok {
		return err
	}

	detail := pgErr.Message
	if pgErr.Detail != "" {
		detail = strings.TrimSuffix(detail, ".") + ": " + pgErr.Detail
	}

	operation := "query"
	if pgErr.TableName != "" {
		operation = pgErr.TableName
	}

	known := NewKnownRequestError(code, operation, detail, err)
	known.Meta["sqlstate"] = pgErr.Code
	if pgErr.ConstraintName != "" {
		known.Meta["constraint"] = pgErr.ConstraintName
	}
	if pgErr.TableName != "" {
		known.Meta["table"] = pgErr.TableName
	}
	if pgErr.ColumnName != "" {
		known.Meta["column"] = pgErr.ColumnName
	}
	return known
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
