// Package pgerr translates Postgres constraint violations into domain errors.
// Both drivers the service can run on are understood: pgx (pgconn.PgError) and lib/pq (pq.Error).
package pgerr

import (
	"errors"

	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	ForeignKeyViolation = "23503"
	UniqueViolation     = "23505"
)

// Violation is the driver independent view of a failed statement.
type Violation struct {
	Code       string
	Constraint string
	Detail     string
}

// Inspect extracts the SQLSTATE of err. ok is false when err did not come from Postgres.
func Inspect(err error) (Violation, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return Violation{Code: pgErr.Code, Constraint: pgErr.ConstraintName, Detail: pgErr.Detail}, true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return Violation{Code: string(pqErr.Code), Constraint: pqErr.Constraint, Detail: pqErr.Detail}, true
	}

	return Violation{}, false
}

// Translate maps a foreign key violation to ErrObjectNotFound and a unique violation
// to ErrValueIsInvalid. Any other error is returned unchanged.
func Translate(err error, entity string, id any) error {
	v, ok := Inspect(err)
	if !ok {
		return err
	}

	switch v.Code {
	case ForeignKeyViolation:
		return errs.NewObjectNotFoundErrorWithCause(entity, id, errors.New(referenceMessage(v)))
	case UniqueViolation:
		return errs.NewValueIsInvalidErrorWithCause(entity, errors.New(duplicateMessage(v)))
	default:
		return err
	}
}

func referenceMessage(v Violation) string {
	if v.Detail != "" {
		return "referenced record does not exist: " + v.Detail
	}
	return "referenced record does not exist"
}

func duplicateMessage(v Violation) string {
	if v.Constraint != "" {
		return "duplicate value violates " + v.Constraint
	}
	return "duplicate value"
}
