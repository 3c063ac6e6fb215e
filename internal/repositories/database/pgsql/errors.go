package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Unique constraints whose violation is a conflict with another record rather than
// a taken identifier. Everything else unique maps to apperrors.ErrDuplicate.
var conflictConstraints = map[string]bool{
	"uq_teams_org_name": true,
}

// translateWriteError maps Postgres integrity errors onto the application's sentinel errors.
// Unique violations keep the constraint name in the message.
func translateWriteError(err error, what string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return apperrors.NewAppError(500, "failed to write "+what, err)
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if conflictConstraints[pgErr.ConstraintName] {
			return fmt.Errorf("%w: %s violates %s", apperrors.ErrConflict, what, pgErr.ConstraintName)
		}
		return fmt.Errorf("%w: %s violates %s", apperrors.ErrDuplicate, what, pgErr.ConstraintName)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %s references a missing record (%s)", apperrors.ErrValidation, what, pgErr.ConstraintName)
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %s fails %s", apperrors.ErrValidation, what, pgErr.ConstraintName)
	}
	return apperrors.NewAppError(500, "failed to write "+what, err)
}

// translateDeleteError reports a row that other rows still reference as apperrors.ErrConflict.
func translateDeleteError(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return fmt.Errorf("%w: %s is still referenced (%s)", apperrors.ErrConflict, what, pgErr.ConstraintName)
	}
	return translateWriteError(err, what)
}
