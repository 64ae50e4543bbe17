package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/profasthq/profast-api/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// HandleError converts database driver errors into application
// HTTPErrors with stable kinds.
//
// Mapping:
//   - context deadline        -> TIMEOUT (504)
//   - pgx.ErrNoRows           -> NOT_FOUND (404)
//   - unique violation        -> VALIDATION_ERROR "already exists" (400)
//   - foreign key violation   -> NOT_FOUND on the referenced entity (404)
//   - not-null/check          -> VALIDATION_ERROR (400)
//   - connection failure      -> STORE_UNAVAILABLE (500)
//   - anything else           -> STORE_UNAVAILABLE (500)
//
// Non-database errors (already *errs.HTTPError) pass through untouched.
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewTimeoutError("The store did not respond in time")
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewNotFoundError("Record not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		sqlErr := ConvertPgError(pgErr)
		switch sqlErr.Code {
		case UniqueViolation:
			return errs.NewValidationError(
				fmt.Sprintf("A %s with this identifier already exists", entityName(sqlErr.TableName)),
				nil,
			)
		case ForeignKeyViolation:
			return errs.NewNotFoundError(
				fmt.Sprintf("The referenced %s does not exist", entityName(sqlErr.TableName)),
			)
		case NotNullViolation:
			return errs.NewValidationError(
				fmt.Sprintf("The %s field is required", sqlErr.ColumnName),
				[]errs.FieldError{{Field: sqlErr.ColumnName, Error: "is required"}},
			)
		case CheckViolation:
			return errs.NewValidationError("One or more values do not meet required conditions", nil)
		case ConnectionFailure:
			return errs.NewStoreUnavailableError("The store cannot be reached")
		}
	}

	// Dial errors and pool-closed errors arrive as plain errors, not
	// PgErrors. Anything unclassified from the store layer is a 500.
	return errs.NewStoreUnavailableError("An error occurred while accessing the store")
}

// entityName derives a singular entity name from a table name:
// "users" -> "user". Falls back to "record".
func entityName(tableName string) string {
	name := strings.ToLower(tableName)
	if name == "" {
		return "record"
	}
	if strings.HasSuffix(name, "s") && len(name) > 1 {
		name = name[:len(name)-1]
	}
	return name
}
