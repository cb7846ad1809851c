package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"mesa-market/internal/core/domain"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// mapError translates constraint violations into domain errors. Anything
// else is returned wrapped with op.
func mapError(op string, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	switch pgErr.Code {
	case uniqueViolation:
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	case foreignKeyViolation:
		ve := domain.NewValidationError()
		ve.Add(constraintField(pgErr.TableName, pgErr.ConstraintName), "does not exist")
		return ve
	case checkViolation:
		ve := domain.NewValidationError()
		ve.Add(constraintField(pgErr.TableName, pgErr.ConstraintName), "is invalid")
		return ve
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// constraintField recovers the JSON field name from a default Postgres
// constraint name such as placements_creative_id_fkey.
func constraintField(table, constraint string) string {
	name := strings.TrimPrefix(constraint, table+"_")
	name = strings.TrimSuffix(name, "_fkey")
	name = strings.TrimSuffix(name, "_check")
	if name == "" || name == constraint {
		return "body"
	}
	parts := strings.Split(name, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "id" {
			parts[i] = "Id"
			continue
		}
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
