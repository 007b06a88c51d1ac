// Package pgerr classifies PostgreSQL errors surfaced through gorm's pgx
// driver.
package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// UniqueViolation returns the violated constraint name.
func UniqueViolation(err error) (string, bool) {
	return constraintFor(err, uniqueViolation)
}

// ForeignKeyViolation returns the violated constraint name.
func ForeignKeyViolation(err error) (string, bool) {
	return constraintFor(err, foreignKeyViolation)
}

func constraintFor(err error, code string) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr.ConstraintName, true
	}
	return "", false
}
