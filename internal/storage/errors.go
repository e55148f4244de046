package storage

import (
	"errors"
	"log"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/AlenaMolokova/checks/internal/apperrors"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextValue    = "22P02"
)

// Matches the postgres detail clause "Key (email)=(b@x.com) already exists."
var uniqueDetailRe = regexp.MustCompile(`\((.+?)\)=\((.+?)\)`)

// translateDBError maps low-level persistence failures to the application
// error taxonomy. Errors that already carry a taxonomy sentinel pass through
// unchanged so service-layer failures survive the transaction boundary.
func translateDBError(err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsClassified(err) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NotFound("no matching record")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if m := uniqueDetailRe.FindStringSubmatch(pgErr.Detail); m != nil {
				return apperrors.Conflict("%s %s already exists", m[1], m[2])
			}
			return apperrors.Conflict("duplicate value violates %s", pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return apperrors.Conflict("foreign key violation: %s", pgErr.ConstraintName)
		case pgInvalidTextValue:
			return apperrors.Validation("invalid input value: %s", pgErr.Message)
		}
	}

	log.Printf("Unclassified database error: %v", err)
	return apperrors.Internal("could not process the record: %v", err)
}
