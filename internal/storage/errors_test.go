package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/AlenaMolokova/checks/internal/apperrors"
)

func TestTranslateDBError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		contains string
	}{
		{
			name: "уникальное ограничение с деталями",
			err: &pgconn.PgError{
				Code:           "23505",
				ConstraintName: "users_email_key",
				Detail:         "Key (email)=(b@x.com) already exists.",
			},
			sentinel: apperrors.ErrConflict,
			contains: "email b@x.com already exists",
		},
		{
			name:     "уникальное ограничение без деталей",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "checks_token_key"},
			sentinel: apperrors.ErrConflict,
			contains: "checks_token_key",
		},
		{
			name:     "нарушение внешнего ключа",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "product_checks_check_id_fkey"},
			sentinel: apperrors.ErrConflict,
			contains: "foreign key violation",
		},
		{
			name:     "неверное представление enum",
			err:      &pgconn.PgError{Code: "22P02", Message: `invalid input value for enum payment_type: "crypto"`},
			sentinel: apperrors.ErrValidation,
			contains: "invalid input value",
		},
		{
			name:     "нет строк",
			err:      pgx.ErrNoRows,
			sentinel: apperrors.ErrNotFound,
		},
		{
			name:     "прочие ошибки базы",
			err:      errors.New("connection reset"),
			sentinel: apperrors.ErrInternal,
		},
		{
			name:     "обернутая ошибка pg",
			err:      fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: "23505", Detail: "Key (token)=(abc) already exists."}),
			sentinel: apperrors.ErrConflict,
			contains: "token abc already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateDBError(tt.err)
			assert.ErrorIs(t, got, tt.sentinel)
			if tt.contains != "" {
				assert.Contains(t, got.Error(), tt.contains)
			}
		})
	}
}

func TestTranslateDBErrorPassesClassifiedThrough(t *testing.T) {
	classified := apperrors.NotFound("check not found")
	assert.Equal(t, classified, translateDBError(classified))

	validation := apperrors.Validation("not enough money")
	assert.Equal(t, validation, translateDBError(validation))

	assert.NoError(t, translateDBError(nil))
}

func TestNewStorageNilPool(t *testing.T) {
	_, err := NewStorage(nil)
	assert.Error(t, err)
}
