package storage

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AlenaMolokova/checks/internal/apperrors"
	"github.com/AlenaMolokova/checks/internal/models"
)

type Storage struct {
	db *pgxpool.Pool
}

func NewStorage(db *pgxpool.Pool) (*Storage, error) {
	if db == nil {
		return nil, errors.New("database pool is nil")
	}
	return &Storage{db: db}, nil
}

// withTx runs fn inside a single transaction: begin, fn, commit, with
// rollback on any failure. Every error leaving here is translated into the
// application taxonomy; no other layer inspects pg error codes.
func (s *Storage) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("Failed to begin transaction: %v", err)
		return apperrors.Internal("could not begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return translateDBError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return translateDBError(err)
	}
	return nil
}

func (s *Storage) CreateUser(ctx context.Context, firstName, lastName, email, passwordHash string) (int64, error) {
	var id int64
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`INSERT INTO users (first_name, last_name, email, password_hash)
			 VALUES ($1, $2, $3, $4)
			 RETURNING user_id`,
			firstName, lastName, email, passwordHash,
		).Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.getUser(ctx, `WHERE email = $1`, email)
}

func (s *Storage) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return s.getUser(ctx, `WHERE user_id = $1`, id)
}

func (s *Storage) getUser(ctx context.Context, where string, arg any) (models.User, error) {
	var user models.User
	err := s.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT user_id, first_name, last_name, email, password_hash, create_date FROM users %s`, where),
		arg,
	).Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash, &user.CreateDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, apperrors.NotFound("user not found")
		}
		return models.User{}, translateDBError(err)
	}
	return user, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.Query(ctx,
		`SELECT user_id, first_name, last_name, email, password_hash, create_date
		 FROM users
		 ORDER BY user_id`)
	if err != nil {
		return nil, translateDBError(err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash, &user.CreateDate); err != nil {
			return nil, translateDBError(err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, translateDBError(err)
	}
	return users, nil
}
