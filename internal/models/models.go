package models

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreateDate   pgtype.Timestamptz
}

type Check struct {
	ID         int64
	Token      string
	URL        string
	Type       string
	Amount     float64
	CreatedAt  pgtype.Timestamptz
	CustomerID int64
}

type ProductCheck struct {
	ID       int64
	CheckID  int64
	Name     string
	Quantity float64
	Price    float64
}

// CheckSummary is one row of the aggregate check queries: the check itself
// plus the computed total, rest and the owner's display name.
type CheckSummary struct {
	Check        Check
	Total        float64
	Rest         float64
	CustomerName string
}

// CheckFilters are the optional predicates of the my-checks listing.
// Nil fields are not applied; set fields combine with AND.
type CheckFilters struct {
	TotalGreaterThan *float64
	PaymentType      *string
	CreatedFrom      *pgtype.Timestamptz
}

type UserStorage interface {
	CreateUser(ctx context.Context, firstName, lastName, email, passwordHash string) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, id int64) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
}

type CheckStorage interface {
	CreateCheck(ctx context.Context, check Check, products []ProductCheck) (Check, []ProductCheck, error)
	GetCheckByID(ctx context.Context, customerID, checkID int64) (CheckSummary, []ProductCheck, error)
	GetCheckByToken(ctx context.Context, token string) (CheckSummary, []ProductCheck, error)
	ListChecksByUser(ctx context.Context, customerID int64, filters CheckFilters) ([]CheckSummary, map[int64][]ProductCheck, error)
}
