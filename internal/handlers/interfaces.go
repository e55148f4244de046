package handlers

import (
	"context"

	"github.com/AlenaMolokova/checks/internal/auth"
	"github.com/AlenaMolokova/checks/internal/models"
	"github.com/AlenaMolokova/checks/internal/usecase"
	"github.com/AlenaMolokova/checks/internal/utils"
)

type AuthConnector interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (auth.UserView, error)
	Login(ctx context.Context, email, password string) (auth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error)
}

type CheckService interface {
	CreateCheck(ctx context.Context, user models.User, payment usecase.Payment, products []usecase.Product) (usecase.CheckView, error)
	GetCheckByID(ctx context.Context, userID, checkID int64) (usecase.CheckView, error)
	GetCheckByToken(ctx context.Context, token string) (usecase.CheckView, error)
	ListChecks(ctx context.Context, userID int64, filters models.CheckFilters, page, size int) (utils.Page[usecase.CheckView], error)
}

type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}
