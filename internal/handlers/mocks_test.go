package handlers

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/AlenaMolokova/checks/internal/auth"
	"github.com/AlenaMolokova/checks/internal/middleware"
	"github.com/AlenaMolokova/checks/internal/models"
	"github.com/AlenaMolokova/checks/internal/usecase"
	"github.com/AlenaMolokova/checks/internal/utils"
)

type MockAuthConnector struct {
	mock.Mock
}

func (m *MockAuthConnector) Register(ctx context.Context, firstName, lastName, email, password string) (auth.UserView, error) {
	args := m.Called(ctx, firstName, lastName, email, password)
	return args.Get(0).(auth.UserView), args.Error(1)
}

func (m *MockAuthConnector) Login(ctx context.Context, email, password string) (auth.TokenPair, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(auth.TokenPair), args.Error(1)
}

func (m *MockAuthConnector) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(auth.TokenPair), args.Error(1)
}

type MockCheckService struct {
	mock.Mock
}

func (m *MockCheckService) CreateCheck(ctx context.Context, user models.User, payment usecase.Payment, products []usecase.Product) (usecase.CheckView, error) {
	args := m.Called(ctx, user, payment, products)
	return args.Get(0).(usecase.CheckView), args.Error(1)
}

func (m *MockCheckService) GetCheckByID(ctx context.Context, userID, checkID int64) (usecase.CheckView, error) {
	args := m.Called(ctx, userID, checkID)
	return args.Get(0).(usecase.CheckView), args.Error(1)
}

func (m *MockCheckService) GetCheckByToken(ctx context.Context, token string) (usecase.CheckView, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(usecase.CheckView), args.Error(1)
}

func (m *MockCheckService) ListChecks(ctx context.Context, userID int64, filters models.CheckFilters, page, size int) (utils.Page[usecase.CheckView], error) {
	args := m.Called(ctx, userID, filters, page, size)
	return args.Get(0).(utils.Page[usecase.CheckView]), args.Error(1)
}

// authedRequest attaches an authenticated user to the request context the
// same way the bearer gate does.
func authedRequest(req *http.Request, user models.User) *http.Request {
	return req.WithContext(middleware.WithUser(req.Context(), user))
}
