package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AlenaMolokova/checks/internal/models"
)

type MockUserStorage struct {
	mock.Mock
}

func (m *MockUserStorage) CreateUser(ctx context.Context, firstName, lastName, email, passwordHash string) (int64, error) {
	args := m.Called(ctx, firstName, lastName, email, passwordHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserStorage) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserStorage) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserStorage) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

type MockCheckStorage struct {
	mock.Mock
}

func (m *MockCheckStorage) CreateCheck(ctx context.Context, check models.Check, products []models.ProductCheck) (models.Check, []models.ProductCheck, error) {
	args := m.Called(ctx, check, products)
	return args.Get(0).(models.Check), args.Get(1).([]models.ProductCheck), args.Error(2)
}

func (m *MockCheckStorage) GetCheckByID(ctx context.Context, customerID, checkID int64) (models.CheckSummary, []models.ProductCheck, error) {
	args := m.Called(ctx, customerID, checkID)
	return args.Get(0).(models.CheckSummary), args.Get(1).([]models.ProductCheck), args.Error(2)
}

func (m *MockCheckStorage) GetCheckByToken(ctx context.Context, token string) (models.CheckSummary, []models.ProductCheck, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(models.CheckSummary), args.Get(1).([]models.ProductCheck), args.Error(2)
}

func (m *MockCheckStorage) ListChecksByUser(ctx context.Context, customerID int64, filters models.CheckFilters) ([]models.CheckSummary, map[int64][]models.ProductCheck, error) {
	args := m.Called(ctx, customerID, filters)
	return args.Get(0).([]models.CheckSummary), args.Get(1).(map[int64][]models.ProductCheck), args.Error(2)
}
