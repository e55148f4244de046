package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AlenaMolokova/checks/internal/apperrors"
	"github.com/AlenaMolokova/checks/internal/models"
	"github.com/AlenaMolokova/checks/internal/testutils"
)

func TestUsersListHandler_ServeHTTP(t *testing.T) {
	store := new(testutils.MockUserStorage)
	store.On("ListUsers", mock.Anything).Return([]models.User{
		{ID: 1, FirstName: "Boris", LastName: "Johnson", Email: "b@x.com", PasswordHash: "secret-hash"},
		{ID: 2, FirstName: "Anna", LastName: "Koval", Email: "a@x.com", PasswordHash: "secret-hash"},
	}, nil)

	handler := NewUsersListHandler(store)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/list", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"user_id":1`)
	assert.Contains(t, body, "a@x.com")
	// хеш пароля не должен утекать в ответ
	assert.NotContains(t, body, "secret-hash")
}

func TestUsersListHandler_StorageError(t *testing.T) {
	store := new(testutils.MockUserStorage)
	store.On("ListUsers", mock.Anything).Return([]models.User(nil), apperrors.Internal("db down"))

	handler := NewUsersListHandler(store)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/list", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}
