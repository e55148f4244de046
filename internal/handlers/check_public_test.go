package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AlenaMolokova/checks/internal/apperrors"
	"github.com/AlenaMolokova/checks/internal/constants"
	"github.com/AlenaMolokova/checks/internal/usecase"
)

func TestCheckPublicHandler_ServeHTTP(t *testing.T) {
	view := usecase.CheckView{
		Payment:      usecase.Payment{Type: constants.PaymentTypeCash, Amount: 40},
		Products:     []usecase.Product{{Name: "Молоко", Price: 20, Quantity: 2}},
		CheckID:      5,
		CreatedAt:    time.Date(2024, 5, 4, 12, 30, 0, 0, time.UTC),
		Token:        "abc123",
		URL:          "http://localhost:8080/checks/abc123/show-public",
		Total:        40,
		Rest:         0,
		CustomerName: "Boris Johnson",
	}

	t.Run("страница чека", func(t *testing.T) {
		service := new(MockCheckService)
		service.On("GetCheckByToken", mock.Anything, "abc123").Return(view, nil)

		r := chi.NewRouter()
		r.Get("/checks/{token}/show-public", NewCheckPublicHandler(service).ServeHTTP)

		req := httptest.NewRequest(http.MethodGet, "/checks/abc123/show-public", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

		body := w.Body.String()
		assert.Contains(t, body, "Boris Johnson")
		assert.Contains(t, body, "Молоко")
		assert.Contains(t, body, "Готівка")
		assert.Contains(t, body, "40.00")

		// внутренние идентификаторы не должны попадать в публичную страницу
		assert.NotContains(t, body, "abc123")
		assert.NotContains(t, body, "check_id")
		assert.NotContains(t, body, view.URL)
	})

	t.Run("безналичная оплата", func(t *testing.T) {
		cashless := view
		cashless.Payment.Type = constants.PaymentTypeCashless

		service := new(MockCheckService)
		service.On("GetCheckByToken", mock.Anything, "abc123").Return(cashless, nil)

		r := chi.NewRouter()
		r.Get("/checks/{token}/show-public", NewCheckPublicHandler(service).ServeHTTP)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checks/abc123/show-public", nil))

		assert.Contains(t, w.Body.String(), "Карта")
	})

	t.Run("неизвестный токен", func(t *testing.T) {
		service := new(MockCheckService)
		service.On("GetCheckByToken", mock.Anything, "ghost").
			Return(usecase.CheckView{}, apperrors.NotFound("check not found"))

		r := chi.NewRouter()
		r.Get("/checks/{token}/show-public", NewCheckPublicHandler(service).ServeHTTP)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checks/ghost/show-public", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
