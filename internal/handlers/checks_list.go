package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/AlenaMolokova/checks/internal/constants"
	"github.com/AlenaMolokova/checks/internal/middleware"
	"github.com/AlenaMolokova/checks/internal/models"
	"github.com/AlenaMolokova/checks/internal/utils"
)

type ChecksListHandler struct {
	checks CheckService
}

func NewChecksListHandler(checks CheckService) *ChecksListHandler {
	return &ChecksListHandler{checks: checks}
}

func (h *ChecksListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		log.Printf("Unauthorized: missing user in context")
		utils.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var filters models.CheckFilters
	query := r.URL.Query()

	if raw := query.Get("total_sum"); raw != "" {
		totalSum, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.WriteJSONError(w, http.StatusUnprocessableEntity, "total_sum must be a number")
			return
		}
		filters.TotalGreaterThan = &totalSum
	}

	if raw := query.Get("payment_type"); raw != "" {
		if !constants.IsValidPaymentType(raw) {
			utils.WriteJSONError(w, http.StatusUnprocessableEntity, "payment_type must be cash or cashless")
			return
		}
		filters.PaymentType = &raw
	}

	if raw := query.Get("greater_than_date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.WriteJSONError(w, http.StatusUnprocessableEntity, "greater_than_date must be YYYY-MM-DD")
			return
		}
		filters.CreatedFrom = &pgtype.Timestamptz{Time: date, Valid: true}
	}

	page := parsePositiveInt(query.Get("page"), constants.DefaultPage)
	size := parsePositiveInt(query.Get("size"), constants.DefaultPageSize)

	result, err := h.checks.ListChecks(r.Context(), user.ID, filters, page, size)
	if err != nil {
		log.Printf("Failed to list checks for user %d: %v", user.ID, err)
		writeAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
