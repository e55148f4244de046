package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/AlenaMolokova/checks/internal/middleware"
	"github.com/AlenaMolokova/checks/internal/usecase"
	"github.com/AlenaMolokova/checks/internal/utils"
)

type CheckCreateHandler struct {
	checks CheckService
}

func NewCheckCreateHandler(checks CheckService) *CheckCreateHandler {
	return &CheckCreateHandler{checks: checks}
}

func (h *CheckCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		log.Printf("Unauthorized: missing user in context")
		utils.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Payment  usecase.Payment   `json:"payment"`
		Products []usecase.Product `json:"products"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Failed to decode check request: %v", err)
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	view, err := h.checks.CreateCheck(r.Context(), user, req.Payment, req.Products)
	if err != nil {
		log.Printf("Failed to create check for user %d: %v", user.ID, err)
		writeAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, view)
}
