package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/AlenaMolokova/checks/internal/middleware"
	"github.com/AlenaMolokova/checks/internal/utils"
)

type CheckGetHandler struct {
	checks CheckService
}

func NewCheckGetHandler(checks CheckService) *CheckGetHandler {
	return &CheckGetHandler{checks: checks}
}

func (h *CheckGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		log.Printf("Unauthorized: missing user in context")
		utils.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	checkID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSONError(w, http.StatusUnprocessableEntity, "Check id must be an integer")
		return
	}

	view, err := h.checks.GetCheckByID(r.Context(), user.ID, checkID)
	if err != nil {
		log.Printf("Failed to get check %d for user %d: %v", checkID, user.ID, err)
		writeAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, view)
}
