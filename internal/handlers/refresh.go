package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/AlenaMolokova/checks/internal/utils"
)

type RefreshHandler struct {
	connector AuthConnector
}

func NewRefreshHandler(connector AuthConnector) *RefreshHandler {
	return &RefreshHandler{connector: connector}
}

func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Failed to decode refresh request: %v", err)
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Token == "" {
		utils.WriteJSONError(w, http.StatusBadRequest, "Token is required")
		return
	}

	tokens, err := h.connector.Refresh(r.Context(), req.Token)
	if err != nil {
		log.Printf("Token refresh failed: %v", err)
		writeAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, tokens)
}
