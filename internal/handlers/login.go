package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/AlenaMolokova/checks/internal/utils"
)

type LoginHandler struct {
	connector AuthConnector
}

func NewLoginHandler(connector AuthConnector) *LoginHandler {
	return &LoginHandler{connector: connector}
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserEmail string `json:"user_email"`
		Password  string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Failed to decode login request: %v", err)
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.UserEmail == "" || req.Password == "" {
		utils.WriteJSONError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	tokens, err := h.connector.Login(r.Context(), req.UserEmail, req.Password)
	if err != nil {
		log.Printf("Login failed for %s: %v", req.UserEmail, err)
		writeAppError(w, err)
		return
	}

	log.Printf("User %s authenticated", req.UserEmail)
	utils.WriteJSON(w, http.StatusOK, tokens)
}
