package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/AlenaMolokova/checks/internal/utils"
	"github.com/AlenaMolokova/checks/internal/validation"
)

type RegisterHandler struct {
	connector AuthConnector
	passwords validation.PasswordValidator
}

func NewRegisterHandler(connector AuthConnector) *RegisterHandler {
	return &RegisterHandler{
		connector: connector,
		passwords: validation.NewDefaultPasswordValidator(),
	}
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Failed to decode register request: %v", err)
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		utils.WriteJSONError(w, http.StatusBadRequest, "First name, last name, email and password are required")
		return
	}

	if !h.passwords.ValidatePassword(req.Password) {
		log.Printf("Invalid password for email %s", req.Email)
		utils.WriteJSONError(w, http.StatusBadRequest, "Password must be at least 8 characters long and contain letters")
		return
	}

	user, err := h.connector.Register(r.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		log.Printf("Failed to register user %s: %v", req.Email, err)
		writeAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, user)
}
