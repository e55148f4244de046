package handlers

import (
	"log"
	"net/http"

	"github.com/AlenaMolokova/checks/internal/auth"
	"github.com/AlenaMolokova/checks/internal/utils"
)

type UsersListHandler struct {
	store UserLister
}

func NewUsersListHandler(store UserLister) *UsersListHandler {
	return &UsersListHandler{store: store}
}

func (h *UsersListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		log.Printf("Failed to list users: %v", err)
		writeAppError(w, err)
		return
	}

	views := make([]auth.UserView, len(users))
	for i, user := range users {
		views[i] = auth.UserView{
			UserID:    user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
		}
	}
	utils.WriteJSON(w, http.StatusOK, views)
}
