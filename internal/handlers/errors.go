package handlers

import (
	"log"
	"net/http"

	"github.com/AlenaMolokova/checks/internal/apperrors"
	"github.com/AlenaMolokova/checks/internal/utils"
)

// writeAppError renders a classified error as a JSON response. Internal
// errors are the only category whose cause is hidden from the caller and
// logged instead.
func writeAppError(w http.ResponseWriter, err error) {
	status := apperrors.Status(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		utils.WriteJSONError(w, status, "Internal server error")
		return
	}
	utils.WriteJSONError(w, status, err.Error())
}
