package handlers

import (
	_ "embed"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AlenaMolokova/checks/internal/constants"
	"github.com/AlenaMolokova/checks/internal/usecase"
)

//go:embed templates/invoice.html
var invoiceHTML string

var invoiceTemplate = template.Must(template.New("invoice").Parse(invoiceHTML))

// Human-readable payment labels for the public receipt page.
var paymentLabels = map[string]string{
	constants.PaymentTypeCash:     "Готівка",
	constants.PaymentTypeCashless: "Карта",
}

// CheckPublicHandler renders the unauthenticated HTML receipt addressed by
// the check's opaque token. Internal identifiers never reach the template.
type CheckPublicHandler struct {
	checks CheckService
}

func NewCheckPublicHandler(checks CheckService) *CheckPublicHandler {
	return &CheckPublicHandler{checks: checks}
}

func (h *CheckPublicHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	view, err := h.checks.GetCheckByToken(r.Context(), token)
	if err != nil {
		log.Printf("Failed to get public check %s: %v", token, err)
		writeAppError(w, err)
		return
	}

	data := struct {
		Check        usecase.PublicCheckView
		PaymentLabel string
	}{
		Check:        view.Public(),
		PaymentLabel: paymentLabels[view.Payment.Type],
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := invoiceTemplate.Execute(w, data); err != nil {
		log.Printf("Failed to render invoice for token %s: %v", token, err)
	}
}
