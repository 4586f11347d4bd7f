package http

import (
	"net/http"

	"toolbox-api/domain"
	"toolbox-api/service"
)

type LoanResponse struct {
	domain.LoanResult
	Display map[string]string `json:",omitempty"`
}

type LoanHandler struct {
	service  *service.LoanService
	currency string
}

func NewLoanHandler(service *service.LoanService, currency string) *LoanHandler {
	return &LoanHandler{service: service, currency: currency}
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInput
	if !decodeBody(w, r, &input) {
		return
	}

	result, err := h.service.CalculateLoan(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LoanResponse{
		LoanResult: result,
		Display: displayAmounts(h.currency, map[string]float64{
			"MonthlyPayment": result.MonthlyPayment,
			"TotalInterest":  result.TotalInterest,
			"TotalPayment":   result.TotalPayment,
		}),
	})
}
