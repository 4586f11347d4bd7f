package http

import (
	"net/http"

	"toolbox-api/domain"
	"toolbox-api/service"
)

// FixedFeeResponse is the calculation plus its amounts formatted in the
// server's currency.
type FixedFeeResponse struct {
	domain.FixedFeeResult
	Display map[string]string `json:",omitempty"`
}

type FixedFeeHandler struct {
	service  *service.FixedFeeService
	currency string
}

func NewFixedFeeHandler(service *service.FixedFeeService, currency string) *FixedFeeHandler {
	return &FixedFeeHandler{service: service, currency: currency}
}

func (h *FixedFeeHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var input domain.FixedFeeInput
	if !decodeBody(w, r, &input) {
		return
	}

	result, err := h.service.Calculate(input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FixedFeeResponse{
		FixedFeeResult: result,
		Display: displayAmounts(h.currency, map[string]float64{
			"MonthlyPayment":    result.MonthlyPayment,
			"MCACost":           result.MCACost,
			"TotalInterestPaid": result.TotalInterestPaid,
		}),
	})
}

// History lists (GET), saves (POST) or clears (DELETE) saved calculations.
func (h *FixedFeeHandler) History(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		history, err := h.service.History(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, history)

	case http.MethodPost:
		var input domain.FixedFeeInput
		if !decodeBody(w, r, &input) {
			return
		}
		record, err := h.service.Save(r.Context(), input)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, record)

	case http.MethodDelete:
		if err := h.service.ClearHistory(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
