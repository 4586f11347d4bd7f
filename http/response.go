package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"toolbox-api/domain"
	"toolbox-api/service"
)

const maxBodyBytes = 11 << 20

// decodeBody reads a JSON request body into v, answering 405/400 itself.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if _, err := dec.Token(); err != io.EOF {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// writeJSON encodes into a buffer first so a failed encode can still send a 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// writeError maps service errors to status codes.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrDuplicateCalculation):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Printf("Error handling request: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// displayAmounts formats amounts in currency. It returns nil when no
// currency is set or the code is unknown.
func displayAmounts(currency string, amounts map[string]float64) map[string]string {
	if currency == "" {
		return nil
	}
	out := make(map[string]string, len(amounts))
	for name, amount := range amounts {
		s, err := service.FormatCurrency(amount, currency)
		if err != nil {
			log.Printf("Warning: failed to format %s in %s: %v", name, currency, err)
			return nil
		}
		out[name] = s
	}
	return out
}
