package http

import (
	"net/http"

	"toolbox-api/domain"
	"toolbox-api/service"
)

type APRHandler struct {
	service *service.APRService
}

func NewAPRHandler(service *service.APRService) *APRHandler {
	return &APRHandler{service: service}
}

func (h *APRHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var input domain.APRInput
	if !decodeBody(w, r, &input) {
		return
	}

	result, err := h.service.Solve(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
