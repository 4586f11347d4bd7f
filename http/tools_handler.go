package http

import (
	"net/http"

	"toolbox-api/domain"
	"toolbox-api/service"
)

type TextRequest struct {
	Text string
}

type CodecRequest struct {
	Input string
}

type CodecResponse struct {
	Output string
}

type JSONRequest struct {
	Input  string
	Indent *int
	Path   string
}

type JSONValidation struct {
	Valid bool
	Error string `json:",omitempty"`
}

type UUIDResponse struct {
	UUIDs []string
}

type ColorRequest struct {
	Hex string
}

// ToolsHandler serves the small stateless tools.
type ToolsHandler struct{}

func NewToolsHandler() *ToolsHandler {
	return &ToolsHandler{}
}

func (h *ToolsHandler) SearchTools(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	result, err := service.SearchTools(q.Get("q"), q.Get("category"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ToolsHandler) CountText(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !decodeBody(w, r, &req) {
		return
	}
	stats, err := service.CountText(req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *ToolsHandler) Base64Encode(w http.ResponseWriter, r *http.Request) {
	var req CodecRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, CodecResponse{Output: service.Base64Encode(req.Input)})
}

func (h *ToolsHandler) Base64Decode(w http.ResponseWriter, r *http.Request) {
	var req CodecRequest
	if !decodeBody(w, r, &req) {
		return
	}
	out, err := service.Base64Decode(req.Input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CodecResponse{Output: out})
}

func (h *ToolsHandler) FormatJSON(w http.ResponseWriter, r *http.Request) {
	var req JSONRequest
	if !decodeBody(w, r, &req) {
		return
	}
	indent := service.DefaultJSONIndent
	if req.Indent != nil {
		indent = *req.Indent
	}
	out, err := service.FormatJSON(req.Input, indent)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CodecResponse{Output: out})
}

func (h *ToolsHandler) MinifyJSON(w http.ResponseWriter, r *http.Request) {
	var req JSONRequest
	if !decodeBody(w, r, &req) {
		return
	}
	out, err := service.MinifyJSON(req.Input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CodecResponse{Output: out})
}

// ValidateJSON always answers 200; invalid input is reported in the body.
func (h *ToolsHandler) ValidateJSON(w http.ResponseWriter, r *http.Request) {
	var req JSONRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := service.ValidateJSON(req.Input); err != nil {
		writeJSON(w, http.StatusOK, JSONValidation{Valid: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, JSONValidation{Valid: true})
}

func (h *ToolsHandler) JSONStats(w http.ResponseWriter, r *http.Request) {
	var req JSONRequest
	if !decodeBody(w, r, &req) {
		return
	}
	stats, err := service.JSONStatistics(req.Input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *ToolsHandler) QueryJSON(w http.ResponseWriter, r *http.Request) {
	var req JSONRequest
	if !decodeBody(w, r, &req) {
		return
	}
	out, err := service.QueryJSON(req.Input, req.Path)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CodecResponse{Output: out})
}

func (h *ToolsHandler) GenerateUUIDs(w http.ResponseWriter, r *http.Request) {
	var input domain.UUIDInput
	if !decodeBody(w, r, &input) {
		return
	}
	ids, err := service.GenerateUUIDs(input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, UUIDResponse{UUIDs: ids})
}

func (h *ToolsHandler) ConvertColor(w http.ResponseWriter, r *http.Request) {
	var req ColorRequest
	if !decodeBody(w, r, &req) {
		return
	}
	color, err := service.ConvertColor(req.Hex)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, color)
}

func (h *ToolsHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var input domain.CalculatorInput
	if !decodeBody(w, r, &input) {
		return
	}
	result, err := service.Calculate(input.Expression)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
