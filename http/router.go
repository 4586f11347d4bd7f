package http

import (
	"net/http"
)

// Handlers bundles everything the router serves.
type Handlers struct {
	APR      *APRHandler
	Loan     *LoanHandler
	FixedFee *FixedFeeHandler
	Tools    *ToolsHandler
}

// NewRouter registers every route behind the rate limiter and request logging.
func NewRouter(h Handlers, limiter *RateLimiter) http.Handler {
	routes := map[string]http.HandlerFunc{
		"/tools":                  h.Tools.SearchTools,
		"/apr/solve":              h.APR.Solve,
		"/loan/apr":               h.Loan.CalculateLoan,
		"/loan/fixed-fee":         h.FixedFee.Calculate,
		"/loan/fixed-fee/history": h.FixedFee.History,
		"/text/count":             h.Tools.CountText,
		"/base64/encode":          h.Tools.Base64Encode,
		"/base64/decode":          h.Tools.Base64Decode,
		"/json/format":            h.Tools.FormatJSON,
		"/json/minify":            h.Tools.MinifyJSON,
		"/json/validate":          h.Tools.ValidateJSON,
		"/json/stats":             h.Tools.JSONStats,
		"/json/query":             h.Tools.QueryJSON,
		"/uuid":                   h.Tools.GenerateUUIDs,
		"/color":                  h.Tools.ConvertColor,
		"/calculator":             h.Tools.Calculate,
	}

	mux := http.NewServeMux()
	for path, handler := range routes {
		mux.Handle(path, RateLimitMiddleware(limiter, handler))
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return LoggingMiddleware(mux)
}
