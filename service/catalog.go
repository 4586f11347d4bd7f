package service

import (
	"strings"

	"toolbox-api/domain"
)

var tools = []domain.Tool{
	{ID: "text-counter", Name: "Text Counter", Description: "Count characters, words, and lines in text", Category: "text", Path: "/text/count"},
	{ID: "color-picker", Name: "Color Picker", Description: "Pick colors and get hex, RGB, HSL values", Category: "color", Path: "/color"},
	{ID: "base64-encoder", Name: "Base64 Encoder/Decoder", Description: "Encode and decode Base64 strings", Category: "converter", Path: "/base64"},
	{ID: "uuid-generator", Name: "UUID Generator", Description: "Generate random UUIDs", Category: "utility", Path: "/uuid"},
	{ID: "json-formatter", Name: "JSON Formatter", Description: "Format and validate JSON data", Category: "utility", Path: "/json"},
	{ID: "apr-calculator", Name: "APR Calculator", Description: "Calculate Annual Percentage Rate for loans and investments", Category: "math", Path: "/loan/apr"},
	{ID: "fixed-fee-calculator", Name: "Fixed Fee Calculator", Description: "Calculate fixed fees, commissions, and service charges", Category: "math", Path: "/loan/fixed-fee"},
	{ID: "calculator", Name: "Calculator", Description: "Basic arithmetic calculator", Category: "math", Path: "/calculator"},
}

var categories = []struct{ ID, Name string }{
	{"all", "All"},
	{"math", "Math"},
	{"text", "Text"},
	{"color", "Color"},
	{"converter", "Converter"},
	{"utility", "Utility"},
}

// Tools returns a copy of the catalog.
func Tools() []domain.Tool {
	return append([]domain.Tool(nil), tools...)
}

// Categories returns every category with the number of tools in it.
func Categories() []domain.Category {
	out := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		count := 0
		for _, t := range tools {
			if c.ID == "all" || t.Category == c.ID {
				count++
			}
		}
		out = append(out, domain.Category{ID: c.ID, Name: c.Name, Count: count})
	}
	return out
}

// SearchTools matches query case-insensitively against tool names and
// descriptions. An empty category or "all" does not filter.
func SearchTools(query, category string) (domain.ToolSearchResult, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = "all"
	}
	known := false
	for _, c := range categories {
		known = known || c.ID == category
	}
	if !known {
		return domain.ToolSearchResult{}, domain.Invalid("category", "unknown category %q", category)
	}

	query = strings.ToLower(query)
	matches := []domain.Tool{}
	for _, t := range tools {
		matchesSearch := strings.Contains(strings.ToLower(t.Name), query) ||
			strings.Contains(strings.ToLower(t.Description), query)
		if matchesSearch && (category == "all" || t.Category == category) {
			matches = append(matches, t)
		}
	}

	return domain.ToolSearchResult{
		Tools:      matches,
		Total:      len(tools),
		Categories: Categories(),
	}, nil
}
