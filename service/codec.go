package service

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"toolbox-api/domain"
)

func Base64Encode(input string) string {
	return base64.StdEncoding.EncodeToString([]byte(input))
}

// Base64Decode accepts standard Base64 with or without padding.
func Base64Decode(input string) (string, error) {
	input = strings.TrimSpace(input)
	out, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		var rawErr error
		out, rawErr = base64.RawStdEncoding.DecodeString(input)
		if rawErr != nil {
			return "", domain.Invalid("input", "invalid Base64: %v", err)
		}
	}
	return string(out), nil
}

func invalidJSON(err error) error {
	return domain.Invalid("input", "invalid JSON: %v", err)
}

// FormatJSON re-indents input keeping object keys in their original order.
func FormatJSON(input string, indent int) (string, error) {
	if indent < 0 || indent > MaxJSONIndent {
		return "", domain.Invalid("indent", "must be between 0 and %d", MaxJSONIndent)
	}
	if err := ValidateJSON(input); err != nil {
		return "", err
	}
	if indent == 0 {
		return MinifyJSON(input)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(strings.TrimSpace(input)), "", strings.Repeat(" ", indent)); err != nil {
		return "", invalidJSON(err)
	}
	return buf.String(), nil
}

func MinifyJSON(input string) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(input)); err != nil {
		return "", invalidJSON(err)
	}
	return buf.String(), nil
}

// ValidateJSON returns nil when input is a single valid JSON value.
func ValidateJSON(input string) error {
	_, err := decodeJSON(input)
	return err
}

func decodeJSON(input string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, invalidJSON(err)
	}
	if dec.More() {
		return nil, invalidJSON(errors.New("trailing data after value"))
	}
	return v, nil
}

// JSONStatistics counts the structure of input. Every object member counts
// as one key and one value; every scalar counts as a value.
func JSONStatistics(input string) (domain.JSONStats, error) {
	v, err := decodeJSON(input)
	if err != nil {
		return domain.JSONStats{}, err
	}

	stats := domain.JSONStats{
		Characters: len([]rune(input)),
		Size:       len(input),
	}
	var walk func(any)
	walk = func(v any) {
		switch t := v.(type) {
		case []any:
			stats.Arrays++
			for _, item := range t {
				walk(item)
			}
		case map[string]any:
			stats.Objects++
			for _, item := range t {
				stats.Keys++
				stats.Values++
				walk(item)
			}
		default:
			stats.Values++
		}
	}
	walk(v)
	return stats, nil
}

// QueryJSON evaluates a JSONPath expression such as "$.hobbies[0]" and
// returns the match re-encoded as indented JSON.
func QueryJSON(input, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", domain.Invalid("path", "must not be empty")
	}
	var v any
	if err := json.Unmarshal([]byte(input), &v); err != nil {
		return "", invalidJSON(err)
	}

	match, err := jsonpath.Get(path, v)
	if err != nil {
		return "", domain.Invalid("path", "%v", err)
	}

	out, err := json.MarshalIndent(match, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding query result: %w", err)
	}
	return string(out), nil
}
