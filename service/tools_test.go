package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox-api/domain"
)

func TestCountText(t *testing.T) {
	stats, err := CountText("Hello world. How are you?\n\nSecond paragraph!")
	require.NoError(t, err)
	assert.Equal(t, domain.TextStats{
		Characters:         44,
		CharactersNoSpaces: 37,
		Words:              7,
		Lines:              3,
		Paragraphs:         2,
		Sentences:          3,
	}, stats)
}

func TestCountText_Blank(t *testing.T) {
	stats, err := CountText("  \n ")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Characters)
	assert.Zero(t, stats.CharactersNoSpaces)
	assert.Zero(t, stats.Words)
	assert.Equal(t, 2, stats.Lines)
	assert.Zero(t, stats.Paragraphs)
	assert.Zero(t, stats.Sentences)

	stats, err = CountText("")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Lines)
}

func TestCountText_Unicode(t *testing.T) {
	stats, err := CountText("héllo wörld")
	require.NoError(t, err)
	assert.Equal(t, 11, stats.Characters)
	assert.Equal(t, 2, stats.Words)
}

func TestBase64(t *testing.T) {
	assert.Equal(t, "aMOpbGxv", Base64Encode("héllo"))

	out, err := Base64Decode("aMOpbGxv")
	require.NoError(t, err)
	assert.Equal(t, "héllo", out)

	out, err = Base64Decode("aGk")
	require.NoError(t, err, "unpadded input")
	assert.Equal(t, "hi", out)

	_, err = Base64Decode("not base64!")
	assert.True(t, domain.IsValidationError(err))
}

const sampleJSON = `{"name":"John Doe","age":30,"city":"New York","hobbies":["reading","swimming","coding"],` +
	`"address":{"street":"123 Main St","zipcode":"10001","country":"USA"},"active":true,"metadata":null}`

func TestFormatJSON_PreservesKeyOrder(t *testing.T) {
	out, err := FormatJSON(`{"b":1,"a":[1,2]}`, 2)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    1,\n    2\n  ]\n}", out)

	out, err = FormatJSON(`{"b": 1}`, 4)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"b\": 1\n}", out)

	out, err = FormatJSON(` { "b" : 1 } `, 0)
	require.NoError(t, err)
	assert.Equal(t, `{"b":1}`, out)

	_, err = FormatJSON(`{"b":1}`, 9)
	assert.True(t, domain.IsValidationError(err))
}

func TestMinifyAndValidateJSON(t *testing.T) {
	formatted, err := FormatJSON(sampleJSON, 2)
	require.NoError(t, err)
	minified, err := MinifyJSON(formatted)
	require.NoError(t, err)
	assert.Equal(t, sampleJSON, minified)

	assert.NoError(t, ValidateJSON(sampleJSON))
	for _, bad := range []string{``, `{`, `{"a":1} {"b":2}`, `{'a':1}`} {
		assert.True(t, domain.IsValidationError(ValidateJSON(bad)), "input %q", bad)
	}
	_, err = MinifyJSON(`[1,`)
	assert.True(t, domain.IsValidationError(err))
}

func TestJSONStatistics(t *testing.T) {
	stats, err := JSONStatistics(sampleJSON)
	require.NoError(t, err)
	assert.Equal(t, domain.JSONStats{
		Characters: len(sampleJSON),
		Size:       len(sampleJSON),
		Keys:       10,
		Values:     21,
		Objects:    2,
		Arrays:     1,
	}, stats)
}

func TestQueryJSON(t *testing.T) {
	_, err := QueryJSON(sampleJSON, "$.address.city")
	require.Error(t, err, "missing key")
	assert.True(t, domain.IsValidationError(err))

	out, err := QueryJSON(sampleJSON, "$.address.zipcode")
	require.NoError(t, err)
	assert.Equal(t, `"10001"`, out)

	out, err = QueryJSON(sampleJSON, "$.age")
	require.NoError(t, err)
	assert.Equal(t, `30`, out)

	_, err = QueryJSON(sampleJSON, " ")
	assert.True(t, domain.IsValidationError(err))
}

func TestGenerateUUIDs(t *testing.T) {
	ids, err := GenerateUUIDs(domain.UUIDInput{Count: 5})
	require.NoError(t, err)
	require.Len(t, ids, 5)

	seen := map[string]bool{}
	for _, id := range ids {
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())
		assert.False(t, seen[id])
		seen[id] = true
	}

	ids, err = GenerateUUIDs(domain.UUIDInput{Version: "v1", Count: 2})
	require.NoError(t, err)
	parsed, err := uuid.Parse(ids[0])
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(1), parsed.Version())

	_, err = GenerateUUIDs(domain.UUIDInput{Count: MaxUUIDCount + 1})
	assert.True(t, domain.IsValidationError(err))
	_, err = GenerateUUIDs(domain.UUIDInput{Version: "v7", Count: 1})
	assert.True(t, domain.IsValidationError(err))
}

func TestConvertColor(t *testing.T) {
	tests := []struct {
		in   string
		want domain.ColorResult
	}{
		{"#3b82f6", domain.ColorResult{Hex: "#3b82f6", RGB: domain.RGB{R: 59, G: 130, B: 246}, HSL: domain.HSL{H: 217, S: 91, L: 60}}},
		{"EF4444", domain.ColorResult{Hex: "#ef4444", RGB: domain.RGB{R: 239, G: 68, B: 68}, HSL: domain.HSL{H: 0, S: 84, L: 60}}},
		{"#808080", domain.ColorResult{Hex: "#808080", RGB: domain.RGB{R: 128, G: 128, B: 128}, HSL: domain.HSL{H: 0, S: 0, L: 50}}},
	}
	for _, tt := range tests {
		got, err := ConvertColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "#fff", "#12345g", "blue"} {
		_, err := ConvertColor(bad)
		assert.True(t, domain.IsValidationError(err), "input %q", bad)
	}

	for _, preset := range PresetColors {
		_, err := ConvertColor(preset)
		assert.NoError(t, err, preset)
	}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2 + 3", 5},
		{"2 + 3 * 4", 20},
		{"10 / 4", 2.5},
		{"-3 - -2", -1},
		{"1.5e2 - 50", 100},
		{"7 × 6 ÷ 2", 21},
		{"42", 42},
	}
	for _, tt := range tests {
		got, err := Calculate(tt.expr)
		require.NoError(t, err, tt.expr)
		assert.InDelta(t, tt.want, got.Value, 1e-12, tt.expr)
	}

	for _, bad := range []string{"", "1 +", "+ 1", "1 / 0", "2 ^ 3", "1 2"} {
		_, err := Calculate(bad)
		assert.True(t, domain.IsValidationError(err), "expression %q", bad)
	}
}

func TestSearchTools(t *testing.T) {
	all, err := SearchTools("", "")
	require.NoError(t, err)
	assert.Len(t, all.Tools, len(Tools()))
	assert.Equal(t, len(Tools()), all.Total)

	mathTools, err := SearchTools("", "math")
	require.NoError(t, err)
	for _, tool := range mathTools.Tools {
		assert.Equal(t, "math", tool.Category)
	}

	found, err := SearchTools("BASE64", "all")
	require.NoError(t, err)
	require.Len(t, found.Tools, 1)
	assert.Equal(t, "base64-encoder", found.Tools[0].ID)

	found, err = SearchTools("colors", "")
	require.NoError(t, err, "description matches too")
	require.Len(t, found.Tools, 1)

	none, err := SearchTools("base64", "math")
	require.NoError(t, err)
	assert.Empty(t, none.Tools)

	_, err = SearchTools("", "games")
	assert.True(t, domain.IsValidationError(err))
}

func TestCategories(t *testing.T) {
	total := 0
	for _, c := range Categories() {
		if c.ID == "all" {
			assert.Equal(t, len(Tools()), c.Count)
			continue
		}
		total += c.Count
	}
	assert.Equal(t, len(Tools()), total)
}

func TestFormatting(t *testing.T) {
	s, err := FormatCurrency(5208.333333, "USD")
	require.NoError(t, err)
	assert.Equal(t, "$5,208.33", s)

	_, err = FormatCurrency(1, "XXX-NOPE")
	assert.Error(t, err)

	assert.Equal(t, "22.4150%", FormatPercentage(22.41502, 4))
	assert.Equal(t, 2.35, RoundMoney(2.345))
	assert.True(t, strings.HasSuffix(FormatPercentage(1, 2), "%"))
}
