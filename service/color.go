package service

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"toolbox-api/domain"
)

// PresetColors is the palette offered by the color picker.
var PresetColors = []string{
	"#ef4444", "#f97316", "#f59e0b", "#eab308", "#84cc16", "#22c55e",
	"#10b981", "#14b8a6", "#06b6d4", "#0ea5e9", "#3b82f6", "#6366f1",
	"#8b5cf6", "#a855f7", "#d946ef", "#ec4899", "#f43f5e", "#6b7280",
	"#374151", "#1f2937", "#111827", "#000000", "#ffffff", "#f3f4f6",
}

// ConvertColor parses a 6-digit hex color, with or without '#', and returns
// its RGB and HSL forms rounded to integers.
func ConvertColor(hex string) (domain.ColorResult, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 7 || strings.Trim(strings.ToLower(hex[1:]), "0123456789abcdef") != "" {
		return domain.ColorResult{}, domain.Invalid("hex", "want #rrggbb, got %q", hex)
	}

	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return domain.ColorResult{}, domain.Invalid("hex", "want #rrggbb, got %q", hex)
	}

	r, g, b := c.RGB255()
	h, s, l := c.Hsl()
	if s == 0 {
		h = 0
	}

	return domain.ColorResult{
		Hex: c.Hex(),
		RGB: domain.RGB{R: int(r), G: int(g), B: int(b)},
		HSL: domain.HSL{
			H: int(math.Round(h)),
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}, nil
}
