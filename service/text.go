package service

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"toolbox-api/domain"
)

var (
	paragraphBreak = regexp.MustCompile(`\n\s*\n`)
	sentenceEnd    = regexp.MustCompile(`[.!?]+`)
)

// CountText computes character, word, line, paragraph and sentence counts.
// Characters are counted as Unicode code points.
func CountText(text string) (domain.TextStats, error) {
	if len(text) > MaxTextLength {
		return domain.TextStats{}, domain.Invalid("text", "longer than %d bytes", MaxTextLength)
	}

	stats := domain.TextStats{
		Characters: utf8.RuneCountInString(text),
		CharactersNoSpaces: utf8.RuneCountInString(strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, text)),
		Words: len(strings.Fields(text)),
		Lines: strings.Count(text, "\n") + 1,
	}

	if strings.TrimSpace(text) == "" {
		return stats, nil
	}

	stats.Paragraphs = len(paragraphBreak.Split(text, -1))
	for _, s := range sentenceEnd.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			stats.Sentences++
		}
	}
	return stats, nil
}
