package mailto

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	blockPattern   = regexp.MustCompile(`(?is)<(script|style)\b[^>]*>.*?</(script|style)\s*>`)
	tagPattern     = regexp.MustCompile(`(?s)<[^>]*>`)
	schemePattern  = regexp.MustCompile(`(?i)(javascript|vbscript|data)\s*:`)
	handlerPattern = regexp.MustCompile(`(?i)on[a-z]+\s*=`)
	blankLines     = regexp.MustCompile(`\n{3,}`)
)

// Sanitize alan değerinden html ve script benzeri içerikleri temizler,
// sonucu max karakterle sınırlar
func Sanitize(s string, max int) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = blockPattern.ReplaceAllString(s, "")
	s = tagPattern.ReplaceAllString(s, "")
	s = schemePattern.ReplaceAllString(s, "")
	s = handlerPattern.ReplaceAllString(s, "")

	s = strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r == '\r':
			return '\n'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
	s = blankLines.ReplaceAllString(s, "\n\n")
	s = strings.TrimSpace(s)

	return truncate(s, max)
}

// SanitizeLine tek satırlık alanlar için satır sonlarını boşluğa çevirir
func SanitizeLine(s string, max int) string {
	s = Sanitize(s, 0)
	s = strings.Join(strings.Fields(s), " ")
	return truncate(s, max)
}

func truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max]))
}
