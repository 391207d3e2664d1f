package util

import (
	"strings"
	"unicode/utf8"
)

const bom = "\ufeff"

func NormalizeHeader(input string) string {
	s := strings.TrimPrefix(input, bom)
	return strings.TrimSpace(s)
}

func NormalizeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = NormalizeHeader(h)
	}
	return out
}

// KeepRunes returns input with every rune rejected by keep removed.
func KeepRunes(input string, keep func(rune) bool) string {
	out := strings.Builder{}
	out.Grow(len(input))
	for _, r := range input {
		if keep(r) {
			out.WriteRune(r)
		}
	}
	return out.String()
}

func IsNumericRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == '-'
}

func LastRune(input string) (rune, bool) {
	if input == "" {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(input)
	return r, true
}

func IsBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
