package common

import "strings"

// FieldsAny splits s on any rune in seps and drops empty pieces.
func FieldsAny(s, seps string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return strings.ContainsRune(seps, r) })
}

// TrimEOL strips one trailing "\n" or "\r\n".
func TrimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// IsBlank reports whether s holds nothing but whitespace.
func IsBlank(s string) bool { return strings.TrimSpace(s) == "" }
