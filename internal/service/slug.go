package service

import (
	"strings"
	"unicode"
)

// slugify lowercases s and collapses every run of characters that are not
// ASCII letters or digits into a single hyphen, e.g. "United Kingdom!" →
// "united-kingdom". The result may be empty.
func slugify(s string) string {
	var sb strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(r)
			pendingHyphen = false
			continue
		}
		pendingHyphen = true
	}
	return sb.String()
}
