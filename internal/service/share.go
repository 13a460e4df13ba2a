package service

import (
	"net/url"
	"strings"
)

const (
	shareBaseURL    = "https://api.whatsapp.com/send?text="
	sharePreviewLen = 200
)

// ShareLink builds a WhatsApp deep link announcing the plan. The message
// quotes the first 200 characters of the checklist.
func ShareLink(destination, checklist string) string {
	preview := checklist
	if r := []rune(checklist); len(r) > sharePreviewLen {
		preview = string(r[:sharePreviewLen])
	}
	text := "Here is my visa plan for " + destination + " from VisaMarker:\n\n" +
		preview + "...\n\nGet your own plan at VisaMarker!"
	return shareBaseURL + encodeURIComponent(text)
}

// encodeURIComponent percent-encodes s the way browsers do for a query
// value: spaces become %20, not "+".
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
