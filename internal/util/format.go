package util

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// FormatINR formats an amount in whole rupees for messages.
// Ví dụ: 1180 -> "₹1,180".
func FormatINR(amount int64) string {
	return "₹" + humanize.Comma(amount)
}

// TruncateContent cuts content to at most maxLength runes and appends "..." when it was shortened.
// Whitespace at the cut point is trimmed so excerpts never end in " ...".
func TruncateContent(content string, maxLength int) string {
	content = strings.TrimSpace(content)
	if maxLength <= 0 || utf8.RuneCountInString(content) <= maxLength {
		return content
	}

	runes := []rune(content)
	return strings.TrimRightFunc(string(runes[:maxLength]), func(r rune) bool {
		return r == ' ' || r == '\n' || r == '\t'
	}) + "..."
}

func TimePointer(t time.Time) *time.Time {
	return &t
}
