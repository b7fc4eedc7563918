package textclean

import "strings"

// Truncate bounds text to maxLength characters, preferring to cut at the
// end of a sentence: if a period falls within the last 20% of the
// truncated window the cut happens just after it. An ellipsis marker is
// appended when requested.
func Truncate(text string, maxLength int, addEllipsis bool) string {
	if maxLength <= 0 {
		return text
	}

	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}

	truncated := string(runes[:maxLength])

	if idx := strings.LastIndex(truncated, "."); idx >= 0 {
		// idx is a byte offset; compare in runes to honor the 20% window.
		runeIdx := len([]rune(truncated[:idx]))
		if float64(runeIdx) > float64(maxLength)*0.8 {
			truncated = truncated[:idx+1]
		}
	}

	if addEllipsis {
		truncated += "..."
	}
	return truncated
}
