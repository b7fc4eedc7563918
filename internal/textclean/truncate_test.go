package textclean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10, true))
	assert.Equal(t, "exactly ten", Truncate("exactly ten", 11, false))
}

func TestTruncateCutsAtSentenceEnd(t *testing.T) {
	// Period at index 9 falls inside the last 20% of a 10-rune window.
	got := Truncate("abcdefghi.jklmnop", 10, false)
	assert.Equal(t, "abcdefghi.", got)
}

func TestTruncateHardCutWhenPeriodTooEarly(t *testing.T) {
	got := Truncate("ab.cdefghijklm", 10, false)
	assert.Equal(t, "ab.cdefghi", got)
}

func TestTruncateEllipsis(t *testing.T) {
	got := Truncate("ab.cdefghijklm", 10, true)
	assert.Equal(t, "ab.cdefghi...", got)
}

func TestTruncateZeroMaxDisablesTruncation(t *testing.T) {
	text := "anything at all"
	assert.Equal(t, text, Truncate(text, 0, true))
}
