package summarizer

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateInput_ShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "short text", truncateInput("short text"))
}

func TestTruncateInput_CapsLongText(t *testing.T) {
	long := strings.Repeat("a", maxInputChars+100)

	got := truncateInput(long)
	assert.Len(t, got, maxInputChars+3)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestTruncateInput_KeepsValidUTF8(t *testing.T) {
	// Place a multi-byte rune straddling the cut position.
	long := strings.Repeat("a", maxInputChars-1) + "世界" + strings.Repeat("b", 100)

	got := truncateInput(long)
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.NotContains(t, got, "世")
}
