package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("█", 30), statBar(255))
	assert.Equal(t, strings.Repeat("░", 30), statBar(0))
	assert.Equal(t, strings.Repeat("█", 15)+strings.Repeat("░", 15), statBar(128))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 10, []string{""}},
		{"fits", "hello world", 20, []string{"hello world"}},
		{"breaks on words", "one two three four", 9, []string{"one two", "three", "four"}},
		{"cuts long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrap(tt.text, tt.width))
		})
	}
}

func TestPadCell(t *testing.T) {
	assert.Equal(t, "ab   ", padCell("ab", 5))
	assert.Equal(t, "abcde", padCell("abcdefgh", 5))
	// Colored cells are padded by visible width, never trimmed.
	colored := "\x1b[91mAB\x1b[0m"
	assert.Equal(t, colored+"   ", padCell(colored, 5))
}
