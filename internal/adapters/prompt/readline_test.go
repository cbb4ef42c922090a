package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSelection(t *testing.T) {
	items := []string{"Windows", "Linux", "macOS"}

	tests := []struct {
		line  string
		index int
		ok    bool
	}{
		{line: "", index: 1, ok: true},
		{line: "1", index: 0, ok: true},
		{line: " 3 ", index: 2, ok: true},
		{line: "macos", index: 2, ok: true},
		{line: "0", ok: false},
		{line: "4", ok: false},
		{line: "bsd", ok: false},
	}
	for _, tt := range tests {
		index, ok := parseSelection(tt.line, items, 1)
		assert.Equal(t, tt.ok, ok, "line %q", tt.line)
		if tt.ok {
			assert.Equal(t, tt.index, index, "line %q", tt.line)
		}
	}
}

func TestParseConfirm(t *testing.T) {
	tests := []struct {
		line   string
		def    bool
		answer bool
		ok     bool
	}{
		{line: "", def: true, answer: true, ok: true},
		{line: "", def: false, answer: false, ok: true},
		{line: "Y", answer: true, ok: true},
		{line: "yes", answer: true, ok: true},
		{line: "n", def: true, answer: false, ok: true},
		{line: "NO", def: true, answer: false, ok: true},
		{line: "maybe", ok: false},
	}
	for _, tt := range tests {
		answer, ok := parseConfirm(tt.line, tt.def)
		assert.Equal(t, tt.ok, ok, "line %q", tt.line)
		assert.Equal(t, tt.answer, answer, "line %q", tt.line)
	}
}

func TestInputPrompt(t *testing.T) {
	assert.Equal(t, "What is your CPU model? ", inputPrompt("What is your CPU model?", ""))
	assert.Equal(t, "What is your CPU model? [i7-8700] ", inputPrompt("What is your CPU model?", "i7-8700"))
}
