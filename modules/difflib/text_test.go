package difflib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		text     string
		keepEnds bool
		want     []string
	}{
		{"", false, []string{}},
		{"a", false, []string{"a"}},
		{"a\n", false, []string{"a"}},
		{"a\n", true, []string{"a\n"}},
		{"\n\n", false, []string{"", ""}},
		{"a\nb\r\nc\rd", false, []string{"a", "b", "c", "d"}},
		{"a\nb\r\nc\rd", true, []string{"a\n", "b\r\n", "c\r", "d"}},
		{"a\r\r\n", true, []string{"a\r", "\r\n"}},
		{"a\n\rb", false, []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, SplitLines(tt.text, tt.keepEnds), "text %q keepEnds %v", tt.text, tt.keepEnds)
	}
}
