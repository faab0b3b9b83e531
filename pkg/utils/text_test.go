package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<b>Xiaomi</b> shares rally", "Xiaomi shares rally"},
		{"<a href=\"https://example.com\">Link</a> text", "Link text"},
		{"No tags here", "No tags here"},
		{"  padded  ", "padded"},
		{"Profits &amp; growth", "Profits & growth"},
		{"<p>小米<em>股价</em>上涨</p>", "小米股价上涨"},
		{"", ""},
		{"<br/>", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripMarkup(tt.input), "input %q", tt.input)
	}
}

func TestCleanToValidUTF8(t *testing.T) {
	assert.Equal(t, "ok", CleanToValidUTF8("ok"))
	assert.Equal(t, "ab", CleanToValidUTF8("a\xffb"))
}

func TestContainsString(t *testing.T) {
	assert.True(t, ContainsString([]string{"1mo", "1y"}, "1y"))
	assert.False(t, ContainsString([]string{"1mo"}, "5y"))
	assert.False(t, ContainsString(nil, ""))
}
