package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruncated(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty input", "", false},
		{"whitespace only", "  \n\t\n", false},
		{"unterminated attribute", `<div class="foo`, true},
		{"complete paragraph", "<p>Hello</p>", false},
		{"tag open mid-name", "<p>done</p>\n<div cla", true},
		{"trailing opening brace", "function init() {", true},
		{"bare brace", "body {", true},
		{"unclosed fence", "Here is the site.\n```html\n<p>hi</p>", true},
		{"closed fence", "```html\n<p>hi</p>\n```", false},
		{"plain prose", "A cozy coffee shop landing page with a hero image.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTruncated(tt.text))
		})
	}
}

func TestIsTruncatedTagImbalance(t *testing.T) {
	// Five unclosed divs exceed the tolerance even though the final
	// line looks complete.
	text := strings.Repeat("<div>\n", 5) + "<p>text</p>"
	assert.True(t, IsTruncated(text))

	// Void elements never count as unmatched opens.
	voids := "<img src=\"a.png\">\n<br>\n<meta charset=\"utf-8\">\n<hr>\n<input type=\"text\">\n<p>ok</p>"
	assert.False(t, IsTruncated(voids))
}

func TestIsTruncatedBalancedDocument(t *testing.T) {
	doc := `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Test</title>
</head>
<body>
<div class="hero">
<h1>Welcome</h1>
<img src="hero.jpg">
</div>
</body>
</html>`
	assert.False(t, IsTruncated(doc))
}
