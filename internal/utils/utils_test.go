package utils

import (
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestShouldRetry(t *testing.T) {
	assert.False(t, ShouldRetry(nil))
	assert.False(t, ShouldRetry(errors.New("invalid api key")))
	assert.True(t, ShouldRetry(errors.New("429 rate limit reached")))
	assert.True(t, ShouldRetry(errors.New("Post \"x\": dial tcp: i/o timeout")))
	assert.True(t, ShouldRetry(&openai.APIError{HTTPStatusCode: 503}))
	assert.True(t, ShouldRetry(&openai.APIError{HTTPStatusCode: 429}))
	assert.False(t, ShouldRetry(&openai.APIError{HTTPStatusCode: 401}))
}

func TestLanguageForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"index.html", "html"},
		{"pages/About.HTM", "html"},
		{"css/style.css", "css"},
		{"app.js", "javascript"},
		{"lib/util.mjs", "javascript"},
		{"data.json", "json"},
		{"logo.svg", "svg"},
		{"README.md", "markdown"},
		{"notes.txt", "text"},
		{"whatever.xyz", "html"},
		{"noextension", "html"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LanguageForPath(tt.path), tt.path)
	}
}
