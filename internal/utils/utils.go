package utils

import (
	"errors"
	"path/filepath"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ShouldRetry reports whether an error from the generation provider
// looks transient. The pipeline itself never retries; the API layer
// uses this for its single retry.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode >= 500 || apiErr.HTTPStatusCode == 429
	}
	errMsg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"rate limit",
		"500 internal server error",
		"502 bad gateway",
		"503 service unavailable",
		"504 gateway timeout",
		"timeout",
		"connection reset by peer",
	} {
		if strings.Contains(errMsg, marker) {
			return true
		}
	}
	return false
}

// LanguageForPath infers a language tag from a filename when the
// fenced block did not declare one.
func LanguageForPath(path string) string {
	switch filepath.Ext(strings.ToLower(path)) {
	case ".html", ".htm":
		return "html"
	case ".css":
		return "css"
	case ".js", ".mjs":
		return "javascript"
	case ".json":
		return "json"
	case ".svg":
		return "svg"
	case ".md":
		return "markdown"
	case ".txt":
		return "text"
	default:
		return "html"
	}
}
