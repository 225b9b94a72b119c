package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AmirKameel/genie-stack-forge/internal/types"
)

var testFallbackCtx = FallbackContext{
	TemplateName: "landing page",
	Category:     "landing",
	Features:     []string{"a hero section", "feature highlights"},
	FileCount:    2,
	PageMode:     types.SinglePage,
}

func TestSanitizeDescriptionAcceptsCleanProse(t *testing.T) {
	prose := "I built a warm, inviting landing page for your coffee shop with a hero image and a menu section."
	got := SanitizeDescription(prose, testFallbackCtx)
	assert.Equal(t, prose, got)
}

func TestSanitizeDescriptionIdempotent(t *testing.T) {
	inputs := []string{
		"I built a warm, inviting landing page for your coffee shop with a hero image and a menu section.",
		"Short.",
		"Generated Files: index.html, style.css",
		"Some prose.\n```css\nbody { margin: 0; }\n```\nMore prose that keeps going for a while to pass the length gate.",
	}
	for _, in := range inputs {
		once := SanitizeDescription(in, testFallbackCtx)
		twice := SanitizeDescription(once, testFallbackCtx)
		assert.Equal(t, once, twice, "not idempotent for input %q", in)
	}
}

func TestSanitizeDescriptionStripsCodeArtifacts(t *testing.T) {
	remainder := "I created a stylish page for your bakery with warm colors and soft shadows.\n\n" +
		"```css\n.extra { color: red; }\n```\n\n" +
		".hero { background: #fff; }\n" +
		"--accent-color: #ff6f61;\n"

	got := SanitizeDescription(remainder, testFallbackCtx)
	assert.NotContains(t, got, "```")
	assert.NotContains(t, got, "{")
	assert.NotContains(t, got, "--accent-color")
	assert.Contains(t, got, "stylish page for your bakery")
}

func TestSanitizeDescriptionCollapsesNewlines(t *testing.T) {
	remainder := "First paragraph about the generated site and its overall look.\n\n\n\n\nSecond paragraph."
	got := SanitizeDescription(remainder, testFallbackCtx)
	assert.NotContains(t, got, "\n\n\n")
	assert.Contains(t, got, "First paragraph")
	assert.Contains(t, got, "Second paragraph")
}

func TestSanitizeDescriptionStripsTrailingInventory(t *testing.T) {
	remainder := "A sleek portfolio site with a gallery, an about section and a contact form for you.\n\n" +
		"Generated Files:\n- index.html\n- style.css\n"
	got := SanitizeDescription(remainder, testFallbackCtx)
	assert.NotContains(t, got, "index.html")
	assert.Contains(t, got, "sleek portfolio site")
}

func TestSanitizeDescriptionRejectsBannedOpeners(t *testing.T) {
	// Scenario: the whole remainder is a redundant file inventory.
	got := SanitizeDescription("Generated Files: index.html, style.css", testFallbackCtx)
	assert.Equal(t, fallbackDescription(testFallbackCtx), got)
	assert.NotContains(t, got, "```")
	assert.NotContains(t, got, "{")
}

func TestSanitizeDescriptionRejectsShortText(t *testing.T) {
	got := SanitizeDescription("Nice site.", testFallbackCtx)
	assert.Equal(t, fallbackDescription(testFallbackCtx), got)
}

func TestFallbackDescriptionContents(t *testing.T) {
	got := fallbackDescription(FallbackContext{
		TemplateName: "online store",
		Category:     "e-commerce",
		Features:     []string{"a product grid", "a shopping cart", "product detail cards", "reviews"},
		FileCount:    3,
		PageMode:     types.MultiPage,
	})
	assert.True(t, strings.HasPrefix(got, "A multi-page online store"))
	assert.Contains(t, got, "e-commerce")
	assert.Contains(t, got, "a product grid")
	// only the first three features are listed
	assert.NotContains(t, got, "reviews")
	assert.Contains(t, got, "3 file(s)")
}
