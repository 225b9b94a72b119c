package ai

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AmirKameel/genie-stack-forge/internal/types"
)

// FallbackContext carries what the sanitizer needs to synthesize a
// description when the model's own prose is unusable.
type FallbackContext struct {
	TemplateName string
	Category     string
	Features     []string
	FileCount    int
	PageMode     types.PageMode
}

// A description shorter than this is treated as low-information and
// replaced by the synthesized fallback.
const minDescriptionLength = 50

// Openers that signal the model echoed its formatting instructions
// instead of describing the site.
var bannedOpeners = []string{"generated files", "here", "the"}

var (
	// fences the file extractor did not capture (malformed markers)
	strayFenceRe = regexp.MustCompile("(?s)```.*?(?:```|\\z)")
	// leftover marker lines with no fence after them
	strayMarkerRe = regexp.MustCompile(`(?m)^(?:#{1,3}[ \t]*)?(?:\*\*)?FILE(?:NAME)?:.*$`)
	// CSS rule bodies and custom-property declarations leaked into prose
	cssRuleRe     = regexp.MustCompile(`[.#:a-zA-Z][^{}\n]*\{[^{}]*\}`)
	cssCustomRe   = regexp.MustCompile(`(?m)^\s*--[a-zA-Z-]+\s*:\s*[^;\n]+;?\s*$`)
	bareSelector  = regexp.MustCompile(`(?m)^\s*[.#][\w-]+(?:\s*[,>]\s*[.#]?[\w-]+)*\s*\{?\s*$`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
	// a redundant trailing "Generated Files" inventory section
	trailingInventoryRe = regexp.MustCompile(`(?is)\n[ \t]*(?:generated files?|files generated)\b[\s\S]*\z`)
	trailingBulletsRe   = regexp.MustCompile(`(?:\n[ \t]*[-*][ \t]+[^\n]*)+[ \t\n]*\z`)
)

// SanitizeDescription turns the non-file remainder of a completion
// into a short human-readable summary. If the cleaned text is too
// short, still code-like, or opens with boilerplate, a deterministic
// fallback built from fc is returned instead. The function is
// idempotent on its own output.
func SanitizeDescription(remainder string, fc FallbackContext) string {
	cleaned := strayFenceRe.ReplaceAllString(remainder, "")
	cleaned = strayMarkerRe.ReplaceAllString(cleaned, "")
	cleaned = cssRuleRe.ReplaceAllString(cleaned, "")
	cleaned = cssCustomRe.ReplaceAllString(cleaned, "")
	cleaned = bareSelector.ReplaceAllString(cleaned, "")
	cleaned = trailingInventoryRe.ReplaceAllString(cleaned, "")
	cleaned = trailingBulletsRe.ReplaceAllString(cleaned, "")
	cleaned = multiNewlines.ReplaceAllString(cleaned, "\n\n")
	cleaned = strings.TrimSpace(cleaned)

	if acceptableDescription(cleaned) {
		return cleaned
	}
	return fallbackDescription(fc)
}

func acceptableDescription(text string) bool {
	if len(text) < minDescriptionLength {
		return false
	}
	if strings.Contains(text, "```") || strings.ContainsAny(text, "{}") {
		return false
	}
	lower := strings.ToLower(text)
	for _, opener := range bannedOpeners {
		if strings.HasPrefix(lower, opener) {
			return false
		}
	}
	return true
}

// fallbackDescription builds a summary from the request context. It
// must never contain code.
func fallbackDescription(fc FallbackContext) string {
	name := fc.TemplateName
	if name == "" {
		name = "website"
	}
	mode := "single-page"
	if fc.PageMode == types.MultiPage {
		mode = "multi-page"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "A %s %s", mode, name)
	if fc.Category != "" && !strings.Contains(strings.ToLower(name), fc.Category) {
		fmt.Fprintf(&b, " (%s)", fc.Category)
	}
	if len(fc.Features) > 0 {
		features := fc.Features
		if len(features) > 3 {
			features = features[:3]
		}
		fmt.Fprintf(&b, " featuring %s", strings.Join(features, ", "))
	}
	fmt.Fprintf(&b, ". %d file(s) were generated and are ready to preview and edit.", fc.FileCount)
	return b.String()
}
