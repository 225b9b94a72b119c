package ai

import (
	"regexp"
	"strings"
)

// Signals checked on the last non-empty line of a completion.
var (
	// an opened tag with no ">" before end of line, e.g. `<div class="hero`
	danglingTagRe = regexp.MustCompile(`<[a-zA-Z][^>]*$`)
	// a quoted attribute value that never closes, e.g. `class="foo`
	danglingAttrRe = regexp.MustCompile(`[a-zA-Z-]+="[^"]*$`)
)

// Elements that never take a closing tag. Excluding them keeps the
// open/close imbalance count from flagging ordinary documents.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
	"!doctype": true,
}

var (
	openTagRe  = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9-]*|!DOCTYPE|!doctype)`)
	closeTagRe = regexp.MustCompile(`</([a-zA-Z][a-zA-Z0-9-]*)`)
)

// Even after excluding void elements, generated markup is rarely
// perfectly balanced (inline SVG, typos), so a small slack remains.
const tagImbalanceTolerance = 3

// IsTruncated reports whether a completion looks cut off mid-output.
// It is a heuristic: the provider gives no explicit signal when the
// token budget runs out, so the tail and the overall tag balance are
// the only evidence available.
func IsTruncated(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	last := lastNonEmptyLine(trimmed)
	if danglingTagRe.MatchString(last) {
		return true
	}
	if danglingAttrRe.MatchString(last) {
		return true
	}
	// A function or control-block opener left hanging, or a bare brace.
	if strings.HasSuffix(last, "{") {
		return true
	}

	// An odd number of fences means the final code block never closed.
	if strings.Count(trimmed, "```")%2 != 0 {
		return true
	}

	return tagImbalance(trimmed) > tagImbalanceTolerance
}

// tagImbalance counts HTML open tags (void elements excluded) minus
// close tags across the whole text.
func tagImbalance(text string) int {
	opens := 0
	for _, m := range openTagRe.FindAllStringSubmatch(text, -1) {
		if !voidElements[strings.ToLower(m[1])] {
			opens++
		}
	}
	closes := len(closeTagRe.FindAllString(text, -1))
	return opens - closes
}

func lastNonEmptyLine(text string) string {
	lines := strings.Split(text, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
