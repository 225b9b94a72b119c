package prompts

import (
	"fmt"
	"strings"
)

// The file-marker wire format every generation prompt asks for. The
// extractor on our side understands exactly this shape.
const markerFormatRules = `Respond using this exact format for every file:

FILE: index.html
` + "```html" + `
<!DOCTYPE html>
...full file content...
` + "```" + `

Rules:
- One FILE: line per file, path relative to the site root.
- Always open a fenced code block right after the FILE: line.
- Plain HTML, CSS and vanilla JavaScript only. No build tools, no frameworks.
- Before the first FILE: line, write two or three sentences describing the site. No other prose.`

// SiteGeneration builds the instruction for a fresh generation
// request.
func SiteGeneration(userPrompt string, templateName, styleSeed string, pages []string, multiPage bool) string {
	pageList := strings.Join(pages, ", ")
	scope := "a single self-contained page (index.html, with CSS in a <style> tag or a style.css file)"
	if multiPage {
		scope = fmt.Sprintf("a small multi-page site with at least these pages: %s", pageList)
	}

	return fmt.Sprintf(`You are a website generator AI.

A user has submitted the following site description:

---
"%s"
---

Build %s in the style of a %s. Visual direction: %s.

%s`, userPrompt, scope, templateName, styleSeed, markerFormatRules)
}

// Continuation asks the model to resume a completion that was cut off
// at the token budget. The tail of the truncated output is included so
// the model can pick up mid-token.
func Continuation(tail string) string {
	return fmt.Sprintf(`Your previous response was cut off. It ended with:

---
%s
---

Continue EXACTLY from where it stopped. Do not repeat anything already written, do not add any explanation or commentary, and keep using the same FILE: and code-fence format until every file is complete.`, tail)
}

// Edit builds the instruction for an edit round against an existing
// project snapshot. The model must return only the files it changed,
// in the same marker format, so the caller can patch them in by path.
func Edit(instruction string, snapshot string) string {
	return fmt.Sprintf(`You are updating an existing website.

The user's instruction:
---
%s
---

The current project files:
%s

Return ONLY the files you modified or added, using the FILE: line plus fenced code block format for each. Do not return unchanged files. Before the first FILE: line you may write one sentence summarizing the change.`, instruction, snapshot)
}
