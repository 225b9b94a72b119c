package ai

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AmirKameel/genie-stack-forge/internal/types"
	"github.com/AmirKameel/genie-stack-forge/internal/utils"
)

// fileBlockRe matches one marker + fenced-block pair:
//
//	FILE: index.html
//	```html
//	...content...
//	```
//
// The marker keyword tolerates the dialects models actually emit
// (FILENAME:, a leading ### heading, ** bold wrappers). The closing
// fence is optional so a file truncated at the token budget still
// yields a record with everything up to end-of-text as content.
var fileBlockRe = regexp.MustCompile(
	"(?m)^(?:#{1,3}[ \t]*)?(?:\\*\\*)?FILE(?:NAME)?:(?:\\*\\*)?[ \t]*(.+?)[ \t]*\r?\n+" +
		"```([a-zA-Z0-9]*)[ \t]*\r?\n?([\\s\\S]*?)(?:\r?\n```|\\z)")

// bareHTMLFenceRe backs the no-marker fallback: models sometimes
// ignore the marker instruction and return only ```html fences.
var bareHTMLFenceRe = regexp.MustCompile(
	"(?m)^```html[ \t]*\r?\n([\\s\\S]*?)(?:\r?\n```|\\z)")

// ExtractFiles recovers the ordered file list from a completion and
// returns it together with the non-file remainder (the prose left
// after every matched block is removed). Records keep source order;
// duplicate paths are not collapsed here — merging is the store's job.
func ExtractFiles(text string) ([]types.GeneratedFile, string) {
	var files []types.GeneratedFile

	for _, m := range fileBlockRe.FindAllStringSubmatch(text, -1) {
		path := cleanPath(m[1])
		content := cleanContent(m[3])
		if path == "" || content == "" {
			continue
		}
		lang := strings.ToLower(strings.TrimSpace(m[2]))
		if lang == "" {
			lang = utils.LanguageForPath(path)
		}
		files = append(files, types.GeneratedFile{
			Path:     path,
			Language: lang,
			Content:  content,
		})
	}

	if len(files) > 0 {
		return files, fileBlockRe.ReplaceAllString(text, "")
	}

	// Fallback: bare ```html fences become sequential pages.
	for i, m := range bareHTMLFenceRe.FindAllStringSubmatch(text, -1) {
		content := cleanContent(m[1])
		if content == "" {
			continue
		}
		files = append(files, types.GeneratedFile{
			Path:     syntheticPageName(i),
			Language: "html",
			Content:  content,
		})
	}
	if len(files) > 0 {
		return files, bareHTMLFenceRe.ReplaceAllString(text, "")
	}

	return nil, text
}

func syntheticPageName(i int) string {
	switch i {
	case 0:
		return "index.html"
	case 1:
		return "about.html"
	case 2:
		return "contact.html"
	default:
		return fmt.Sprintf("page%d.html", i+1)
	}
}

// cleanPath strips the decoration models wrap paths in (backticks,
// bold markers, quotes).
func cleanPath(path string) string {
	return strings.Trim(strings.TrimSpace(path), "`*\"'")
}

// cleanContent trims surrounding blank lines and any stray fence
// remnant left on the final line of a truncated block.
func cleanContent(content string) string {
	content = strings.Trim(content, "\r\n")
	content = strings.TrimRight(content, " \t")
	for strings.HasSuffix(content, "`") {
		content = strings.TrimRight(content, "`")
		content = strings.Trim(content, "\r\n")
		content = strings.TrimRight(content, " \t")
	}
	return content
}
