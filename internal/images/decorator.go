package images

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/AmirKameel/genie-stack-forge/internal/types"
)

const maxPhotos = 6

// searchBuckets map prompt keywords to a search term. First hit wins;
// the generic bucket is the fallback.
var searchBuckets = []struct {
	term     string
	keywords []string
}{
	{"retail products", []string{"shop", "store", "ecommerce", "e-commerce", "product", "cart"}},
	{"writing desk", []string{"blog", "article", "news", "journal", "writing"}},
	{"camera photography", []string{"photo", "photographer", "photography", "portfolio", "gallery"}},
	{"data charts", []string{"dashboard", "analytics", "metrics", "stats", "chart"}},
	{"gaming setup", []string{"game", "gaming", "esports", "arcade"}},
}

const genericSearchTerm = "modern workspace"

var (
	// placeholder image services models commonly emit
	placeholderURLRe = regexp.MustCompile(`https?://(?:via\.placeholder\.com|placehold\.co|placekitten\.com|picsum\.photos|source\.unsplash\.com|dummyimage\.com)[^"'()\s]*`)
	cssBackgroundRe  = regexp.MustCompile(`(background(?:-image)?\s*:\s*[^;{}]*url\()([^)]*)(\))`)
	imgSrcRe         = regexp.MustCompile(`(<img[^>]*\bsrc=")([^"]*)(")`)
)

// Decorator rewrites image references inside generated HTML with real
// stock photos. Every failure path returns the input unchanged: this
// stage must never break a generation that already succeeded.
type Decorator struct {
	client *Client
}

func NewDecorator(client *Client) *Decorator {
	return &Decorator{client: client}
}

// Decorate fetches photos for the prompt's dominant theme and rewrites
// placeholder URLs (or, failing that, the first CSS background and all
// <img> src attributes) in every HTML file that has a <body>.
func (d *Decorator) Decorate(ctx context.Context, files []types.GeneratedFile, prompt string) []types.GeneratedFile {
	if d == nil || d.client == nil {
		return files
	}

	terms := DeriveSearchTerms(prompt)
	photos, err := d.client.Search(ctx, terms[0], maxPhotos)
	if err != nil {
		log.Printf("WARN: image decoration skipped: %v", err)
		return files
	}
	if len(photos) == 0 {
		log.Printf("WARN: image decoration skipped: no photos found for %q", terms[0])
		return files
	}

	cursor := 0
	nextURL := func() string {
		u := photos[cursor%len(photos)].FullURL
		cursor++
		return u
	}

	decorated := make([]types.GeneratedFile, len(files))
	copy(decorated, files)
	for i, f := range decorated {
		if f.Language != "html" || !strings.Contains(f.Content, "<body") {
			continue
		}
		decorated[i].Content = rewriteImages(f.Content, nextURL)
	}
	return decorated
}

// DeriveSearchTerms returns up to three search terms for a prompt,
// most specific first.
func DeriveSearchTerms(prompt string) []string {
	lower := strings.ToLower(prompt)
	var terms []string
	for _, bucket := range searchBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				terms = append(terms, bucket.term)
				break
			}
		}
		if len(terms) == 3 {
			break
		}
	}
	if len(terms) == 0 {
		terms = append(terms, genericSearchTerm)
	}
	return terms
}

// rewriteImages swaps placeholder URLs for fetched photos. When a file
// has no recognizable placeholders, the first CSS background and every
// <img> src are rewritten instead.
func rewriteImages(content string, nextURL func() string) string {
	if placeholderURLRe.MatchString(content) {
		return placeholderURLRe.ReplaceAllStringFunc(content, func(string) string {
			return nextURL()
		})
	}

	replacedBackground := false
	content = cssBackgroundRe.ReplaceAllStringFunc(content, func(m string) string {
		if replacedBackground {
			return m
		}
		replacedBackground = true
		parts := cssBackgroundRe.FindStringSubmatch(m)
		return parts[1] + "'" + nextURL() + "'" + parts[3]
	})

	content = imgSrcRe.ReplaceAllStringFunc(content, func(m string) string {
		parts := imgSrcRe.FindStringSubmatch(m)
		return parts[1] + nextURL() + parts[3]
	})

	return content
}
