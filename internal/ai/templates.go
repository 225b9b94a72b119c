package ai

import (
	"strings"

	"github.com/AmirKameel/genie-stack-forge/internal/types"
)

// TemplateSpec is one entry of the static template catalog. It is
// configuration, not behavior: the orchestrator merges the page list
// and style seed into the generation instruction, and the sanitizer
// uses the name/features for its fallback description.
type TemplateSpec struct {
	Name          string
	Category      string
	Keywords      []string
	RequiredPages []string
	OptionalPages []string
	Features      []string
	StyleSeed     string
}

// Catalog order matters: detection returns the first entry with a
// keyword hit. The landing template is the default and carries no
// keywords of its own.
var templateCatalog = []TemplateSpec{
	{
		Name:          "online store",
		Category:      "e-commerce",
		Keywords:      []string{"shop", "store", "ecommerce", "e-commerce", "product", "sell", "cart", "buy"},
		RequiredPages: []string{"index.html", "products.html", "cart.html"},
		OptionalPages: []string{"checkout.html", "contact.html"},
		Features:      []string{"a product grid", "a shopping cart", "product detail cards"},
		StyleSeed:     "clean commerce layout, product cards with soft shadows, prominent call-to-action buttons",
	},
	{
		Name:          "portfolio site",
		Category:      "portfolio",
		Keywords:      []string{"portfolio", "showcase", "my work", "designer", "photographer", "artist", "freelance"},
		RequiredPages: []string{"index.html", "projects.html", "contact.html"},
		OptionalPages: []string{"about.html"},
		Features:      []string{"a project gallery", "an about section", "a contact form"},
		StyleSeed:     "minimal gallery layout, generous whitespace, large imagery",
	},
	{
		Name:          "blog",
		Category:      "blog",
		Keywords:      []string{"blog", "article", "news", "magazine", "journal", "posts"},
		RequiredPages: []string{"index.html", "post.html"},
		OptionalPages: []string{"archive.html", "about.html"},
		Features:      []string{"a post list", "an article layout", "a sidebar"},
		StyleSeed:     "readable typography, narrow content column, subtle accents",
	},
	{
		Name:          "dashboard",
		Category:      "dashboard",
		Keywords:      []string{"dashboard", "admin", "analytics", "metrics", "chart", "stats"},
		RequiredPages: []string{"index.html"},
		OptionalPages: []string{"settings.html"},
		Features:      []string{"stat cards", "charts", "a data table"},
		StyleSeed:     "dense card grid, dark sidebar, accent-colored data highlights",
	},
	{
		Name:          "business site",
		Category:      "corporate",
		Keywords:      []string{"business", "company", "corporate", "agency", "startup", "consulting", "services"},
		RequiredPages: []string{"index.html", "services.html", "contact.html"},
		OptionalPages: []string{"about.html", "team.html"},
		Features:      []string{"a services section", "a team section", "a contact form"},
		StyleSeed:     "professional palette, hero with tagline, trust badges",
	},
	{
		Name:          "landing page",
		Category:      "landing",
		RequiredPages: []string{"index.html"},
		OptionalPages: []string{},
		Features:      []string{"a hero section", "feature highlights", "a call to action"},
		StyleSeed:     "bold hero, three-column feature row, single accent color",
	},
}

// DetectTemplate picks the catalog entry for a prompt by
// case-insensitive substring match; first hit wins, landing is the
// default.
func DetectTemplate(prompt string) TemplateSpec {
	lower := strings.ToLower(prompt)
	for _, tpl := range templateCatalog {
		for _, kw := range tpl.Keywords {
			if strings.Contains(lower, kw) {
				return tpl
			}
		}
	}
	return templateCatalog[len(templateCatalog)-1]
}

var multiPageIndicators = []string{
	"multi-page", "multi page", "multiple pages", "several pages",
	"about page", "contact page", "separate pages",
}

// DetectPageMode defaults to single-page unless the prompt asks for
// more.
func DetectPageMode(prompt string) types.PageMode {
	lower := strings.ToLower(prompt)
	for _, kw := range multiPageIndicators {
		if strings.Contains(lower, kw) {
			return types.MultiPage
		}
	}
	return types.SinglePage
}
