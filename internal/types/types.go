package types

// GeneratedFile is one file recovered from a model completion.
type GeneratedFile struct {
	Path     string `json:"path"`
	Language string `json:"language"` // e.g. "html", "css", "javascript"
	Content  string `json:"content"`
}

// PageMode says whether the user asked for one page or a small site.
type PageMode string

const (
	SinglePage PageMode = "single-page"
	MultiPage  PageMode = "multi-page"
)

// InlineImage is an optional reference screenshot attached to a prompt.
type InlineImage struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64, no data: prefix
}

// GenerationResult is what one generation round returns to the caller:
// a human-readable summary plus the ordered file list. The first file
// is treated as the home document by the preview layer.
type GenerationResult struct {
	Description string          `json:"description"`
	Files       []GeneratedFile `json:"files"`
}

// Project is the long-lived entity owned by the API layer. Files are
// kept in insertion order; Path acts as the replace-key when an edit
// response is merged in.
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Files       []GeneratedFile `json:"files"`
}
