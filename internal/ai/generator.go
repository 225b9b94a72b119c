package ai

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/AmirKameel/genie-stack-forge/internal/ai/prompts"
	"github.com/AmirKameel/genie-stack-forge/internal/types"
)

// ErrGenerationFailed wraps any transport-level failure of the
// generation provider. Parsing anomalies never produce it: truncation,
// zero files and bad descriptions all degrade to a usable result.
var ErrGenerationFailed = errors.New("generation failed")

const (
	generationTemperature   = 0.4
	continuationTemperature = 0.2 // lower variance for a clean resumption
	continuationTailLines   = 10

	defaultMaxOutputTokens = 8192
)

const systemInstruction = "You are a website generator that outputs complete HTML, CSS and JavaScript files in the exact format the user specifies."

// chatClient is the slice of the OpenAI client the generator uses.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Decorator post-processes a finished file set, e.g. swapping
// placeholder images for stock photos. Implementations must be
// best-effort: they return the input unchanged on any failure.
type Decorator interface {
	Decorate(ctx context.Context, files []types.GeneratedFile, prompt string) []types.GeneratedFile
}

// Generator runs the prompt -> completion -> files pipeline against a
// chat-completion provider. It keeps no per-request state: every call
// is a pure transformation of the completion text.
type Generator struct {
	client          chatClient
	model           string
	maxOutputTokens int
	decorator       Decorator // optional
}

// NewGenerator builds a Generator talking to the OpenAI-compatible API
// with the given key. decorator may be nil.
func NewGenerator(apiKey, model string, maxOutputTokens int, decorator Decorator) *Generator {
	if maxOutputTokens <= 0 {
		maxOutputTokens = defaultMaxOutputTokens
	}
	return &Generator{
		client:          openai.NewClient(apiKey),
		model:           model,
		maxOutputTokens: maxOutputTokens,
		decorator:       decorator,
	}
}

// GenerateSite runs one full generation round: template detection,
// generation call, truncation recovery, file extraction, description
// cleanup and optional image decoration. It always returns at least
// one file unless the provider call itself fails.
func (g *Generator) GenerateSite(ctx context.Context, prompt string, image *types.InlineImage) (types.GenerationResult, error) {
	tpl := DetectTemplate(prompt)
	mode := DetectPageMode(prompt)
	log.Printf("Generating site: template=%q mode=%s", tpl.Name, mode)

	instruction := prompts.SiteGeneration(prompt, tpl.Name, tpl.StyleSeed, tpl.RequiredPages, mode == types.MultiPage)

	raw, err := g.complete(ctx, instruction, image, generationTemperature)
	if err != nil {
		return types.GenerationResult{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	merged := g.continueIfNeeded(ctx, raw)
	files, remainder := ExtractFiles(merged)

	if len(files) == 0 {
		// The one hard guarantee of the parsing path: the user always
		// gets something to look at.
		log.Printf("WARN: no files extracted from completion (%d chars), substituting placeholder", len(merged))
		files = []types.GeneratedFile{placeholderFile(prompt)}
	}

	desc := SanitizeDescription(remainder, FallbackContext{
		TemplateName: tpl.Name,
		Category:     tpl.Category,
		Features:     tpl.Features,
		FileCount:    len(files),
		PageMode:     mode,
	})

	if g.decorator != nil {
		files = g.decorator.Decorate(ctx, files, prompt)
	}

	return types.GenerationResult{Description: desc, Files: files}, nil
}

// GenerateEdit asks the model for changes to an existing file set and
// returns only the files it touched. An empty file list is a valid
// outcome here (no placeholder): absent files mean "leave untouched".
func (g *Generator) GenerateEdit(ctx context.Context, instruction string, snapshot []types.GeneratedFile) (types.GenerationResult, error) {
	raw, err := g.complete(ctx, prompts.Edit(instruction, formatSnapshot(snapshot)), nil, generationTemperature)
	if err != nil {
		return types.GenerationResult{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	merged := g.continueIfNeeded(ctx, raw)
	files, remainder := ExtractFiles(merged)
	log.Printf("Edit round returned %d changed file(s)", len(files))

	desc := SanitizeDescription(remainder, FallbackContext{
		TemplateName: "website update",
		FileCount:    len(files),
	})
	return types.GenerationResult{Description: desc, Files: files}, nil
}

// continueIfNeeded performs at most one follow-up round when the
// completion looks truncated. Failures of the second call are logged
// and swallowed: continuation is an enhancement, never a requirement.
func (g *Generator) continueIfNeeded(ctx context.Context, original string) string {
	if !IsTruncated(original) {
		return original
	}

	tail := lastLines(original, continuationTailLines)
	log.Printf("Completion looks truncated (%d chars), requesting continuation", len(original))

	continuation, err := g.complete(ctx, prompts.Continuation(tail), nil, continuationTemperature)
	if err != nil {
		log.Printf("WARN: continuation request failed, keeping original: %v", err)
		return original
	}
	if strings.TrimSpace(continuation) == "" {
		return original
	}
	return original + "\n" + continuation
}

// complete performs one chat-completion round and unwraps the text.
func (g *Generator) complete(ctx context.Context, instruction string, image *types.InlineImage, temperature float32) (string, error) {
	userMsg := openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: instruction,
	}
	if image != nil {
		userMsg = openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: instruction},
				{
					Type: openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{
						URL:    fmt.Sprintf("data:%s;base64,%s", image.MimeType, image.Data),
						Detail: openai.ImageURLDetailAuto,
					},
				},
			},
		}
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			userMsg,
		},
		Temperature: temperature,
		TopP:        0.95,
		MaxTokens:   g.maxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("provider response contained no choices")
	}
	// An empty message content is a valid (if useless) completion, not
	// a transport failure: it flows on to extraction, which ends in the
	// placeholder file. Only a malformed envelope is an error here.
	return resp.Choices[0].Message.Content, nil
}

// placeholderFile is the zero-extractable-files fallback: a minimal
// self-contained page that echoes the user's prompt.
func placeholderFile(prompt string) types.GeneratedFile {
	content := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Your Site</title>
<style>
body { font-family: sans-serif; display: flex; min-height: 100vh; align-items: center; justify-content: center; background: #f9fafb; color: #111; }
main { max-width: 36rem; padding: 2rem; text-align: center; }
</style>
</head>
<body>
<main>
<h1>We could not build this one</h1>
<p>Your request was: %s</p>
<p>Try rephrasing the prompt and generating again.</p>
</main>
</body>
</html>`, html.EscapeString(prompt))

	return types.GeneratedFile{Path: "index.html", Language: "html", Content: content}
}

// formatSnapshot renders the current project files in the same marker
// format the model is asked to reply with.
func formatSnapshot(files []types.GeneratedFile) string {
	var b strings.Builder
	for _, f := range files {
		fmt.Fprintf(&b, "FILE: %s\n```%s\n%s\n```\n\n", f.Path, f.Language, f.Content)
	}
	return b.String()
}

func lastLines(text string, n int) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
