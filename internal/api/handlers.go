package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AmirKameel/genie-stack-forge/internal/ai"
	"github.com/AmirKameel/genie-stack-forge/internal/project"
	"github.com/AmirKameel/genie-stack-forge/internal/types"
	"github.com/AmirKameel/genie-stack-forge/internal/utils"
)

// SiteGenerator is the slice of ai.Generator the handlers need.
type SiteGenerator interface {
	GenerateSite(ctx context.Context, prompt string, image *types.InlineImage) (types.GenerationResult, error)
	GenerateEdit(ctx context.Context, instruction string, snapshot []types.GeneratedFile) (types.GenerationResult, error)
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator SiteGenerator
	projects  *project.Store
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(gen SiteGenerator, projects *project.Store) *APIHandler {
	return &APIHandler{
		generator: gen,
		projects:  projects,
	}
}

// --- Structs for API Requests/Responses ---

type GenerateRequest struct {
	Prompt string             `json:"prompt"`
	Name   string             `json:"name"`
	Image  *types.InlineImage `json:"image"`
}

type EditRequest struct {
	Instruction string `json:"instruction" binding:"required"`
}

type EditResponse struct {
	Project      types.Project         `json:"project"`
	ChangedFiles []types.GeneratedFile `json:"changedFiles"`
}

// --- API Handlers ---

// POST /project/generate
func (h *APIHandler) GenerateSite(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	// A prompt may be empty only when a reference screenshot is attached.
	if req.Prompt == "" && req.Image == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either a prompt or an image is required"})
		return
	}

	log.Printf("Received generation request (%d chars, image=%t)", len(req.Prompt), req.Image != nil)

	result, err := h.generate(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error generating site: %v", err)
		if errors.Is(err, ai.ErrGenerationFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Generation provider call failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate site"})
		return
	}

	name := req.Name
	if name == "" {
		name = "Untitled site"
	}
	proj := h.projects.Create(name, result)
	log.Printf("Site generation successful. Project ID: %s, files: %d", proj.ID, len(proj.Files))
	c.JSON(http.StatusCreated, proj)
}

// generate wraps the pipeline call with a single retry on transient
// provider errors. The pipeline itself never retries; retry/backoff
// belongs to the caller.
func (h *APIHandler) generate(ctx context.Context, req GenerateRequest) (types.GenerationResult, error) {
	result, err := h.generator.GenerateSite(ctx, req.Prompt, req.Image)
	if err != nil && utils.ShouldRetry(err) {
		log.Printf("Generation failed with a transient error, retrying once: %v", err)
		result, err = h.generator.GenerateSite(ctx, req.Prompt, req.Image)
	}
	return result, err
}

// POST /project/:id/edit
func (h *APIHandler) EditSite(c *gin.Context) {
	projectID := c.Param("id")
	var req EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	proj, ok := h.projects.Get(projectID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	log.Printf("Received edit request for project %s", projectID)

	result, err := h.generator.GenerateEdit(c.Request.Context(), req.Instruction, proj.Files)
	if err != nil {
		log.Printf("Error editing project %s: %v", projectID, err)
		if errors.Is(err, ai.ErrGenerationFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Generation provider call failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply edit"})
		return
	}

	patched, ok := h.projects.Patch(projectID, result)
	if !ok {
		// The store entry can expire between the Get above and here.
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, EditResponse{Project: patched, ChangedFiles: result.Files})
}

// GET /project/:id/files
func (h *APIHandler) GetProjectFiles(c *gin.Context) {
	projectID := c.Param("id")
	proj, ok := h.projects.Get(projectID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": proj.Files})
}
