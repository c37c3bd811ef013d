package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"weblive_server/internal/generator"
	"weblive_server/internal/planner"
	"weblive_server/internal/storage"
	"weblive_server/internal/types"
	"weblive_server/internal/utils"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	orchestrator *planner.Orchestrator
	store        storage.Store
	projectTTL   time.Duration
}

func NewAPIHandler(orchestrator *planner.Orchestrator, store storage.Store, projectTTL time.Duration) *APIHandler {
	return &APIHandler{
		orchestrator: orchestrator,
		store:        store,
		projectTTL:   projectTTL,
	}
}

// ProjectResponse is the owner-facing view of a stored project.
type ProjectResponse struct {
	ID        string            `json:"id"`
	EditToken string            `json:"edit_token"`
	ShareSlug string            `json:"share_slug"`
	Status    string            `json:"status"`
	Seed      int64             `json:"seed"`
	SiteSpec  *types.SiteSpec   `json:"site_spec"`
	Seo       *types.SeoPayload `json:"seo,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	ExpiresAt time.Time         `json:"expires_at"`
}

func projectResponse(p *storage.Project) ProjectResponse {
	return ProjectResponse{
		ID:        p.ID,
		EditToken: p.EditToken,
		ShareSlug: p.ShareSlug,
		Status:    p.Status,
		Seed:      p.Seed,
		SiteSpec:  p.SiteSpec,
		Seo:       p.Seo,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		ExpiresAt: p.ExpiresAt,
	}
}

// PlanSite handles POST /planner/plan. The orchestrator never fails a
// well-formed request outright; a broken model run degrades to the
// deterministic fallback with a warning in the response.
func (h *APIHandler) PlanSite(c *gin.Context) {
	var input types.PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	output, err := h.orchestrator.PlanSite(c.Request.Context(), input)
	if err != nil {
		log.Printf("ERROR: planning failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to plan site"})
		return
	}
	c.JSON(http.StatusOK, output)
}

// GenerateProject handles POST /project/generate: runs the deterministic
// generator on wizard input and stores the result under a fresh edit token
// and share slug. A caller-provided seed makes the output reproducible.
func (h *APIHandler) GenerateProject(c *gin.Context) {
	var input types.WizardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	seed := time.Now().UnixNano()
	if input.Seed != nil {
		seed = *input.Seed
	}
	spec, seo := generator.Generate(input, seed)

	now := time.Now().UTC()
	project := &storage.Project{
		ID:        uuid.NewString(),
		Input:     input,
		SiteSpec:  spec,
		Seo:       seo,
		Seed:      seed,
		Status:    "ready",
		ShareSlug: shareSlugFor(input.BusinessName),
		EditToken: uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(h.projectTTL),
	}
	if err := h.store.Create(c.Request.Context(), project); err != nil {
		log.Printf("ERROR: failed to store project %s: %v", project.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store project"})
		return
	}

	log.Printf("Generated project %s (seed %d, %d pages)", project.ID, seed, len(spec.Pages))
	c.JSON(http.StatusCreated, projectResponse(project))
}

// RegenerateProject handles POST /project/regenerate/:token. The stored
// wizard input is replayed with a fresh seed, giving a new layout for the
// same business.
func (h *APIHandler) RegenerateProject(c *gin.Context) {
	project, ok := h.loadByToken(c)
	if !ok {
		return
	}

	seed := time.Now().UnixNano()
	spec, seo := generator.Generate(project.Input, seed)
	project.SiteSpec = spec
	project.Seo = seo
	project.Seed = seed
	project.UpdatedAt = time.Now().UTC()

	if err := h.store.UpdateSite(c.Request.Context(), project); err != nil {
		log.Printf("ERROR: failed to update project %s: %v", project.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}
	c.JSON(http.StatusOK, projectResponse(project))
}

// GetProject handles GET /project/:token.
func (h *APIHandler) GetProject(c *gin.Context) {
	project, ok := h.loadByToken(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, projectResponse(project))
}

// ExportProject handles GET /project/:token/export and returns a markdown
// rendering of the generated site.
func (h *APIHandler) ExportProject(c *gin.Context) {
	project, ok := h.loadByToken(c)
	if !ok {
		return
	}
	markdown := utils.SpecMarkdown(project.SiteSpec, project.Seo)
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(markdown))
}

// GetSharedSite handles GET /s/:slug, the public read-only view. Navigation
// links are rewritten under the share prefix and the edit token is never
// exposed.
func (h *APIHandler) GetSharedSite(c *gin.Context) {
	slug := c.Param("slug")
	project, err := h.store.GetByShareSlug(c.Request.Context(), slug)
	if !h.handleLookupErr(c, err) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"site_spec": utils.ApplyShareLinks(project.SiteSpec, slug),
		"seo":       project.Seo,
	})
}

func (h *APIHandler) loadByToken(c *gin.Context) (*storage.Project, bool) {
	token := c.Param("token")
	project, err := h.store.GetByEditToken(c.Request.Context(), token)
	if !h.handleLookupErr(c, err) {
		return nil, false
	}
	return project, true
}

// handleLookupErr maps store errors onto status codes: missing is 404,
// expired is 410. Returns true when the caller may proceed.
func (h *APIHandler) handleLookupErr(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
	case errors.Is(err, storage.ErrExpired):
		c.JSON(http.StatusGone, gin.H{"error": "Project has expired"})
	default:
		log.Printf("ERROR: project lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
	}
	return false
}

// shareSlugFor derives a public slug from the business name plus a random
// suffix so two businesses with the same name never collide. Names that
// slugify to nothing (non-Latin scripts) fall back to "site".
func shareSlugFor(businessName string) string {
	base := utils.Slugify(businessName)
	if base == "" {
		base = "site"
	}
	return fmt.Sprintf("%s-%s", base, uuid.NewString()[:8])
}
