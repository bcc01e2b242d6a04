package apihandlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"twm/internal/app"
	"twm/internal/catalog"
	"twm/internal/services"
	"twm/pkg/categorizer"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(app *app.App) *APIHandler {
	return &APIHandler{App: app}
}

// --- Requests ---

type PromptRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type GenerateRequest struct {
	Prompt   string `json:"prompt" binding:"required"`
	Category string `json:"category"`
	Model    string `json:"model"`
	Save     *bool  `json:"save"`
	Async    bool   `json:"async"`
}

type FollowUpsRequest struct {
	Content string `json:"content"`
}

// --- Generation ---

// ClassifyHandler returns the task category for a prompt.
func (h *APIHandler) ClassifyHandler(c *gin.Context) {
	var req PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	res, err := h.App.GenerationService.Classify(c.Request.Context(), req.Prompt)
	if err != nil {
		ServiceError(c, "classify", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": res.Category, "keyword": res.Keyword})
}

// GenerateHandler generates content. Results are saved to the library unless
// save is false. With async set the job is queued and 202 is returned.
func (h *APIHandler) GenerateHandler(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	params := services.GenerateParams{
		Prompt: req.Prompt,
		Model:  req.Model,
		Save:   req.Save == nil || *req.Save,
	}
	if strings.TrimSpace(req.Category) != "" {
		cat, err := categorizer.ParseCategory(req.Category)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		params.Category = cat
	}

	ctx := c.Request.Context()
	if req.Async {
		if h.App.JobClient == nil {
			ServiceUnavailable(c, "background jobs are not configured")
			return
		}
		contentID, taskID, err := h.App.GenerationService.EnqueueGenerate(ctx, params)
		if err != nil {
			ServiceError(c, "enqueue generation", err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"data": gin.H{"id": contentID, "task_id": taskID}})
		return
	}

	content, err := h.App.GenerationService.Generate(ctx, params)
	if err != nil {
		ServiceError(c, "generate", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": content})
}

func (h *APIHandler) FollowUpsHandler(c *gin.Context) {
	var req FollowUpsRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	qs, err := h.App.GenerationService.FollowUps(c.Request.Context(), req.Content)
	if err != nil {
		ServiceError(c, "follow-ups", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": qs})
}

// --- Catalog ---

// ModelsHandler lists the models, optionally only those offered for ?task=.
func (h *APIHandler) ModelsHandler(c *gin.Context) {
	if task := c.Query("task"); task != "" {
		c.JSON(http.StatusOK, gin.H{"items": catalog.ModelsForTask(task)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": catalog.Models()})
}

// JobHandler returns the status record of a background job, looked up by
// the task_id an async request returned.
func (h *APIHandler) JobHandler(c *gin.Context) {
	job, err := h.App.JobStore.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		ServiceError(c, "get job", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": job})
}

func (h *APIHandler) TaskTypesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": catalog.TaskTypes()})
}

// --- Health ---

func (h *APIHandler) HealthHandler(c *gin.Context) {
	if err := h.App.Ping(c.Request.Context()); err != nil {
		ServiceUnavailable(c, "storage: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
