package apihandlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"twm/internal/generator"
	"twm/internal/models"
	"twm/internal/preview"
	"twm/internal/services"
)

type DocumentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
}

type SynthesizeRequest struct {
	Text string `json:"text" binding:"required"`
}

// ContentListItem is a library entry with its listing snippet.
type ContentListItem struct {
	*models.GeneratedContent
	Preview string `json:"preview"`
}

func (h *APIHandler) ListContentHandler(c *gin.Context) {
	params, err := parseListContentParams(c)
	if err != nil {
		BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}
	items, total, err := h.App.LibraryService.List(c.Request.Context(), params)
	if err != nil {
		ServiceError(c, "list content", err)
		return
	}
	out := make([]ContentListItem, len(items))
	for i, it := range items {
		out[i] = ContentListItem{GeneratedContent: it, Preview: preview.Snippet(it.Content, preview.DefaultMaxRunes)}
	}
	c.JSON(http.StatusOK, gin.H{"items": out, "total": total})
}

func parseListContentParams(c *gin.Context) (services.ListContentParams, error) {
	params := services.ListContentParams{Limit: 20}
	if t := c.Query("type"); t != "" {
		ct, err := generator.ParseContentType(t)
		if err != nil {
			return params, err
		}
		params.Type = ct
	}
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 {
			return params, fmt.Errorf("invalid limit: %s", l)
		}
		params.Limit = parsed
	}
	if o := c.Query("offset"); o != "" {
		parsed, err := strconv.Atoi(o)
		if err != nil || parsed < 0 {
			return params, fmt.Errorf("invalid offset: %s", o)
		}
		params.Offset = parsed
	}
	return params, nil
}

func (h *APIHandler) GetContentHandler(c *gin.Context) {
	content, err := h.App.LibraryService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		ServiceError(c, "get content", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": content})
}

func (h *APIHandler) DeleteContentHandler(c *gin.Context) {
	if err := h.App.LibraryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		ServiceError(c, "delete content", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *APIHandler) SaveDocumentHandler(c *gin.Context) {
	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	doc, err := h.App.LibraryService.SaveDocument(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		ServiceError(c, "save document", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": doc})
}

// PodcastAudioHandler renders audio for a podcast entry, or queues it with ?async=true.
func (h *APIHandler) PodcastAudioHandler(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if c.Query("async") == "true" {
		if h.App.JobClient == nil {
			ServiceUnavailable(c, "background jobs are not configured")
			return
		}
		taskID, err := h.App.SpeechService.EnqueueSynthesis(ctx, id)
		if err != nil {
			ServiceError(c, "enqueue synthesis", err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"data": gin.H{"id": id, "task_id": taskID}})
		return
	}
	content, err := h.App.SpeechService.SynthesizePodcast(ctx, id)
	if err != nil {
		ServiceError(c, "synthesize podcast", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": content})
}

// TranscribeHandler accepts raw audio bytes as the request body.
func (h *APIHandler) TranscribeHandler(c *gin.Context) {
	audio, err := io.ReadAll(c.Request.Body)
	if err != nil {
		BadRequest(c, "read audio: "+err.Error())
		return
	}
	if len(audio) == 0 {
		BadRequest(c, "audio body is empty")
		return
	}
	text, err := h.App.SpeechService.Transcribe(c.Request.Context(), audio)
	if err != nil {
		ServiceError(c, "transcribe", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (h *APIHandler) SynthesizeHandler(c *gin.Context) {
	var req SynthesizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	url, err := h.App.SpeechService.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		ServiceError(c, "synthesize", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"audioUrl": url})
}
