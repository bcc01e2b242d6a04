package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"twm/internal/models"
)

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *APIHandler) ChatHistoryHandler(c *gin.Context) {
	msgs, err := h.App.ChatService.History(c.Request.Context())
	if err != nil {
		ServiceError(c, "chat history", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": msgs})
}

func (h *APIHandler) SendChatHandler(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	reply, err := h.App.ChatService.Send(c.Request.Context(), req.Message)
	if err != nil {
		ServiceError(c, "chat", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reply})
}

func (h *APIHandler) ClearChatHandler(c *gin.Context) {
	if err := h.App.ChatService.Clear(c.Request.Context()); err != nil {
		ServiceError(c, "clear chat", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSettingsHandler returns the settings with API keys masked.
func (h *APIHandler) GetSettingsHandler(c *gin.Context) {
	st, err := h.App.SettingsService.Masked(c.Request.Context())
	if err != nil {
		ServiceError(c, "get settings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": st})
}

// PutSettingsHandler replaces the settings. Keys sent back in masked form
// keep their stored value.
func (h *APIHandler) PutSettingsHandler(c *gin.Context) {
	in := models.DefaultSettings()
	if err := c.ShouldBindJSON(&in); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	ctx := c.Request.Context()
	if _, err := h.App.SettingsService.Save(ctx, in); err != nil {
		ServiceError(c, "save settings", err)
		return
	}
	st, err := h.App.SettingsService.Masked(ctx)
	if err != nil {
		ServiceError(c, "get settings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": st})
}
