package apihandlers

import (
	"github.com/gin-gonic/gin"

	"twm/internal/app"
)

// NewRouter builds the gin engine with every route registered.
func NewRouter(a *app.App) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	RegisterRoutes(router, NewAPIHandler(a))
	return router
}

func RegisterRoutes(router *gin.Engine, h *APIHandler) {
	router.GET("/health", h.HealthHandler)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/classify", h.ClassifyHandler)
		v1.POST("/generate", h.GenerateHandler)
		v1.POST("/followups", h.FollowUpsHandler)
		v1.GET("/jobs/:id", h.JobHandler)

		contentGroup := v1.Group("/content")
		{
			contentGroup.GET("", h.ListContentHandler)
			contentGroup.GET("/:id", h.GetContentHandler)
			contentGroup.DELETE("/:id", h.DeleteContentHandler)
			contentGroup.POST("/:id/audio", h.PodcastAudioHandler)
		}
		v1.POST("/documents", h.SaveDocumentHandler)

		chatGroup := v1.Group("/chat")
		{
			chatGroup.GET("", h.ChatHistoryHandler)
			chatGroup.POST("", h.SendChatHandler)
			chatGroup.DELETE("", h.ClearChatHandler)
		}

		v1.GET("/settings", h.GetSettingsHandler)
		v1.PUT("/settings", h.PutSettingsHandler)

		v1.GET("/models", h.ModelsHandler)
		v1.GET("/tasks", h.TaskTypesHandler)

		speechGroup := v1.Group("/speech")
		{
			speechGroup.POST("/transcribe", h.TranscribeHandler)
			speechGroup.POST("/synthesize", h.SynthesizeHandler)
		}
	}
}
