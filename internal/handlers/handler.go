package handlers

import (
	_ "hvac_assistant/docs"
	"hvac_assistant/internal/logger"
	"hvac_assistant/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Chat endpoints (public)
	h.registerAssistantRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Chat over WebSocket (HTTP upgrade) on the same port
	router.GET("/ws/assistant", h.wsAssistant)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAssistantRoutes(r *gin.Engine) {
	chat := r.Group("/api/v1/assistant")
	{
		chat.GET("/quick-commands", h.quickCommands)
		chat.POST("/classify", h.classify)
		chat.POST("/sessions", h.createSession)
		chat.POST("/sessions/:id/messages", h.sendMessage)
		chat.GET("/sessions/:id/messages", h.listMessages)
		chat.GET("/sessions/:id/stats", h.sessionStats)
		chat.GET("/sessions/:id/display", h.sessionDisplay)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerDeviceRoutes(api)
		h.registerSettingsRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerDeviceRoutes(api *gin.RouterGroup) {
	devices := api.Group("/devices")
	{
		devices.GET("", h.listDevices)
		devices.POST("", h.createDevice)
		devices.GET("/:id", h.getDevice)
		devices.PATCH("/:id", h.updateDevice)
		devices.DELETE("/:id", h.deleteDevice)
	}
}

func (h *Handler) registerSettingsRoutes(api *gin.RouterGroup) {
	settings := api.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.updateSettings)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.getLogs)
	}
}
