package handlers

import (
	"wearable_display/internal/logger"
	"wearable_display/internal/render"
	"wearable_display/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RenderStream is the source of renderer calls forwarded on /ws. *render.Hub implements it.
type RenderStream interface {
	Subscribe() (<-chan render.Command, func())
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	stream   RenderStream
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies. stream may be nil;
// /ws then carries status envelopes only.
func NewHandler(services *service.Service, stream RenderStream, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, stream: stream, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Render stream on the same port; browsers pass ?access_token=
	router.GET("/ws", h.operatorMiddleware, h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.operatorMiddleware)
	{
		h.registerDisplayRoutes(api)
		h.registerPowerRoutes(api)
		h.registerSensorRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerDisplayRoutes(api *gin.RouterGroup) {
	d := api.Group("/display")
	{
		d.GET("/status", h.getStatus)
		d.GET("/screen", h.getScreen)
		// Body example: {"screen":"SPL_PLOT_ECG"}
		d.PUT("/screen", h.setScreen)
		d.POST("/navigate", h.navigate)
		d.POST("/gesture", h.gesture)
		d.POST("/activity", h.activity)
		d.GET("/snapshot", h.getSnapshot)
	}
}

func (h *Handler) registerPowerRoutes(api *gin.RouterGroup) {
	p := api.Group("/power")
	{
		p.POST("/off", h.powerOff)
		p.POST("/boot", h.boot)
		p.POST("/keep-awake", h.keepAwake)
		p.POST("/battery", h.setBattery)
		p.POST("/progress", h.beginProgress)
		p.POST("/progress/update", h.updateProgress)
	}
}

func (h *Handler) registerSensorRoutes(api *gin.RouterGroup) {
	s := api.Group("/sensors")
	{
		s.POST("/ecg", h.pushECG)
		s.POST("/ppg-wrist", h.pushPPGWrist)
		s.POST("/ppg-finger", h.pushPPGFinger)
		s.POST("/boot", h.pushBoot)
		s.POST("/vitals", h.updateVitals)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}
