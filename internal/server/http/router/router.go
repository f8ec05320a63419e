package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/photokiosk/internal/config"
	"github.com/polkiloo/photokiosk/internal/server/http/handlers"
	"github.com/polkiloo/photokiosk/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.KioskFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.MaxMultipartMemory = cfg.MaxUploadMemory

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS(cfg.CORSOrigins))
	engine.Use(middleware.DecompressRequest())
	// photo bytes are already compressed
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPathsRegexs([]string{`^/api/uploads/`})))

	healthHandler := handlers.NewHealthHandler(facade, logger)
	settingsHandler := handlers.NewSettingsHandler(facade)
	sessionHandler := handlers.NewSessionHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	blobHandler := handlers.NewBlobHandler(facade)

	api := engine.Group("/api")
	api.GET("/", healthHandler.Root)
	api.GET("/health", healthHandler.Health)

	api.GET("/settings", settingsHandler.Get)
	api.PUT("/settings", settingsHandler.Update)
	api.POST("/admin/verify-pin", settingsHandler.VerifyPIN)

	sessions := api.Group("/sessions")
	sessions.POST("", sessionHandler.Create)
	sessions.GET("/:id", sessionHandler.Get)
	sessions.GET("/:id/photos", sessionHandler.Photos)
	sessions.POST("/:id/photos", sessionHandler.Upload)
	sessions.POST("/:id/orders", orderHandler.Create)

	orders := api.Group("/orders")
	orders.GET("/:number", orderHandler.Get)
	orders.POST("/:number/mark-printed", orderHandler.MarkPrinted)

	api.GET("/uploads/:key", blobHandler.Get)

	return engine
}
