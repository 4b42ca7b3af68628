package router

import (
	"path/filepath"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"

	"github.com/tiw/gaap-web-service/internal/handler"
	"github.com/tiw/gaap-web-service/internal/middleware"
)

// Setup registers all routes. The endpoint shapes mirror the published API:
// bare JSON documents, no envelope, no authentication.
func Setup(
	h *server.Hertz,
	elementHandler *handler.ElementHandler,
	healthHandler *handler.HealthHandler,
	webDir string,
) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// Swagger API documentation at /swagger/index.html
	h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))

	// Health probes
	h.GET("/ping", healthHandler.Ping)
	h.GET("/health/ready", healthHandler.Readiness)
	h.GET("/health/live", healthHandler.Liveness)

	// Taxonomy resolution endpoints
	h.GET("/", elementHandler.Info)
	h.GET("/elements", elementHandler.List)
	h.GET("/element/:name", elementHandler.Get)
	h.GET("/element/:name/label", elementHandler.GetLabel)
	h.GET("/element/:name/references", elementHandler.GetReferences)
	h.GET("/search", elementHandler.Search)

	// Bundled web UI
	h.StaticFile("/index.html", filepath.Join(webDir, "index.html"))
	h.Static("/static", webDir)
}
