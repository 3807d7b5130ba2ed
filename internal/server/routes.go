package server

import (
	"github.com/corposcope/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Network routes
	apiRoutes.GET("/networks", routes.GetNetworksHandler)
	apiRoutes.GET("/networks/sample", routes.GetSampleNetworkHandler)
	apiRoutes.GET("/networks/:id", routes.GetNetworkHandler)
	apiRoutes.POST("/networks", routes.CreateNetworkHandler)
	apiRoutes.DELETE("/networks/:id", routes.DeleteNetworkHandler)
	apiRoutes.GET("/networks/:id/export", routes.GetNetworkExportHandler)

	// Async build jobs
	apiRoutes.POST("/network-jobs", routes.CreateNetworkJobsHandler)
}
