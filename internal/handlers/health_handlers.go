package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthCheck handles GET /api/health.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "OK",
		"message":   "RNBRIDGE LTD API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Welcome handles GET / with a short endpoint index.
func Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Welcome to RNBRIDGE LTD API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":       "/api/health",
			"contact":      "/api/contact",
			"students":     "/api/students",
			"universities": "/api/universities",
		},
	})
}
