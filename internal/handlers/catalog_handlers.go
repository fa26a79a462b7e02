package handlers

import (
	"log"
	"net/http"

	"rnbridge/internal/common"
	"rnbridge/internal/repositories"

	"github.com/labstack/echo/v4"
)

// CatalogHandlers serves the read-only marketing content.
type CatalogHandlers struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogHandlers(catalogRepo repositories.CatalogRepository) *CatalogHandlers {
	return &CatalogHandlers{catalogRepo: catalogRepo}
}

// ListServices handles GET /api/services
func (h *CatalogHandlers) ListServices(c echo.Context) error {
	services, err := h.catalogRepo.ListServices(c.Request().Context())
	if err != nil {
		log.Printf("Error fetching services: %v", err)
		return common.SendServerError(c, "fetch services")
	}
	return common.SendData(c, http.StatusOK, services)
}

// ListTestimonials handles GET /api/testimonials
func (h *CatalogHandlers) ListTestimonials(c echo.Context) error {
	testimonials, err := h.catalogRepo.ListTestimonials(c.Request().Context())
	if err != nil {
		log.Printf("Error fetching testimonials: %v", err)
		return common.SendServerError(c, "fetch testimonials")
	}
	return common.SendData(c, http.StatusOK, testimonials)
}
