package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"rnbridge/internal/common"
	"rnbridge/internal/models"
	"rnbridge/internal/services"

	"github.com/labstack/echo/v4"
)

const deadlineLayout = "2006-01-02"

// UniversityHandlers handles directory administration and search requests
type UniversityHandlers struct {
	universityService services.UniversityService
}

func NewUniversityHandlers(universityService services.UniversityService) *UniversityHandlers {
	return &UniversityHandlers{universityService: universityService}
}

// UniversityRequest is shared by create and update; the deadline arrives as
// a YYYY-MM-DD string.
type UniversityRequest struct {
	Name                string   `json:"name" validate:"required"`
	Country             string   `json:"country" validate:"required"`
	City                *string  `json:"city"`
	Ranking             *int     `json:"ranking"`
	TuitionFeeMin       *float64 `json:"tuition_fee_min"`
	TuitionFeeMax       *float64 `json:"tuition_fee_max"`
	Programs            []string `json:"programs"`
	Requirements        *string  `json:"requirements"`
	ApplicationDeadline *string  `json:"application_deadline"`
	WebsiteURL          *string  `json:"website_url"`
	ContactEmail        *string  `json:"contact_email"`
}

func (r *UniversityRequest) toModel() (*models.University, error) {
	university := &models.University{
		Name:          r.Name,
		Country:       r.Country,
		City:          r.City,
		Ranking:       r.Ranking,
		TuitionFeeMin: r.TuitionFeeMin,
		TuitionFeeMax: r.TuitionFeeMax,
		Programs:      r.Programs,
		Requirements:  r.Requirements,
		WebsiteURL:    r.WebsiteURL,
		ContactEmail:  r.ContactEmail,
	}
	if r.ApplicationDeadline != nil && *r.ApplicationDeadline != "" {
		deadline, err := time.Parse(deadlineLayout, *r.ApplicationDeadline)
		if err != nil {
			return nil, err
		}
		university.ApplicationDeadline = &deadline
	}
	return university, nil
}

// CreateUniversity handles POST /api/universities
func (h *UniversityHandlers) CreateUniversity(c echo.Context) error {
	var req UniversityRequest
	if err := c.Bind(&req); err != nil {
		return common.SendValidationError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "University name and country are required")
	}

	university, err := req.toModel()
	if err != nil {
		return common.SendValidationError(c, "Application deadline must be in YYYY-MM-DD format")
	}

	if err := h.universityService.Create(c.Request().Context(), university); err != nil {
		if common.IsValidationError(err) {
			return common.SendValidationError(c, err.Error())
		}
		log.Printf("Error adding university: %v", err)
		return common.SendServerError(c, "add university")
	}
	return common.SendMessageData(c, http.StatusCreated, "University added successfully", university)
}

// ListUniversities handles GET /api/universities
func (h *UniversityHandlers) ListUniversities(c echo.Context) error {
	universities, err := h.universityService.List(c.Request().Context())
	if err != nil {
		log.Printf("Error fetching universities: %v", err)
		return common.SendServerError(c, "fetch universities")
	}
	return common.SendData(c, http.StatusOK, universities)
}

// GetUniversity handles GET /api/universities/:id
func (h *UniversityHandlers) GetUniversity(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return common.SendValidationError(c, "Invalid university ID format")
	}

	university, err := h.universityService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.SendNotFoundError(c, "University")
		}
		log.Printf("Error fetching university: %v", err)
		return common.SendServerError(c, "fetch university")
	}
	return common.SendData(c, http.StatusOK, university)
}

// ListUniversitiesByCountry handles GET /api/universities/country/:country
func (h *UniversityHandlers) ListUniversitiesByCountry(c echo.Context) error {
	universities, err := h.universityService.ListByCountry(c.Request().Context(), c.Param("country"))
	if err != nil {
		log.Printf("Error fetching universities by country: %v", err)
		return common.SendServerError(c, "fetch universities")
	}
	return common.SendData(c, http.StatusOK, universities)
}

// ListUniversitiesByProgram handles GET /api/universities/program/:program
func (h *UniversityHandlers) ListUniversitiesByProgram(c echo.Context) error {
	universities, err := h.universityService.ListByProgram(c.Request().Context(), c.Param("program"))
	if err != nil {
		log.Printf("Error fetching universities by program: %v", err)
		return common.SendServerError(c, "fetch universities")
	}
	return common.SendData(c, http.StatusOK, universities)
}

// SearchUniversities handles GET /api/universities/search/:query
func (h *UniversityHandlers) SearchUniversities(c echo.Context) error {
	universities, err := h.universityService.Search(c.Request().Context(), c.Param("query"))
	if err != nil {
		log.Printf("Error searching universities: %v", err)
		return common.SendServerError(c, "search universities")
	}
	return common.SendData(c, http.StatusOK, universities)
}

// ListUniversitiesByBudget handles GET /api/universities/budget/:min/:max
func (h *UniversityHandlers) ListUniversitiesByBudget(c echo.Context) error {
	min, err := strconv.ParseFloat(c.Param("min"), 64)
	if err != nil {
		return common.SendValidationError(c, "Invalid budget range")
	}
	max, err := strconv.ParseFloat(c.Param("max"), 64)
	if err != nil {
		return common.SendValidationError(c, "Invalid budget range")
	}

	universities, err := h.universityService.ListByBudget(c.Request().Context(), min, max)
	if err != nil {
		log.Printf("Error fetching universities by budget: %v", err)
		return common.SendServerError(c, "fetch universities")
	}
	return common.SendData(c, http.StatusOK, universities)
}

// UpdateUniversity handles PUT /api/universities/:id
func (h *UniversityHandlers) UpdateUniversity(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return common.SendValidationError(c, "Invalid university ID format")
	}

	var req UniversityRequest
	if err := c.Bind(&req); err != nil {
		return common.SendValidationError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "University name and country are required")
	}

	university, err := req.toModel()
	if err != nil {
		return common.SendValidationError(c, "Application deadline must be in YYYY-MM-DD format")
	}
	university.ID = id

	updated, err := h.universityService.Update(c.Request().Context(), university)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.SendNotFoundError(c, "University")
		}
		if common.IsValidationError(err) {
			return common.SendValidationError(c, err.Error())
		}
		log.Printf("Error updating university: %v", err)
		return common.SendServerError(c, "update university")
	}
	return common.SendData(c, http.StatusOK, updated)
}

// DeleteUniversity handles DELETE /api/universities/:id
func (h *UniversityHandlers) DeleteUniversity(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return common.SendValidationError(c, "Invalid university ID format")
	}

	if err := h.universityService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.SendNotFoundError(c, "University")
		}
		log.Printf("Error deleting university: %v", err)
		return common.SendServerError(c, "delete university")
	}
	return common.SendMessage(c, http.StatusOK, "University deleted successfully")
}
