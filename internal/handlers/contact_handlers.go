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

// ContactHandlers handles contact-form and inquiry administration requests
type ContactHandlers struct {
	inquiryService services.InquiryService
}

func NewContactHandlers(inquiryService services.InquiryService) *ContactHandlers {
	return &ContactHandlers{inquiryService: inquiryService}
}

// SubmitInquiryRequest is the contact-form payload
type SubmitInquiryRequest struct {
	Name              string  `json:"name" validate:"required"`
	Email             string  `json:"email" validate:"required"`
	Phone             *string `json:"phone"`
	CountryOfInterest *string `json:"country_of_interest"`
	Message           string  `json:"message" validate:"required"`
}

type submissionData struct {
	ID        int64     `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Submit handles POST /api/contact/submit
func (h *ContactHandlers) Submit(c echo.Context) error {
	var req SubmitInquiryRequest
	if err := c.Bind(&req); err != nil {
		return common.SendValidationError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "Name, email, and message are required")
	}

	inquiry := &models.Inquiry{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		CountryOfInterest: req.CountryOfInterest,
		Message:           req.Message,
	}

	result, err := h.inquiryService.Submit(c.Request().Context(), inquiry)
	if err != nil {
		if common.IsValidationError(err) {
			return common.SendValidationError(c, err.Error())
		}
		log.Printf("Error submitting contact form: %v", err)
		return common.SendServerError(c, "submit contact form")
	}

	data := submissionData{
		ID:        result.Inquiry.ID,
		Status:    result.Inquiry.Status,
		CreatedAt: result.Inquiry.CreatedAt,
	}

	if result.Degraded {
		return common.SendMessageData(c, http.StatusOK, "Contact form submitted successfully (saved locally)", data)
	}
	return common.SendMessageData(c, http.StatusCreated, "Contact form submitted successfully", data)
}

// ListInquiries handles GET /api/contact/inquiries
func (h *ContactHandlers) ListInquiries(c echo.Context) error {
	inquiries, err := h.inquiryService.List(c.Request().Context())
	if err != nil {
		log.Printf("Error fetching contact inquiries: %v", err)
		return common.SendServerError(c, "fetch contact inquiries")
	}
	return common.SendData(c, http.StatusOK, inquiries)
}

// GetInquiry handles GET /api/contact/inquiries/:id
func (h *ContactHandlers) GetInquiry(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return common.SendValidationError(c, "Invalid inquiry ID format")
	}

	inquiry, err := h.inquiryService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.SendNotFoundError(c, "Inquiry")
		}
		log.Printf("Error fetching inquiry: %v", err)
		return common.SendServerError(c, "fetch inquiry")
	}
	return common.SendData(c, http.StatusOK, inquiry)
}

// UpdateStatusRequest carries the new status for an inquiry or application
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateInquiryStatus handles PATCH /api/contact/inquiries/:id/status
func (h *ContactHandlers) UpdateInquiryStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return common.SendValidationError(c, "Invalid inquiry ID format")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return common.SendValidationError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "Status is required")
	}

	inquiry, err := h.inquiryService.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.SendNotFoundError(c, "Inquiry")
		}
		log.Printf("Error updating inquiry status: %v", err)
		return common.SendServerError(c, "update inquiry status")
	}
	return common.SendData(c, http.StatusOK, inquiry)
}

// DeleteInquiry handles DELETE /api/contact/inquiries/:id
func (h *ContactHandlers) DeleteInquiry(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return common.SendValidationError(c, "Invalid inquiry ID format")
	}

	if err := h.inquiryService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.SendNotFoundError(c, "Inquiry")
		}
		log.Printf("Error deleting inquiry: %v", err)
		return common.SendServerError(c, "delete inquiry")
	}
	return common.SendMessage(c, http.StatusOK, "Inquiry deleted successfully")
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
