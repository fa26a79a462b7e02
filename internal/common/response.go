package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the wire shape shared by every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SuccessResponse wraps successful replies. Message and Data are omitted
// when empty so list endpoints stay as {success, data}.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// SendData replies with {success:true, data}.
func SendData(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, SuccessResponse{Success: true, Data: data})
}

// SendMessage replies with {success:true, message}.
func SendMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, SuccessResponse{Success: true, Message: message})
}

// SendMessageData replies with {success:true, message, data}.
func SendMessageData(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, SuccessResponse{Success: true, Message: message, Data: data})
}

// SendValidationError replies 400 for a missing or malformed field.
func SendValidationError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields", Message: message})
}

// SendConflictError replies 400 for a duplicate-email submission.
func SendConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email already registered", Message: message})
}

// SendNotFoundError replies 404 for an absent row.
func SendNotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found", Message: "The requested " + resource + " does not exist"})
}

// SendServerError replies 500 with a generic message, never the cause.
func SendServerError(c echo.Context, what string) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + what, Message: "Please try again later"})
}
