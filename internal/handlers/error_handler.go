package handlers

import (
	"errors"
	"log"
	"net/http"

	"rnbridge/internal/common"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler is the catch-all: unmatched routes come through as 404,
// anything uncaught becomes a generic 500. Both use the {error, message}
// shape every other error response shares.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound {
			_ = c.JSON(http.StatusNotFound, common.ErrorResponse{
				Error:   "Route not found",
				Message: "The requested endpoint does not exist",
			})
			return
		}
		_ = c.JSON(he.Code, common.ErrorResponse{
			Error:   http.StatusText(he.Code),
			Message: he.Error(),
		})
		return
	}

	log.Printf("Unhandled error: %v", err)
	_ = c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Error:   "Something went wrong!",
		Message: err.Error(),
	})
}
