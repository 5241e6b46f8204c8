package handler

import (
	"errors"
	"net/http"

	"gamecatalog/backend/internal/ingest"
	"gamecatalog/backend/internal/logger"
	"gamecatalog/backend/internal/search"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Detail string `json:"detail" example:"An error message"`
}

// MissingColumnsResponse is returned when an upload lacks required columns.
type MissingColumnsResponse struct {
	Detail    string   `json:"detail" example:"missing columns in CSV: [Tags]"`
	Missing   []string `json:"missing,omitempty"`
	Duplicate []string `json:"duplicate,omitempty"`
}

// respondError maps service errors to HTTP responses. Internal failures are
// logged and reported without detail.
func respondError(c *gin.Context, err error) {
	var (
		sve *ingest.SchemaValidationError
		ce  *ingest.CellError
		dke *ingest.DuplicateKeyError
		ae  *search.AuthorizationError
		rde *search.RowDecodeError
	)
	switch {
	case errors.As(err, &sve):
		c.JSON(http.StatusBadRequest, MissingColumnsResponse{Detail: sve.Error(), Missing: sve.Missing, Duplicate: sve.Duplicate})
	case errors.As(err, &ce), errors.As(err, &dke), errors.Is(err, search.ErrUnknownCriterion):
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	case errors.As(err, &ae):
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: ae.Error()})
	case errors.As(err, &rde):
		log := logger.FromContext(c.Request.Context())
		log.Error().Err(err).Msg("stored row violates catalog schema")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Internal server error"})
	default:
		_ = c.Error(err)
		log := logger.FromContext(c.Request.Context())
		log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Internal server error"})
	}
}
