package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edugate/students/internal/app/models/dto"
	"github.com/edugate/students/internal/pkg/apperrors"
	"github.com/edugate/students/internal/pkg/logger"
)

// HandleAPIError is the single translation point from error kind to HTTP
// status code and error envelope. Every controller routes service failures
// through here.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrMissingAuthContext):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrDuplicateStudent):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error"))
	}
}
