package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/realty-crm/internal/api/middleware"
	"github.com/feral-file/realty-crm/internal/api/shared/dto"
	apierrors "github.com/feral-file/realty-crm/internal/api/shared/errors"
	"github.com/feral-file/realty-crm/internal/logger"
)

// respondError writes the failure envelope for an executor error
func respondError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
		apiErr = apierrors.NewInternalError("Internal server error")
	}

	if apiErr.StatusCode() >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), apiErr,
			zap.String("path", c.Request.URL.Path),
			zap.String("code", string(apiErr.Code)),
		)
	}

	c.JSON(apiErr.StatusCode(), dto.NewErrorResponse(apiErr))
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondError(c, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string, details ...string) {
	respondError(c, apierrors.NewValidationError(message, details...))
}

// respondUnauthorized responds with an unauthorized error
func respondUnauthorized(c *gin.Context) {
	middleware.Abort(c, apierrors.NewUnauthorizedError("Authentication required"))
}
