package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "tipjar/internal/errors"
	"tipjar/internal/logger"
)

// respondWithError writes the wire error envelope {success:false, error}.
// If the error is an *AppError it uses the error's status code and message.
// Otherwise it logs the unexpected error and returns a generic internal
// server error; internal details never reach the client.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"success": false,
			"error":   appErr.Message,
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"success": false,
		"error":   apperrors.ErrInternalServer.Message,
	})
}
