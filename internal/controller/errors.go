package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia/internal/apperrors"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/rs/zerolog/log"
)

func badRequest(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err)
}

// respondError writes the error envelope. Unclassified errors are logged and
// reported with a generic message so driver details never reach the client.
func respondError(c *gin.Context, err error) {
	status := apperrors.StatusCode(err)
	message := err.Error()
	if !apperrors.IsClassified(err) {
		log.Error().Err(err).Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		message = apperrors.ErrInternal.Error()
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// Recovery turns panics into the 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Success: false,
			Error:   http.StatusInternalServerError,
			Message: "Something went wrong",
		})
	})
}
