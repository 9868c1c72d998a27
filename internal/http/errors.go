package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"love-match/internal/service"
)

// writeServiceError traduce errores de servicio a códigos HTTP. Los errores no
// esperados se loguean y se responden con un mensaje genérico.
func writeServiceError(c *gin.Context, logger *zap.Logger, op string, err error) {
	status, msg := http.StatusInternalServerError, "internal error"
	switch {
	case errors.Is(err, service.ErrInvalidAnswer), errors.Is(err, service.ErrIncompleteAnswers):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrInvalidSide):
		status, msg = http.StatusBadRequest, "invalid side"
	case errors.Is(err, service.ErrPairingNotFound):
		status, msg = http.StatusNotFound, "pairing not found"
	case errors.Is(err, service.ErrSideAlreadyAttached):
		status, msg = http.StatusConflict, "side already submitted"
	case errors.Is(err, service.ErrPairingIncomplete):
		status, msg = http.StatusConflict, "pairing incomplete"
	case errors.Is(err, service.ErrRateLimited):
		status, msg = http.StatusTooManyRequests, "too many requests"
	default:
		logger.Error(op+" failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": msg})
}
