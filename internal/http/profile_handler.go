package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"love-match/internal/domain"
	"love-match/internal/service"
)

// ProfileHandler expone el cuestionario y los cálculos sin persistencia.
type ProfileHandler struct {
	logger   *zap.Logger
	profiles *service.ProfileService
}

func NewProfileHandler(logger *zap.Logger, profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{logger: logger, profiles: profiles}
}

// GetQuestionnaire maneja GET /questionnaire.
func (h *ProfileHandler) GetQuestionnaire(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.profiles.Questionnaire()})
}

// PreviewProfile maneja POST /profiles/preview.
func (h *ProfileHandler) PreviewProfile(c *gin.Context) {
	var req struct {
		Answers        map[string]string `json:"answers" binding:"required"`
		InRelationship bool              `json:"in_relationship"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid preview profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	profile, err := h.profiles.Preview(req.Answers, req.InRelationship)
	if err != nil {
		writeServiceError(c, h.logger, "preview profile", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// PreviewMatch maneja POST /matches/preview.
func (h *ProfileHandler) PreviewMatch(c *gin.Context) {
	var req struct {
		ProfileA *domain.FullProfile `json:"profile_a" binding:"required"`
		ProfileB *domain.FullProfile `json:"profile_b" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid preview match request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.profiles.ValidateProfile(*req.ProfileA); err != nil {
		writeServiceError(c, h.logger, "preview match", fmt.Errorf("profile_a: %w", err))
		return
	}
	if err := h.profiles.ValidateProfile(*req.ProfileB); err != nil {
		writeServiceError(c, h.logger, "preview match", fmt.Errorf("profile_b: %w", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": h.profiles.Match(*req.ProfileA, *req.ProfileB)})
}
