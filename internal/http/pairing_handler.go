package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"love-match/internal/service"
)

// PairingHandler mantiene dependencias para los endpoints de parejas.
type PairingHandler struct {
	logger   *zap.Logger
	pairings *service.PairingService
	reports  *service.ReportService
}

func NewPairingHandler(logger *zap.Logger, pairings *service.PairingService, reports *service.ReportService) *PairingHandler {
	return &PairingHandler{
		logger:   logger,
		pairings: pairings,
		reports:  reports,
	}
}

type submissionRequest struct {
	SubmissionID   string            `json:"submission_id"`
	Nickname       string            `json:"nickname" binding:"max=64"`
	Answers        map[string]string `json:"answers" binding:"required"`
	InRelationship bool              `json:"in_relationship"`
}

func (r submissionRequest) input() service.SubmissionInput {
	return service.SubmissionInput{
		SubmissionID:   r.SubmissionID,
		Nickname:       r.Nickname,
		Answers:        r.Answers,
		InRelationship: r.InRelationship,
	}
}

// CreatePairing maneja POST /pairings.
func (h *PairingHandler) CreatePairing(c *gin.Context) {
	var req submissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create pairing request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	created, err := h.pairings.Create(c.Request.Context(), req.input())
	if err != nil {
		writeServiceError(c, h.logger, "create pairing", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// AttachSide maneja PUT /pairings/:id/sides/:side.
func (h *PairingHandler) AttachSide(c *gin.Context) {
	id, ok := pairingID(c)
	if !ok {
		return
	}
	side, ok := GetSide(c)
	if !ok {
		if side, ok = parseSide(c.Param("side")); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid side"})
			return
		}
	}

	var req submissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid attach side request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sub, err := h.pairings.AttachSide(c.Request.Context(), id, side, req.input())
	if err != nil {
		writeServiceError(c, h.logger, "attach side", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"submission": sub})
}

// GetPairing maneja GET /pairings/:id.
func (h *PairingHandler) GetPairing(c *gin.Context) {
	id, ok := pairingID(c)
	if !ok {
		return
	}
	p, err := h.pairings.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, "get pairing", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pairing": p})
}

// GetMatch maneja GET /pairings/:id/match.
func (h *PairingHandler) GetMatch(c *gin.Context) {
	id, ok := pairingID(c)
	if !ok {
		return
	}
	_, result, err := h.pairings.Match(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, "match pairing", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": result})
}

// GetReport maneja GET /pairings/:id/report.
func (h *PairingHandler) GetReport(c *gin.Context) {
	id, ok := pairingID(c)
	if !ok {
		return
	}
	p, result, err := h.pairings.Match(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, "report pairing", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"match":  result,
		"report": h.reports.Report(c.Request.Context(), p, result),
	})
}

// pairingID valida que el id sea un UUID; los ids inválidos no pueden existir.
func pairingID(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "pairing not found"})
		return "", false
	}
	return id.String(), true
}
