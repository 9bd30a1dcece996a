package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"passion-match/internal/domain"
	"passion-match/internal/service"
)

// AnalysisHandler expone el analizador de entrevistas y los rasgos persistidos.
type AnalysisHandler struct {
	logger   *zap.Logger
	traitSvc *service.TraitService
}

func NewAnalysisHandler(logger *zap.Logger, traitSvc *service.TraitService) *AnalysisHandler {
	return &AnalysisHandler{
		logger:   logger,
		traitSvc: traitSvc,
	}
}

type analyzeRequest struct {
	Transcript string                  `json:"transcript"`
	Turns      []domain.TranscriptTurn `json:"turns"`
	Niche      string                  `json:"niche" binding:"required"`
}

// transcript prefiere el texto plano; si viene vacio aplana los turnos.
func (r analyzeRequest) transcript() string {
	if strings.TrimSpace(r.Transcript) != "" {
		return r.Transcript
	}
	return service.FlattenTranscript(r.Turns)
}

// Analyze maneja POST /analyze. No persiste nada.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result := h.traitSvc.Analyze(c.Request.Context(), req.transcript(), req.Niche)
	c.JSON(http.StatusOK, gin.H{"analysis": result})
}

// SubmitTraits maneja POST /traits: analiza, persiste y asigna salas al usuario autenticado.
func (h *AnalysisHandler) SubmitTraits(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submit traits request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	traits, rooms, err := h.traitSvc.AnalyzeAndPersist(c.Request.Context(), claims.UserID, req.transcript(), req.Niche)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAnalysisInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		h.logger.Error("submit traits failed", zap.Error(err), zap.String("user_id", claims.UserID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save traits"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"traits": traits,
		"rooms":  rooms,
	})
}

// GetTraits maneja GET /traits/:user_id. Cada usuario solo lee sus propios rasgos.
func (h *AnalysisHandler) GetTraits(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	userID := strings.TrimSpace(c.Param("user_id"))
	if userID != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	traits, err := h.traitSvc.GetTraits(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTraitsNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "traits not found"})
		case errors.Is(err, service.ErrInvalidAnalysisInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		default:
			h.logger.Error("get traits failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch traits"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"traits": traits})
}
