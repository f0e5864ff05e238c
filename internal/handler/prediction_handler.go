package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/predictions-api/internal/domain/entity"
	apperrors "github.com/yourusername/predictions-api/internal/pkg/errors"
	"github.com/yourusername/predictions-api/internal/service"
)

// PredictionHandler обрабатывает запросы, связанные с прогнозами
type PredictionHandler struct {
	predictionService *service.PredictionService
	breakdownService  *service.BreakdownService
}

// NewPredictionHandler создает новый обработчик прогнозов
func NewPredictionHandler(
	predictionService *service.PredictionService,
	breakdownService *service.BreakdownService,
) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
		breakdownService:  breakdownService,
	}
}

// SubmitPredictionRequest представляет запрос на отправку прогноза
type SubmitPredictionRequest struct {
	UserID        string `json:"userId" binding:"required"`
	WydadScore    *int   `json:"wydadScore" binding:"required,min=0"`
	OpponentScore *int   `json:"opponentScore" binding:"required,min=0"`
	Scorers       []string `json:"scorers"`
	AdvancedEvents []struct {
		Type   string `json:"type" binding:"required"`
		Player string `json:"player"`
	} `json:"advancedEvents"`
}

// SubmitPrediction обрабатывает отправку прогноза на матч
// POST /api/matches/:id/predictions
func (h *PredictionHandler) SubmitPrediction(c *gin.Context) {
	matchID := c.MustGet("matchID").(string)

	var req SubmitPredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events := make([]entity.AdvancedEvent, 0, len(req.AdvancedEvents))
	for _, ev := range req.AdvancedEvents {
		events = append(events, entity.AdvancedEvent{Type: ev.Type, Player: ev.Player})
	}

	p, err := h.predictionService.SubmitPrediction(c.Request.Context(), &entity.Prediction{
		UserID:         req.UserID,
		MatchID:        matchID,
		WydadScore:     *req.WydadScore,
		OpponentScore:  *req.OpponentScore,
		Scorers:        req.Scorers,
		AdvancedEvents: events,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// GetUserPrediction возвращает прогноз пользователя на матч
// GET /api/matches/:id/predictions/:userId
func (h *PredictionHandler) GetUserPrediction(c *gin.Context) {
	matchID := c.MustGet("matchID").(string)
	userID := c.Param("userId")

	p, err := h.predictionService.GetUserPrediction(c.Request.Context(), userID, matchID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// GetMatchPredictions возвращает все прогнозы на матч
// GET /api/matches/:id/predictions
func (h *PredictionHandler) GetMatchPredictions(c *gin.Context) {
	matchID := c.MustGet("matchID").(string)

	preds, err := h.predictionService.GetMatchPredictions(c.Request.Context(), matchID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"predictions": preds,
		"total":       len(preds),
	})
}

// GetBreakdown возвращает построчную расшифровку очков прогноза.
// Параметр league переключает веса на лиговые.
// GET /api/matches/:id/predictions/:userId/breakdown?league=<leagueId>
func (h *PredictionHandler) GetBreakdown(c *gin.Context) {
	matchID := c.MustGet("matchID").(string)
	userID := c.Param("userId")
	leagueID := c.Query("league")

	breakdown, err := h.breakdownService.GetBreakdown(c.Request.Context(), userID, matchID, leagueID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// handleError преобразует ошибки сервисов в HTTP-ответы
func handleError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
