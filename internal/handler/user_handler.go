package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/predictions-api/internal/service"
)

// UserHandler обрабатывает запросы, связанные с пользователями:
// статистика, значки, глобальный рейтинг, история прогнозов
type UserHandler struct {
	statsService      *service.StatsService
	rankingService    *service.RankingService
	predictionService *service.PredictionService
}

// NewUserHandler создает новый обработчик пользователей
func NewUserHandler(
	statsService *service.StatsService,
	rankingService *service.RankingService,
	predictionService *service.PredictionService,
) *UserHandler {
	return &UserHandler{
		statsService:      statsService,
		rankingService:    rankingService,
		predictionService: predictionService,
	}
}

// GetUserStats возвращает накопительную статистику и значки пользователя
// GET /api/users/:userId/stats
func (h *UserHandler) GetUserStats(c *gin.Context) {
	userID := c.Param("userId")

	stats, err := h.statsService.GetUserStats(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetUserPredictions возвращает все прогнозы пользователя
// GET /api/users/:userId/predictions
func (h *UserHandler) GetUserPredictions(c *gin.Context) {
	userID := c.Param("userId")

	preds, err := h.predictionService.GetUserPredictions(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"predictions": preds,
		"total":       len(preds),
	})
}

// GetGlobalRanking возвращает глобальную таблицу лидеров
// GET /api/ranking
func (h *UserHandler) GetGlobalRanking(c *gin.Context) {
	entries, err := h.rankingService.GlobalRanking(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ranking": entries,
		"total":   len(entries),
	})
}
