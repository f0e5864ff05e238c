package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/predictions-api/internal/domain/entity"
	"github.com/yourusername/predictions-api/internal/service"
)

// MatchHandler обрабатывает запросы, связанные с календарём матчей
type MatchHandler struct {
	matchService  *service.MatchService
	resultService *service.ResultService
}

// NewMatchHandler создает новый обработчик матчей
func NewMatchHandler(matchService *service.MatchService, resultService *service.ResultService) *MatchHandler {
	return &MatchHandler{
		matchService:  matchService,
		resultService: resultService,
	}
}

// CreateMatchRequest представляет запрос на добавление матча
type CreateMatchRequest struct {
	Opponent    string    `json:"opponent" binding:"required,min=2,max=100"`
	Competition string    `json:"competition" binding:"omitempty,max=100"`
	Home        bool      `json:"home"`
	KickoffAt   time.Time `json:"kickoffAt" binding:"required"`
}

// CreateMatch добавляет матч в календарь
// POST /api/admin/matches
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.CreateMatch(c.Request.Context(), &entity.Match{
		Opponent:    req.Opponent,
		Competition: req.Competition,
		Home:        req.Home,
		KickoffAt:   req.KickoffAt,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, match)
}

// GetMatch возвращает матч по идентификатору
// GET /api/matches/:id
func (h *MatchHandler) GetMatch(c *gin.Context) {
	matchID := c.MustGet("matchID").(string)

	match, err := h.matchService.GetMatch(c.Request.Context(), matchID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// ListMatches возвращает все матчи календаря
// GET /api/matches
func (h *MatchHandler) ListMatches(c *gin.Context) {
	matches, err := h.matchService.ListMatches(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matches": matches,
		"total":   len(matches),
	})
}

// PublishResultRequest представляет запрос на публикацию результата
type PublishResultRequest struct {
	WydadScore    *int     `json:"wydadScore" binding:"required,min=0"`
	OpponentScore *int     `json:"opponentScore" binding:"required,min=0"`
	Scorers       []string `json:"scorers"`
	Events        []struct {
		Type     string `json:"type" binding:"required"`
		Player   string `json:"player"`
		Minute   int    `json:"minute" binding:"min=0"`
		GoalType string `json:"goalType"`
		Order    int    `json:"order"`
	} `json:"events"`
}

// PublishResult публикует официальный результат матча. Повторная
// публикация перезаписывает результат и запускает пересчёт заново.
// POST /api/admin/matches/:id/result
func (h *MatchHandler) PublishResult(c *gin.Context) {
	matchID := c.MustGet("matchID").(string)

	var req PublishResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events := make([]entity.MatchEvent, 0, len(req.Events))
	for _, ev := range req.Events {
		events = append(events, entity.MatchEvent{
			Type:     ev.Type,
			Player:   ev.Player,
			Minute:   ev.Minute,
			GoalType: ev.GoalType,
			Order:    ev.Order,
		})
	}

	result, err := h.resultService.PublishResult(c.Request.Context(), &entity.MatchResult{
		MatchID:       matchID,
		WydadScore:    *req.WydadScore,
		OpponentScore: *req.OpponentScore,
		Scorers:       req.Scorers,
		Events:        events,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetMatchResult возвращает опубликованный результат матча
// GET /api/matches/:id/result
func (h *MatchHandler) GetMatchResult(c *gin.Context) {
	matchID := c.MustGet("matchID").(string)

	result, err := h.resultService.GetMatchResult(c.Request.Context(), matchID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
