package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/predictions-api/internal/domain/entity"
	"github.com/yourusername/predictions-api/internal/service"
)

// LeagueHandler обрабатывает запросы, связанные с лигами и их таблицами
type LeagueHandler struct {
	leagueService  *service.LeagueService
	rankingService *service.RankingService
}

// NewLeagueHandler создает новый обработчик лиг
func NewLeagueHandler(leagueService *service.LeagueService, rankingService *service.RankingService) *LeagueHandler {
	return &LeagueHandler{
		leagueService:  leagueService,
		rankingService: rankingService,
	}
}

// CreateLeagueRequest представляет запрос на создание лиги
type CreateLeagueRequest struct {
	Name    string                `json:"name" binding:"required,min=3,max=100"`
	OwnerID string                `json:"ownerId" binding:"required"`
	Scoring *entity.ScoringConfig `json:"scoring"` // Опционально, nil = дефолт
}

// CreateLeague создает новую лигу
// POST /api/leagues
func (h *LeagueHandler) CreateLeague(c *gin.Context) {
	var req CreateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	league, err := h.leagueService.CreateLeague(c.Request.Context(), req.Name, req.OwnerID, req.Scoring)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, league)
}

// JoinLeagueRequest представляет запрос на вступление в лигу
type JoinLeagueRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// JoinLeague добавляет пользователя в лигу
// POST /api/leagues/:id/join
func (h *LeagueHandler) JoinLeague(c *gin.Context) {
	leagueID := c.MustGet("leagueID").(string)

	var req JoinLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	league, err := h.leagueService.JoinLeague(c.Request.Context(), leagueID, req.UserID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, league)
}

// GetLeague возвращает лигу по идентификатору
// GET /api/leagues/:id
func (h *LeagueHandler) GetLeague(c *gin.Context) {
	leagueID := c.MustGet("leagueID").(string)

	league, err := h.leagueService.GetLeague(c.Request.Context(), leagueID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, league)
}

// ListLeagues возвращает все лиги
// GET /api/leagues
func (h *LeagueHandler) ListLeagues(c *gin.Context) {
	leagues, err := h.leagueService.ListLeagues(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leagues": leagues,
		"total":   len(leagues),
	})
}

// GetLeagueRanking возвращает таблицу лидеров лиги
// GET /api/leagues/:id/ranking
func (h *LeagueHandler) GetLeagueRanking(c *gin.Context) {
	leagueID := c.MustGet("leagueID").(string)

	entries, err := h.rankingService.LeagueRanking(c.Request.Context(), leagueID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ranking": entries,
		"total":   len(entries),
	})
}

// ExportLeagueRanking экспортирует таблицу лидеров лиги в XLSX
// GET /api/leagues/:id/ranking/export
func (h *LeagueHandler) ExportLeagueRanking(c *gin.Context) {
	leagueID := c.MustGet("leagueID").(string)

	league, err := h.leagueService.GetLeague(c.Request.Context(), leagueID)
	if err != nil {
		handleError(c, err)
		return
	}
	entries, err := h.rankingService.LeagueRanking(c.Request.Context(), leagueID)
	if err != nil {
		handleError(c, err)
		return
	}

	filename := fmt.Sprintf("league_%s_ranking_%s", league.ID, time.Now().Format("2006-01-02"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Classement"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[LeagueHandler] Failed to create stream writer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{"Rank", "User", "Points", "Predictions", "Exact scores", "Correct results"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[LeagueHandler] Failed to write headers: %v", err)
	}

	for i, e := range entries {
		cell := "A" + strconv.Itoa(i+2)
		row := []interface{}{i + 1, e.UserID, e.Points, e.Predictions, e.ExactScores, e.CorrectResults}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[LeagueHandler] Failed to write row %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[LeagueHandler] Failed to flush stream writer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build Excel file"})
		return
	}
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[LeagueHandler] Failed to write Excel file: %v", err)
	}
}
