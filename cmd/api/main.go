package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yourusername/predictions-api/internal/config"
	"github.com/yourusername/predictions-api/internal/domain/repository"
	"github.com/yourusername/predictions-api/internal/handler"
	"github.com/yourusername/predictions-api/internal/middleware"
	"github.com/yourusername/predictions-api/internal/repository/docstore"
	"github.com/yourusername/predictions-api/internal/repository/filedb"
	"github.com/yourusername/predictions-api/internal/repository/mongodb"
	redisRepo "github.com/yourusername/predictions-api/internal/repository/redis"
	"github.com/yourusername/predictions-api/internal/service"
	"github.com/yourusername/predictions-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Выбираем бэкенд хранилища документов. Выбор делается один раз при
	// старте: весь код выше этого места работает с интерфейсом DocumentStore.
	var store repository.DocumentStore
	switch cfg.Storage.Backend {
	case config.StorageBackendMongo:
		db, err := database.NewMongoDB(cfg.Storage.MongoURI, cfg.Storage.MongoDB)
		if err != nil {
			log.Printf("Failed to connect to MongoDB: %v", err)
			os.Exit(1)
		}
		mongoStore, err := mongodb.NewStore(db)
		if err != nil {
			log.Printf("Failed to initialize MongoDB store: %v", err)
			os.Exit(1)
		}
		store = mongoStore
		log.Printf("Using MongoDB document store (db: %s)", cfg.Storage.MongoDB)
	default:
		fileStore, err := filedb.NewStore(cfg.Storage.FilePath)
		if err != nil {
			log.Printf("Failed to open file store: %v", err)
			os.Exit(1)
		}
		store = fileStore
		log.Printf("Using embedded file document store (%s)", cfg.Storage.FilePath)
	}

	// Redis опционален: без него рейтинги считаются на каждый запрос
	var cacheRepo repository.CacheRepository
	if cfg.Redis.Enabled {
		redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		cacheRepo, err = redisRepo.NewCacheRepo(redisClient)
		if err != nil {
			log.Printf("Failed to initialize CacheRepo: %v", err)
			os.Exit(1)
		}
		log.Println("Successfully connected to Redis")
	}

	// Инициализируем репозитории
	predictionRepo := docstore.NewPredictionRepo(store)
	matchRepo := docstore.NewMatchRepo(store)
	resultRepo := docstore.NewResultRepo(store)
	leagueRepo := docstore.NewLeagueRepo(store)
	statsRepo := docstore.NewStatsRepo(store)

	// Инициализируем сервисы
	predictionService := service.NewPredictionService(predictionRepo, matchRepo)
	matchService := service.NewMatchService(matchRepo)
	statsService := service.NewStatsService(statsRepo, predictionRepo, resultRepo, matchRepo)
	rankingService := service.NewRankingService(leagueRepo, predictionRepo, resultRepo, cacheRepo)
	resultService := service.NewResultService(resultRepo, matchRepo, predictionRepo, statsService, rankingService)
	breakdownService := service.NewBreakdownService(predictionRepo, resultRepo, leagueRepo)
	leagueService := service.NewLeagueService(leagueRepo)

	// Инициализируем обработчики
	predictionHandler := handler.NewPredictionHandler(predictionService, breakdownService)
	matchHandler := handler.NewMatchHandler(matchService, resultService)
	leagueHandler := handler.NewLeagueHandler(leagueService, rankingService)
	userHandler := handler.NewUserHandler(statsService, rankingService, predictionService)

	// Инициализируем роутер Gin
	router := gin.Default()

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Матчи и прогнозы
		matches := api.Group("/matches")
		{
			matches.GET("", matchHandler.ListMatches)

			matchWithID := matches.Group("/:id")
			matchWithID.Use(middleware.ExtractIDParam("id", "matchID"))
			{
				matchWithID.GET("", matchHandler.GetMatch)
				matchWithID.GET("/result", matchHandler.GetMatchResult)
				matchWithID.GET("/predictions", predictionHandler.GetMatchPredictions)
				matchWithID.POST("/predictions", predictionHandler.SubmitPrediction)
				matchWithID.GET("/predictions/:userId", predictionHandler.GetUserPrediction)
				matchWithID.GET("/predictions/:userId/breakdown", predictionHandler.GetBreakdown)
			}
		}

		// Пользователи: статистика, значки, история прогнозов
		users := api.Group("/users")
		{
			users.GET("/:userId/stats", userHandler.GetUserStats)
			users.GET("/:userId/predictions", userHandler.GetUserPredictions)
		}

		// Глобальный рейтинг
		api.GET("/ranking", userHandler.GetGlobalRanking)

		// Лиги
		leagues := api.Group("/leagues")
		{
			leagues.GET("", leagueHandler.ListLeagues)
			leagues.POST("", leagueHandler.CreateLeague)

			leagueWithID := leagues.Group("/:id")
			leagueWithID.Use(middleware.ExtractIDParam("id", "leagueID"))
			{
				leagueWithID.GET("", leagueHandler.GetLeague)
				leagueWithID.POST("/join", leagueHandler.JoinLeague)
				leagueWithID.GET("/ranking", leagueHandler.GetLeagueRanking)
				leagueWithID.GET("/ranking/export", leagueHandler.ExportLeagueRanking)
			}
		}

		// Административные маршруты: календарь и публикация результатов
		admin := api.Group("/admin")
		{
			admin.POST("/matches", matchHandler.CreateMatch)

			adminMatch := admin.Group("/matches/:id")
			adminMatch.Use(middleware.ExtractIDParam("id", "matchID"))
			{
				adminMatch.POST("/result", matchHandler.PublishResult)
			}
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ждем сигнала остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
