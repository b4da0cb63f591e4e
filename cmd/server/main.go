package main

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tinseltown/scriptdoctor/internal/audience"
	"github.com/tinseltown/scriptdoctor/internal/cache"
	"github.com/tinseltown/scriptdoctor/internal/catalog"
	"github.com/tinseltown/scriptdoctor/internal/errors"
	"github.com/tinseltown/scriptdoctor/internal/generator"
	"github.com/tinseltown/scriptdoctor/internal/monitoring"
	"github.com/tinseltown/scriptdoctor/internal/ratelimit"
	"github.com/tinseltown/scriptdoctor/internal/scoring"
	"github.com/tinseltown/scriptdoctor/internal/security"
	"github.com/tinseltown/scriptdoctor/internal/types"
)

func main() {
	appLogger := monitoring.NewLogger()
	slog.SetDefault(appLogger.Logger)

	// Configuration from environment with defaults
	port := getEnvOrDefault("PORT", "8080")
	dataDir := getEnvOrDefault("DATA_DIR", "./data")
	redisURL := os.Getenv("REDIS_URL")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	maxTagSlots := getEnvIntOrDefault("MAX_TAG_SLOTS", 15)

	// Load game data
	store := catalog.NewStore(dataDir)
	cat, matrix, pairs, err := store.LoadAll()
	if err != nil {
		slog.Error("Failed to load game data", "data_dir", dataDir, "error", err)
		os.Exit(1)
	}
	slog.Info("Game data loaded",
		"tags", cat.Len(),
		"compatibility_pairs", matrix.Len(),
		"genre_pairs", pairs.Len(),
	)

	searchIndex := catalog.BuildSearchIndex(cat)
	optimizer := generator.New(cat, matrix, pairs, rand.New(rand.NewSource(time.Now().UnixNano())))

	appMetrics := monitoring.NewMetrics()

	// Redis-backed rate limiting with in-memory fallback
	redisClient, err := ratelimit.NewRedisClient(redisURL, redisPassword)
	if err != nil {
		slog.Warn("Redis unavailable, continuing with in-memory rate limiting", "error", err)
	}
	defer redisClient.Close()
	rateLimiter := ratelimit.NewRateLimiter(redisClient, ratelimit.DefaultConfig(), appMetrics)

	r := gin.New()

	r.Use(monitoring.MonitoringMiddleware(appMetrics, appLogger))
	r.Use(errors.ErrorHandler())
	r.Use(errors.RecoveryHandler())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	sec := security.NewMiddleware(security.DefaultConfig())
	r.Use(sec.SecurityHeaders)
	r.Use(sec.RequestTimeout)
	r.Use(sec.ValidateContentType)
	r.Use(sec.LimitBodySize)
	r.Use(rateLimiter.IPRateLimitMiddleware())

	// Calculator responses are pure functions of the request body, so they
	// cache aggressively.
	appCache := cache.New(15 * time.Minute)
	r.Use(appCache.Middleware(appMetrics, appLogger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   "1.0.0",
			"data": gin.H{
				"tags":                cat.Len(),
				"compatibility_pairs": matrix.Len(),
				"genre_pairs":         pairs.Len(),
			},
			"rate_limiter": rateLimiter.GetStats(),
		})
	})

	r.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, appMetrics.GetStats())
	})

	r.GET("/cache/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, appCache.Stats())
	})

	r.GET("/tags", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"tags":  searchIndex.Entries(),
			"count": len(searchIndex.Entries()),
		})
	})

	r.GET("/tags/search", func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			appErr := errors.NewValidationError("query parameter q is required")
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}
		results := searchIndex.Search(query)
		c.JSON(http.StatusOK, gin.H{
			"query":   query,
			"results": results,
			"count":   len(results),
		})
	})

	r.POST("/score", func(c *gin.Context) {
		var req types.ScoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := errors.NewValidationError("invalid request body", err.Error())
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}
		tags := req.ResolveTags()
		if len(tags) == 0 {
			appErr := errors.NewValidationError("at least one tag is required")
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		appMetrics.IncrementScoreCalls()
		summary := scoring.Score(tags, cat, matrix, pairs)
		appLogger.CalculationLogger(len(tags), summary.DisplayCom, summary.DisplayArt, len(summary.Spoilers), false)

		c.JSON(http.StatusOK, gin.H{
			"summary":     summary,
			"display_com": types.FormatFinalRating(summary.DisplayCom),
			"display_art": types.FormatFinalRating(summary.DisplayArt),
		})
	})

	r.POST("/deltas", func(c *gin.Context) {
		var req types.ScoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := errors.NewValidationError("invalid request body", err.Error())
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		appMetrics.IncrementScoreCalls()
		deltas := scoring.ScoreDeltas(req.ResolveTags(), cat, matrix, pairs)

		formatted := make(map[string]gin.H, len(deltas))
		for id, d := range deltas {
			formatted[id] = gin.H{
				"art_delta": d.Art,
				"com_delta": d.Com,
				"art_text":  types.FormatScore(d.Art),
				"com_text":  types.FormatScore(d.Com),
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"deltas": formatted,
			"count":  len(formatted),
		})
	})

	r.POST("/generate", rateLimiter.GenerateRateLimitMiddleware(), func(c *gin.Context) {
		var req types.GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := errors.NewValidationError("invalid request body", err.Error())
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}
		if req.TargetAvgComp <= 0 {
			appErr := errors.NewValidationError("target_avg_comp must be positive")
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		targetElements := req.TargetElementCount
		if targetElements == 0 {
			targetElements = generator.ElementCountForScore(req.TargetMovieScore)
		}
		if targetElements > maxTagSlots {
			targetElements = maxTagSlots
		}

		excluded := make(map[string]struct{}, len(req.ExcludedTagIDs))
		for _, id := range req.ExcludedTagIDs {
			excluded[id] = struct{}{}
		}
		if req.StarterProfile {
			for _, id := range cat.StarterExclusions() {
				excluded[id] = struct{}{}
			}
		}

		var owned map[string]struct{}
		if len(req.OwnedTagIDs) > 0 {
			owned = make(map[string]struct{}, len(req.OwnedTagIDs))
			for _, id := range req.OwnedTagIDs {
				owned[id] = struct{}{}
			}
		}

		appMetrics.IncrementGenerateCalls()
		start := time.Now()

		batch, err := optimizer.Generate(generator.Constraints{
			TargetAvgComp:  req.TargetAvgComp,
			TargetElements: targetElements,
			Fixed:          req.FixedTags,
			ExcludedIDs:    excluded,
			OwnedIDs:       owned,
		})
		if err != nil {
			appErr := errors.NewConstraintError(err.Error())
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		bestScore := 0.0
		if len(batch) > 0 {
			bestScore = batch[0].Stats.MovieScore
		}
		appLogger.GenerationLogger(req.TargetAvgComp, targetElements, len(batch), bestScore, time.Since(start))

		c.JSON(http.StatusOK, gin.H{
			"candidates": batch,
			"count":      len(batch),
		})
	})

	r.POST("/analyze", func(c *gin.Context) {
		var req types.AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := errors.NewValidationError("invalid request body", err.Error())
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		appMetrics.IncrementAnalyzeCalls()
		analysis, err := audience.Analyze(req.Tags, req.Commercial, req.Artistic, cat)
		if err != nil {
			appErr := errors.NewValidationError(err.Error())
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		response := gin.H{"analysis": analysis}
		if freshness := audience.ClassifyFreshness(req.UsageCounts); freshness != nil {
			response["freshness"] = freshness
		}

		c.JSON(http.StatusOK, response)
	})

	r.POST("/distribution", func(c *gin.Context) {
		var req types.DistributionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := errors.NewValidationError("invalid request body", err.Error())
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}
		if req.AvailableScreenings < 0 {
			appErr := errors.NewValidationError("available_screenings cannot be negative")
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		weeks := audience.Distribution(req.CommercialScore, req.AvailableScreenings)
		c.JSON(http.StatusOK, gin.H{
			"weeks": weeks,
		})
	})

	// Swagger documentation routes
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		slog.Info("Starting server", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
