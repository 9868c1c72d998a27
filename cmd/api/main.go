package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"love-match/internal/config"
	"love-match/internal/db"
	apihttp "love-match/internal/http"
	"love-match/internal/llm"
	"love-match/internal/repository"
	"love-match/internal/scoring"
	"love-match/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Las tablas son datos; si están mal no tiene sentido arrancar.
	if err := scoring.ValidateTables(); err != nil {
		logger.Fatal("scoring tables invalid", zap.Error(err))
	}

	engine, err := newEngine(cfg)
	if err != nil {
		logger.Fatal("scoring config", zap.Error(err))
	}

	var pairingRepo repository.PairingRepository
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()

		if cfg.AutoMigrate {
			if err := db.Migrate(ctx, pool, logger); err != nil {
				logger.Fatal("db migrate", zap.Error(err))
			}
		}
		pairingRepo = repository.NewPgPairingRepository(pool)
	} else {
		logger.Warn("DATABASE_URL not set, pairings are kept in memory")
		pairingRepo = repository.NewMemoryPairingRepository()
	}

	var limiter service.SubmissionRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()

		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisSubmissionRateLimiter(redisClient, cfg.SubmitRateWindow(), cfg.SubmitRateMax)
		}
		cancel()
	}
	if limiter == nil {
		limiter = service.NewMemorySubmissionRateLimiter(cfg.SubmitRateWindow(), cfg.SubmitRateMax)
	}

	secret := cfg.InviteSecret
	if secret == "" {
		logger.Warn("invite secret not configured, tokens will not survive a restart")
		secret = uuid.NewString()
	}
	tokens := service.NewInviteTokenService(secret, cfg.InviteTTL())

	var llmClient llm.LLMClient
	if cfg.LLMAPIKey != "" {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	} else {
		logger.Info("llm not configured, reports use static text")
	}

	profileSvc := service.NewProfileService(engine, logger)
	pairingSvc := service.NewPairingService(pairingRepo, profileSvc, tokens, logger)
	reportSvc := service.NewReportService(llmClient, logger)

	profileHandler := apihttp.NewProfileHandler(logger, profileSvc)
	pairingHandler := apihttp.NewPairingHandler(logger, pairingSvc, reportSvc)
	router := apihttp.NewRouter(logger, profileHandler, pairingHandler, tokens, limiter)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newEngine(cfg *config.Config) (*scoring.Engine, error) {
	policy, err := scoring.ParseTieBreakPolicy(cfg.TieBreakPolicy)
	if err != nil {
		return nil, err
	}
	tiers, err := scoring.ParseTierTable(cfg.MatchTiers, cfg.MatchTierFloor)
	if err != nil {
		return nil, err
	}
	return scoring.NewEngine(scoring.WithTieBreak(policy), scoring.WithTiers(tiers)), nil
}
