package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"love-match/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	profileH *ProfileHandler,
	pairingH *PairingHandler,
	tokens *service.InviteTokenService,
	limiter service.SubmissionRateLimiter,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/questionnaire", profileH.GetQuestionnaire)
	r.POST("/profiles/preview", profileH.PreviewProfile)
	r.POST("/matches/preview", profileH.PreviewMatch)

	// Los envíos se limitan por ruta e IP; las lecturas no.
	limited := RateLimitMiddleware(logger, limiter)
	pairings := r.Group("/pairings")
	pairings.POST("", limited, pairingH.CreatePairing)
	pairings.PUT("/:id/sides/:side", limited, SideTokenMiddleware(tokens), pairingH.AttachSide)
	pairings.GET("/:id", pairingH.GetPairing)
	pairings.GET("/:id/match", pairingH.GetMatch)
	pairings.GET("/:id/report", pairingH.GetReport)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

// RateLimitMiddleware corta con 429 cuando el cliente supera su cuota. Cada
// ruta lleva su propio contador. Sin limitador configurado deja pasar todo.
func RateLimitMiddleware(logger *zap.Logger, limiter service.SubmissionRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter != nil && !limiter.Allow(rateLimitKey(c)) {
			writeServiceError(c, logger, "rate limit", service.ErrRateLimited)
			c.Abort()
			return
		}
		c.Next()
	}
}

func rateLimitKey(c *gin.Context) string {
	return c.Request.Method + " " + c.FullPath() + "|" + c.ClientIP()
}
