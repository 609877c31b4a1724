package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	profileH *ProfileHandler,
	planH *PlanHandler,
	adminH *AdminHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	users := r.Group("/users")
	users.POST("", profileH.CreateUser)
	users.PUT("/:id/attributes", profileH.UpdateAttributes)
	users.GET("/:id/assignment", profileH.GetAssignment)

	r.POST("/plan/daily", planH.DailyPlan)
	r.GET("/fasting/status", planH.FastingStatus)
	r.POST("/progression/preview", planH.ProgressionPreview)
	r.POST("/progress", planH.RecordProgress)

	admin := r.Group("/admin")
	admin.POST("/overrides", adminH.CreateOverride)
	admin.GET("/overrides", adminH.ListOverrides)
	admin.DELETE("/overrides/:id", adminH.DeactivateOverride)
	admin.POST("/messages", adminH.CreateMessage)
	admin.GET("/messages", adminH.ListMessages)
	admin.DELETE("/messages/:id", adminH.DeactivateMessage)

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
