package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"intro_web/internal/api/handlers"
	"intro_web/internal/middleware"
)

// NewEngine 建立掛好日誌、復原、請求 ID、指標與 CORS 中間件的 gin engine。
// reg 同時用於收集指標與提供 /metrics。
func NewEngine(logger *zap.Logger, reg *prometheus.Registry) *gin.Engine {
	handlers.RegisterValidation()

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		Context:    accessLogFields,
	}))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics(middleware.NewHTTPMetrics(reg)))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	// 處理 404 與 405 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"detail": "Method Not Allowed"})
	})

	// 基本的健康檢查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	return r
}

// accessLogFields 在存取日誌中附上請求 ID
func accessLogFields(c *gin.Context) []zapcore.Field {
	id := middleware.GetRequestID(c)
	if id == "" {
		return nil
	}
	return []zapcore.Field{zap.String("request_id", id)}
}
