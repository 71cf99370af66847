package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"intro_web/internal/api"
	"intro_web/internal/logging"
	"intro_web/internal/repository"
	"intro_web/internal/service"
	"intro_web/pkg/config"
)

func main() {
	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Log.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 固定的商品列表在啟動時建立，之後不再修改
	repos := repository.NewRepositories(repository.DefaultItems())
	services := service.NewServices(repos)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := api.NewEngine(logger, reg)
	api.SetupRoutes(r, services)

	logger.Info("starting intro server", zap.String("addr", cfg.Intro.Address))
	if err := r.Run(cfg.Intro.Address); err != nil {
		logger.Fatal("failed to run server", zap.Error(err))
	}
}
