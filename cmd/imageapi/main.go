package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"intro_web/internal/api"
	"intro_web/internal/logging"
	"intro_web/internal/service"
	"intro_web/internal/storage"
	"intro_web/pkg/config"
)

func main() {
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

	services := service.NewImageServices(storage.NewImageDir(cfg.Images.Dir), logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := api.NewEngine(logger, reg)
	api.SetupImageRoutes(r, services)

	logger.Info("starting image server",
		zap.String("addr", cfg.Images.Address),
		zap.String("images_dir", cfg.Images.Dir),
	)
	if err := r.Run(cfg.Images.Address); err != nil {
		logger.Fatal("failed to run server", zap.Error(err))
	}
}
