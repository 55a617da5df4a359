package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/glamourlabs/salon-manager/internal/config"
	dbpkg "github.com/glamourlabs/salon-manager/internal/db"
	"github.com/glamourlabs/salon-manager/internal/routes"
	"github.com/glamourlabs/salon-manager/internal/timezone"
)

func main() {

	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()

	if !timezone.IsValid(cfg.Timezone) {
		log.Fatal("invalid timezone", zap.String("tz", cfg.Timezone))
	}
	timezone.Set(cfg.Timezone)

	db := dbpkg.NewDB(cfg, log)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	reminderService := routes.RegisterRoutes(r, db, cfg, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reminderService.Start(ctx)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
