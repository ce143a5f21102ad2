package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-gin-parking/config"
	"go-gin-parking/internal/app"
	"go-gin-parking/internal/handler"
	"go-gin-parking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	if err := logger.SetLevel(cfg.Server.LogLevel); err != nil {
		logger.L.Warn("invalid LOG_LEVEL, keep info", zap.String("level", cfg.Server.LogLevel), zap.Error(err))
	}
	defer logger.L.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx, cfg)
	if err != nil {
		logger.L.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer a.Close()

	background, err := a.StartBackground(ctx)
	if err != nil {
		logger.L.Fatal("Failed to start background workers", zap.Error(err))
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", gin.WrapH(a.Metrics.Handler()))
	handler.NewParkingHandler(a.ParkingService).RegisterRoutes(router)
	handler.NewParkingEventHandler(a.EventService).RegisterRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.L.Info("parking server listening",
			zap.String("addr", srv.Addr),
			zap.String("queue_driver", cfg.Server.QueueDriver),
			zap.String("spot_pool", cfg.Server.SpotPool))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L.Error("server stopped unexpectedly", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.L.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L.Error("graceful shutdown failed", zap.Error(err))
	}

	select {
	case <-background:
	case <-shutdownCtx.Done():
		logger.L.Warn("background workers did not stop in time")
	}
}
