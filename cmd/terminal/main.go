package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-gin-parking/config"
	"go-gin-parking/internal/app"
	"go-gin-parking/internal/terminal"
	"go-gin-parking/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	// 終端機畫面給操作員看，log 預設只留警告以上
	if err := logger.SetLevel(getLogLevel(cfg)); err != nil {
		logger.L.Warn("invalid LOG_LEVEL", zap.Error(err))
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

	console := terminal.NewConsole(a.ParkingService, os.Stdin, os.Stdout)
	finished := make(chan error, 1)
	go func() { finished <- console.Run(ctx) }()

	// 讀取 stdin 會阻塞，收到訊號時不等待輸入直接結束
	select {
	case err := <-finished:
		if err != nil {
			logger.L.Error("terminal input failed", zap.Error(err))
		}
	case <-ctx.Done():
	}

	stop()
	<-background
}

func getLogLevel(cfg *config.Config) string {
	if _, ok := os.LookupEnv("LOG_LEVEL"); ok {
		return cfg.Server.LogLevel
	}
	return "warn"
}
