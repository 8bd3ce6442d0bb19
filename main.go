package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"kickconnect.net/configs"
	"kickconnect.net/configs/configsdatabase"
	"kickconnect.net/configs/configslog"
	"kickconnect.net/routes"
)

func main() {
	configs.LoadEnv()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	app := fiber.New(fiber.Config{
		AppName:      "kickconnect",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  90 * time.Second,
	})

	routes.SetupRoutes(app)

	go func() {
		addr := ":" + configs.AppPort()
		configslog.Log.Info("Server listening", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			configslog.Log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		configslog.Log.Error("Graceful shutdown failed", zap.Error(err))
	}
}
