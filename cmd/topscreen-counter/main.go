package main

import (
	"fmt"
	"log"
	"os"

	"topscreen-counter/internal/app"
	"topscreen-counter/internal/config"
	"topscreen-counter/internal/instance"
	"topscreen-counter/internal/logger"

	"github.com/pkg/errors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger := logger.New(cfg.LogLevel, cfg.JSONLogs)

	guard, err := instance.Acquire(cfg.LockPath)
	if errors.Is(err, instance.ErrAlreadyRunning) {
		fmt.Println(instance.Notice)
		return
	}
	if err != nil {
		appLogger.Error("Main", err, map[string]interface{}{"lock": cfg.LockPath})
		os.Exit(1)
	}

	application, err := app.NewApplication(cfg, appLogger, guard)
	if err != nil {
		releaseGuard(guard, appLogger)
		appLogger.Error("Main", err, map[string]interface{}{"settings": cfg.SettingsPath})
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		appLogger.Error("Main", err, nil)
		os.Exit(1)
	}
}

type releaser interface {
	Release() error
}

// releaseGuard drops the instance lock on the startup failure path.
func releaseGuard(guard releaser, log logger.Logger) {
	if err := guard.Release(); err != nil {
		log.Warning("Main", "release instance lock failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
