package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/theDrake/pebblequest-sub000/internal/agent"
	"github.com/theDrake/pebblequest-sub000/internal/engine"
	"github.com/theDrake/pebblequest-sub000/internal/server"
	"github.com/theDrake/pebblequest-sub000/internal/version"
	"github.com/theDrake/pebblequest-sub000/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var saveDir string
	var demoBots int
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.StringVar(&saveDir, "saves", "saves", "Directory for hero save files")
	flag.IntVar(&demoBots, "bots", 0, "Number of autopilot bots to spawn (smoke/load testing)")
	flag.Parse()

	logger.Log.Info("Starting PebbleQuest...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	cfg.SaveDir = saveDir
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit master seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random master seed: %d", cfg.Seed)
	}

	port := os.Getenv("PQ_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра
	gameService := engine.NewService(cfg)

	for i := 0; i < demoBots; i++ {
		bot := agent.NewBot(fmt.Sprintf("bot_%d", i), gameService)
		go bot.Run()
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	// Останавливаем сессии и сохраняем героев
	gameService.Shutdown()

	logger.Log.Info("Done.")
}
