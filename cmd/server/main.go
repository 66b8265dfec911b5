package main

import (
	"log"

	_ "boardapi/docs"
	"boardapi/internal/config"
	"boardapi/internal/server"

	"go.uber.org/zap"
)

// @title           Board API
// @version         1.0
// @description     CRUD API for boards.

// @host      localhost:8000
// @BasePath  /

// @schemes http
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load()

	s, err := server.Init(cfg, logger)
	if err != nil {
		logger.Fatal("Server initialization failed", zap.Error(err))
	}

	s.Run()
}
