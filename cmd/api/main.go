package main

import (
	"context"
	"log"

	"relay-chat/config"
	domainevents "relay-chat/internal/events"
	"relay-chat/internal/handler"
	"relay-chat/internal/repository"
	"relay-chat/internal/server"
	"relay-chat/internal/services"
	"relay-chat/internal/websocket"
	"relay-chat/pkg/database"
	"relay-chat/pkg/events"
	"relay-chat/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	logMode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		logMode = logger.ProductionMode
	}
	l := logger.New(logMode)
	logger.SetGlobalLogger(l)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	broker := events.NewRedisBroker(cfg.RedisAddr(), cfg.RedisPassword, cfg.RedisDB)
	defer broker.Close()

	userRepo := repository.NewUserRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	userService := services.NewUserService(userRepo, services.PlaintextVerifier{})
	messageService := services.NewMessageService(messageRepo, broker, l)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := websocket.NewHub()
	go hub.Run(ctx)

	bridge := websocket.NewRedisBridge(broker, hub)
	if err := bridge.Run(ctx, []string{domainevents.ChannelMessages}); err != nil {
		log.Fatalf("Failed to start event bridge: %v", err)
	}

	srv := server.New(cfg, l, db)
	srv.SetupRoutes(&server.Handlers{
		User:      handler.NewUserHandler(userService),
		Message:   handler.NewMessageHandler(messageService),
		WebSocket: websocket.NewHandler(hub),
	})

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
