package main

import (
	"context"
	"expvar"
	"log"
	"runtime"

	"github.com/daehokang/roomcast/internal/infrastructure/configs"
	"github.com/daehokang/roomcast/internal/infrastructure/events"
	"github.com/daehokang/roomcast/internal/infrastructure/logging"
	"github.com/daehokang/roomcast/internal/infrastructure/messaging"
	"github.com/daehokang/roomcast/internal/infrastructure/password"
	"github.com/daehokang/roomcast/internal/infrastructure/registry"
	"github.com/daehokang/roomcast/internal/infrastructure/tracing"
	"github.com/daehokang/roomcast/internal/infrastructure/ws"
	"github.com/daehokang/roomcast/internal/persistence/db"
	"github.com/daehokang/roomcast/internal/persistence/repository"
	"github.com/daehokang/roomcast/internal/presentation/api"
	chatHandler "github.com/daehokang/roomcast/internal/presentation/handler/chat"
	healthHandler "github.com/daehokang/roomcast/internal/presentation/handler/health"
)

const (
	serviceName = "roomcast"
)

func main() {
	tracerCfg := tracing.NewDefaultConfig(serviceName)

	sh, err := tracing.InitTracer(tracerCfg)
	if err != nil {
		log.Fatalf("Failed to initialize the tracer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer sh(ctx)

	configPath := configs.DetermineConfigPath()
	cfg, err := configs.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.NewLogger(&cfg.Logger)

	mongoClient, err := db.NewMongoClient(ctx, &cfg.Mongo)
	if err != nil {
		logger.Fatalf("Failed to connect to mongodb: %v", err)
	}
	defer db.DisconnectMongo(context.Background(), mongoClient)
	database := db.GetDatabase(mongoClient, &cfg.Mongo)

	logger.Info(logging.Mongo, logging.Startup, "connected to mongodb", map[logging.ExtraKey]any{
		"database": cfg.Mongo.Database,
	})

	rdb, err := db.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatalf("Failed to connect to redis: %v", err)
	}
	defer rdb.Close()

	logger.Info(logging.Redis, logging.Startup, "connected to redis", map[logging.ExtraKey]any{
		"addr": cfg.Redis.Addr,
	})

	rabbitmq, err := messaging.NewRabbitMQ(cfg.RabbitMQ.URI)
	if err != nil {
		logger.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer rabbitmq.Close()

	logger.Info(logging.RabbitMQ, logging.Startup, "connected to rabbitmq", nil)

	hasher := password.NewHasher()

	roomRepository := repository.NewRoomRepository(database)
	userRepository := repository.NewUserRepository(database, hasher)
	connRegistry := registry.NewRedisRegistry(rdb)

	if err := roomRepository.EnsureIndexes(ctx); err != nil {
		logger.Fatalf("Failed to ensure room indexes: %v", err)
	}

	chatPublisher := events.NewChatPublisher(rabbitmq)

	chatConsumer := events.NewChatConsumer(rabbitmq, logger)
	go chatConsumer.Listen()

	hub := ws.NewHub()
	gateway := ws.NewGateway(hub, connRegistry, roomRepository, userRepository, chatPublisher, logger, cfg.Registry.BindingTTL)

	chat := chatHandler.NewHandler(gateway, logger, cfg.HTTP.AllowedOrigins)
	health := healthHandler.NewHandler()

	app := api.NewApplication(*cfg, chat, health, logger)

	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.Mount()
	if err := app.Run(mux); err != nil {
		logger.Fatalf("server stopped with error: %v", err)
	}
}
