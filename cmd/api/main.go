package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/realty-crm/internal/adapter"
	"github.com/feral-file/realty-crm/internal/api/middleware"
	"github.com/feral-file/realty-crm/internal/api/rest"
	"github.com/feral-file/realty-crm/internal/api/server"
	"github.com/feral-file/realty-crm/internal/api/shared/executor"
	"github.com/feral-file/realty-crm/internal/bridge"
	"github.com/feral-file/realty-crm/internal/cache"
	"github.com/feral-file/realty-crm/internal/config"
	"github.com/feral-file/realty-crm/internal/logger"
	"github.com/feral-file/realty-crm/internal/providers/jetstream"
	temporal "github.com/feral-file/realty-crm/internal/providers/temporal"
	"github.com/feral-file/realty-crm/internal/ratelimit"
	"github.com/feral-file/realty-crm/internal/realtime"
	"github.com/feral-file/realty-crm/internal/store"
	"github.com/feral-file/realty-crm/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "realty-crm-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Realty CRM API")

	// Connect to database
	db, err := store.Connect(ctx, cfg.Database.DSN(), cfg.Database.ConnectTimeout)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Authentication
	verifier, err := middleware.NewTokenVerifier(cfg.Auth.JWTPublicKey, cfg.Auth.JWTSecret)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize token verifier", zap.Error(err))
	}
	users, err := cache.NewUserCache(dataStore, cfg.Auth.UserCacheTTL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize user cache", zap.Error(err))
	}
	defer users.Close()

	// Rate limiting, shared through Redis when configured
	var redisClient adapter.RedisClient
	if cfg.Redis.Addr != "" {
		redisClient = adapter.NewRedisClient(adapter.RedisOptions{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			ClientName:   "realty-crm-api",
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			PoolSize:     cfg.Redis.PoolSize,
		})
		logger.InfoCtx(ctx, "Using Redis rate limiter", zap.String("addr", cfg.Redis.Addr))
	} else {
		logger.WarnCtx(ctx, "Redis not configured, rate limits are per replica")
	}
	limiter, err := ratelimit.NewLimiter(cfg.RateLimit, redisClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize rate limiter", zap.Error(err))
	}
	defer func() { _ = limiter.Close() }()

	// Connect to Temporal
	temporalClient, err := temporal.Dial(temporal.ClientConfig{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("host_port", cfg.Temporal.HostPort))

	replyQueue := workflows.NewReplyQueue(temporalClient, cfg.Temporal.ReplyTaskQueue)

	// Real-time hub
	mux := http.NewServeMux()
	hubServer, err := realtime.NewHubServer(ctx, adapter.NewSignalR(), mux, verifier, users, realtime.HubConfig{
		Path:              cfg.Realtime.HubPath,
		KeepAliveInterval: cfg.Realtime.KeepAliveInterval,
		Debug:             cfg.Debug,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to start realtime hub", zap.Error(err))
	}
	localBroadcaster := realtime.NewLocalBroadcaster(hubServer, jsonAdapter)

	var broadcaster realtime.Broadcaster = localBroadcaster
	var relay bridge.Bridge
	if cfg.NATS.Enabled() {
		natsConfig := jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}

		publisher, err := jetstream.NewPublisher(ctx, natsConfig, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect realtime publisher", zap.Error(err))
		}
		defer publisher.Close()

		subscriber, err := jetstream.NewSubscriber(ctx, natsConfig, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect realtime subscriber", zap.Error(err))
		}

		broadcaster = realtime.NewNATSBroadcaster(publisher, localBroadcaster, jsonAdapter)
		relay = bridge.NewBridge(bridge.Config{}, subscriber, localBroadcaster)
		logger.InfoCtx(ctx, "Broadcasting realtime events over NATS", zap.String("stream", cfg.NATS.StreamName))
	}

	exec := executor.NewExecutor(dataStore, replyQueue, broadcaster, clock, executor.Config{
		DefaultLimit:        cfg.Pagination.DefaultLimit,
		MaxLimit:            cfg.Pagination.MaxLimit,
		ReplyWebhookURL:     cfg.AI.ReplyWebhookURL,
		ConversationWorkers: cfg.AI.ConversationWorkers,
	})

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}
	srv := server.New(serverConfig, rest.NewHandler(cfg.Debug, exec), rest.RouteConfig{
		Verifier:             verifier,
		Users:                users,
		Limiter:              limiter,
		InboundWebhookSecret: cfg.AI.InboundWebhookSecret,
	}, mux)

	errCh := make(chan error, 2)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()
	if relay != nil {
		go func() {
			if err := relay.Run(ctx); err != nil && ctx.Err() == nil {
				errCh <- err
			}
		}()
	}

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	}
	cancel()

	// The original ctx is canceled, shut down on a fresh one
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")
	if relay != nil {
		relay.Close()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
