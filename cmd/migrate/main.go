package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/realty-crm/db"
	"github.com/feral-file/realty-crm/internal/config"
	"github.com/feral-file/realty-crm/internal/logger"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	command    = flag.String("command", "up", "Migration command: up, down or status")
	steps      = flag.Int("steps", 1, "Number of migrations to roll back with -command=down")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadMigrateConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "migrate",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	sqlDB, err := db.Open(cfg.Database.DSN())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to open database", zap.Error(err))
	}
	defer func() { _ = sqlDB.Close() }()

	switch *command {
	case "up":
		if err := db.Up(ctx, sqlDB); err != nil {
			logger.FatalCtx(ctx, "Failed to apply migrations", zap.Error(err))
		}
	case "down":
		if err := db.Down(ctx, sqlDB, *steps); err != nil {
			logger.FatalCtx(ctx, "Failed to roll back migrations", zap.Error(err), zap.Int("steps", *steps))
		}
	case "status":
		statuses, err := db.Status(ctx, sqlDB)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to read migration status", zap.Error(err))
		}
		pending := 0
		for _, status := range statuses {
			if !status.Applied {
				pending++
			}
			logger.InfoCtx(ctx, "Migration",
				zap.Int64("version", status.Version),
				zap.String("path", status.Path),
				zap.Bool("applied", status.Applied),
				zap.Time("applied_at", status.AppliedAt),
			)
		}
		logger.InfoCtx(ctx, "Migration status", zap.Int("total", len(statuses)), zap.Int("pending", pending))
		return
	default:
		logger.FatalCtx(ctx, "Unknown migration command", zap.String("command", *command))
	}

	version, err := db.Version(ctx, sqlDB)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to read migration version", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Database schema is current", zap.String("command", *command), zap.Int64("version", version))
}
