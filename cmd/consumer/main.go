package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"partner-dashboard-srv/config"
	"partner-dashboard-srv/config/postgre"
	"partner-dashboard-srv/internal/consumer"
	"partner-dashboard-srv/pkg/discord"
	"partner-dashboard-srv/pkg/log"

	"github.com/joho/godotenv"
)

// The upload history consumer records every upload-completed event into PostgreSQL.
func main() {
	// Load configuration
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Partner Dashboard upload history consumer...")

	if !cfg.Kafka.Enabled || !cfg.Postgres.Enabled {
		logger.Errorf(ctx, "The consumer needs kafka.enabled and postgres.enabled")
		return
	}

	// PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer postgre.Disconnect(postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		discordClient, err = discord.New(logger, &discord.DiscordWebhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
			discordClient = nil
		} else {
			logger.Info(ctx, "Discord client initialized")
		}
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:         logger,
		KafkaConfig:    cfg.Kafka,
		PostgresDB:     postgresDB,
		PostgresSchema: cfg.Postgres.Schema,
		Discord:        discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
