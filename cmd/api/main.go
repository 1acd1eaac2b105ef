package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partner-dashboard-srv/config"
	configKafka "partner-dashboard-srv/config/kafka"
	configMinio "partner-dashboard-srv/config/minio"
	configPostgre "partner-dashboard-srv/config/postgre"
	configRedis "partner-dashboard-srv/config/redis"
	_ "partner-dashboard-srv/docs" // Import swagger docs
	"partner-dashboard-srv/internal/chart"
	"partner-dashboard-srv/internal/httpserver"
	"partner-dashboard-srv/internal/session"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/discord"
	"partner-dashboard-srv/pkg/encrypter"
	pkghttp "partner-dashboard-srv/pkg/http"
	pkgJWT "partner-dashboard-srv/pkg/jwt"
	pkgKafka "partner-dashboard-srv/pkg/kafka"
	"partner-dashboard-srv/pkg/log"
	"partner-dashboard-srv/pkg/minio"
	pkgRedis "partner-dashboard-srv/pkg/redis"

	"github.com/joho/godotenv"
)

// @title       Partner Dashboard API
// @description Session-scoped reporting API over the partner analysis service: uploads, dashboards, country and partner reports, source comparison and the AI assistant.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name pd_session
// @description Signed browser-session cookie. Issued automatically on the first request.
func main() {
	// 1. Load configuration
	// .env is optional; YAML and environment variables are read by config.Load
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Reporting window
	window, err := chart.NewWindow(cfg.Reporting.WindowStart, cfg.Reporting.WindowEnd)
	if err != nil {
		logger.Errorf(ctx, "Invalid reporting window: %v", err)
		return
	}

	// 4. Analysis service client
	analysis := analysisapi.New(analysisapi.Config{
		BaseURL: cfg.AnalysisAPI.BaseURL,
		HTTPClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   time.Duration(cfg.AnalysisAPI.Timeout) * time.Second,
			Retries:   cfg.AnalysisAPI.Retries,
			RetryWait: time.Duration(cfg.AnalysisAPI.RetryWait) * time.Millisecond,
		}),
	})
	logger.Infof(ctx, "Analysis API client targeting %s", cfg.AnalysisAPI.BaseURL)

	// 5. Session cookie signing and transcript encryption
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.Session.SecretKey,
		Issuer:    httpserver.ServiceName,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize JWT manager: %v", err)
		return
	}
	enc, err := encrypter.New(cfg.Session.SecretKey, session.TranscriptKeyInfo)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize encrypter: %v", err)
		return
	}

	// 6. Redis (session backend)
	var redisClient pkgRedis.IRedis
	if cfg.Session.Backend == config.SessionBackendRedis {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
			return
		}
		defer redisClient.Close()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	} else {
		logger.Warnf(ctx, "Session backend is %s; state is lost on restart", cfg.Session.Backend)
	}

	// 7. Upload history (optional)
	var postgresDB *sql.DB
	if cfg.Postgres.Enabled {
		postgresDB, err = configPostgre.Connect(ctx, cfg.Postgres)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
			return
		}
		defer configPostgre.Disconnect(postgresDB)
		logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
	}

	// 8. Spreadsheet archive (optional)
	var minioClient minio.MinIO
	if cfg.MinIO.Enabled {
		minioClient, err = configMinio.Connect(ctx, &cfg.MinIO)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
			return
		}
		defer minioClient.Close()
		logger.Infof(ctx, "MinIO connected, archiving to bucket %s", cfg.MinIO.Bucket)
	}

	// 9. Upload events (optional)
	var kafkaProducer pkgKafka.IProducer
	if cfg.Kafka.Enabled {
		kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
			return
		}
		defer kafkaProducer.Close()
		logger.Infof(ctx, "Kafka producer publishing to %s", cfg.Kafka.Topic)
	}

	// 10. Initialize Discord (optional)
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
			logger.Infof(ctx, "Discord webhook initialized successfully")
		}
	}

	// 11. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		// Analysis Configuration
		Analysis: analysis,
		Window:   window,

		// Session & Security Configuration
		JWTManager:  jwtManager,
		Encrypter:   enc,
		RedisClient: redisClient,

		// Optional side effects of an upload
		PostgresDB:    postgresDB,
		MinIO:         minioClient,
		KafkaProducer: kafkaProducer,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}
