package httpserver

import (
	"context"
	"database/sql"
	"errors"

	"partner-dashboard-srv/config"
	"partner-dashboard-srv/internal/chart"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/discord"
	"partner-dashboard-srv/pkg/encrypter"
	"partner-dashboard-srv/pkg/generation"
	pkgJWT "partner-dashboard-srv/pkg/jwt"
	pkgKafka "partner-dashboard-srv/pkg/kafka"
	"partner-dashboard-srv/pkg/log"
	"partner-dashboard-srv/pkg/minio"
	pkgRedis "partner-dashboard-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Analysis Configuration
	analysis analysisapi.IAnalysis
	window   chart.Window
	tracker  generation.ITracker

	// Session & Security Configuration
	jwtManager  pkgJWT.IManager
	encrypter   encrypter.Encrypter
	redisClient pkgRedis.IRedis

	// Optional side effects of an upload
	postgresDB    *sql.DB
	minio         minio.MinIO
	kafkaProducer pkgKafka.IProducer

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// shuttingDown is cancelled when Run begins a graceful shutdown.
	shuttingDown  context.Context
	beginShutdown context.CancelFunc

	// in-memory stores swept while the server runs
	sweepers []namedSweeper
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Analysis Configuration
	Analysis analysisapi.IAnalysis
	Window   chart.Window

	// Session & Security Configuration
	JWTManager  pkgJWT.IManager
	Encrypter   encrypter.Encrypter
	RedisClient pkgRedis.IRedis // required when session.backend is redis

	// Optional side effects of an upload
	PostgresDB    *sql.DB
	MinIO         minio.MinIO
	KafkaProducer pkgKafka.IProducer

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		// Analysis Configuration
		analysis: cfg.Analysis,
		window:   cfg.Window,
		tracker:  generation.New(),

		// Session & Security Configuration
		jwtManager:  cfg.JWTManager,
		encrypter:   cfg.Encrypter,
		redisClient: cfg.RedisClient,

		// Optional side effects of an upload
		postgresDB:    cfg.PostgresDB,
		minio:         cfg.MinIO,
		kafkaProducer: cfg.KafkaProducer,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}
	srv.shuttingDown, srv.beginShutdown = context.WithCancel(context.Background())

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	// Analysis Configuration
	if srv.analysis == nil {
		return errors.New("analysis client is required")
	}
	if srv.window == (chart.Window{}) {
		return errors.New("reporting window is required")
	}

	// Session & Security Configuration
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.config.Session.Backend == config.SessionBackendRedis && srv.redisClient == nil {
		return errors.New("redisClient is required for the redis session backend")
	}

	// Postgres, MinIO, Kafka, Discord and the encrypter are optional

	return nil
}
