package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Analysis API - the backend that ingests spreadsheets and answers questions
	AnalysisAPI AnalysisAPIConfig

	// Session - cookie and server-side state
	Session SessionConfig

	// Reporting - month window and page defaults
	Reporting ReportingConfig

	// Upload - accepted spreadsheet limits
	Upload UploadConfig

	// Redis - Session state and change events
	Redis RedisConfig

	// PostgreSQL - Upload history ledger
	Postgres PostgresConfig

	// MinIO - Spreadsheet archive
	MinIO MinIOConfig

	// Kafka - Upload events
	Kafka KafkaConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CORSConfig lists the browser origins allowed to call the API with credentials.
type CORSConfig struct {
	AllowedOrigins []string
}

// AnalysisAPIConfig is the configuration for the analysis backend client.
type AnalysisAPIConfig struct {
	BaseURL   string
	Timeout   int // in seconds
	Retries   int
	RetryWait int // in milliseconds
}

// SessionConfig configures the session cookie and the server-side state store.
type SessionConfig struct {
	SecretKey    string
	CookieName   string
	CookieDomain string
	CookieSecure bool
	TTL          int    // in seconds
	Backend      string // redis | memory
}

// ReportingConfig bounds the months shown on every chart (inclusive, YYYY-MM).
type ReportingConfig struct {
	WindowStart            string
	WindowEnd              string
	DefaultTopPartnerMonth int
}

// UploadConfig limits accepted spreadsheets.
type UploadConfig struct {
	MaxSizeMB int64
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Enabled              bool
	Endpoint             string
	AccessKey            string
	SecretKey            string
	UseSSL               bool
	Region               string
	Bucket               string
	AsyncUploadWorkers   int
	AsyncUploadQueueSize int
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
	GroupID string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

const (
	SessionBackendRedis  = "redis"
	SessionBackendMemory = "memory"
)

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("partner-dashboard-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/partner-dashboard/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = viper.GetStringSlice("cors.allowed_origins")

	// Analysis API
	cfg.AnalysisAPI.BaseURL = viper.GetString("analysis_api.base_url")
	cfg.AnalysisAPI.Timeout = viper.GetInt("analysis_api.timeout")
	cfg.AnalysisAPI.Retries = viper.GetInt("analysis_api.retries")
	cfg.AnalysisAPI.RetryWait = viper.GetInt("analysis_api.retry_wait")

	// Session
	cfg.Session.SecretKey = viper.GetString("session.secret_key")
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.CookieDomain = viper.GetString("session.cookie_domain")
	cfg.Session.CookieSecure = viper.GetBool("session.cookie_secure")
	cfg.Session.TTL = viper.GetInt("session.ttl")
	cfg.Session.Backend = viper.GetString("session.backend")

	// Reporting
	cfg.Reporting.WindowStart = viper.GetString("reporting.window_start")
	cfg.Reporting.WindowEnd = viper.GetString("reporting.window_end")
	cfg.Reporting.DefaultTopPartnerMonth = viper.GetInt("reporting.default_top_partner_month")

	// Upload
	cfg.Upload.MaxSizeMB = viper.GetInt64("upload.max_size_mb")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// PostgreSQL - Upload history (optional)
	cfg.Postgres.Enabled = viper.GetBool("postgres.enabled")
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// MinIO - Spreadsheet archive (optional)
	cfg.MinIO.Enabled = viper.GetBool("minio.enabled")
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")
	cfg.MinIO.AsyncUploadWorkers = viper.GetInt("minio.async_upload_workers")
	cfg.MinIO.AsyncUploadQueueSize = viper.GetInt("minio.async_upload_queue_size")

	// Kafka - Upload events (optional)
	cfg.Kafka.Enabled = viper.GetBool("kafka.enabled")
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.GroupID = viper.GetString("kafka.group_id")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// CORS
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})

	// 1. Analysis API
	viper.SetDefault("analysis_api.base_url", "http://127.0.0.1:5000")
	viper.SetDefault("analysis_api.timeout", 60)
	viper.SetDefault("analysis_api.retries", 2)
	viper.SetDefault("analysis_api.retry_wait", 500)

	// 2. Session
	viper.SetDefault("session.cookie_name", "pd_session")
	viper.SetDefault("session.cookie_domain", "")
	viper.SetDefault("session.cookie_secure", false)
	viper.SetDefault("session.ttl", 28800) // 8 hours
	viper.SetDefault("session.backend", SessionBackendRedis)

	// 3. Reporting
	viper.SetDefault("reporting.window_start", "2024-10")
	viper.SetDefault("reporting.window_end", "2025-04")
	viper.SetDefault("reporting.default_top_partner_month", 4)

	// 4. Upload
	viper.SetDefault("upload.max_size_mb", 50)

	// 5. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 6. PostgreSQL
	viper.SetDefault("postgres.enabled", false)
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "partner_dashboard")

	// 7. MinIO
	viper.SetDefault("minio.enabled", false)
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "partner-dashboard-uploads")
	viper.SetDefault("minio.async_upload_workers", 2)
	viper.SetDefault("minio.async_upload_queue_size", 50)

	// 8. Kafka
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "partner-dashboard.uploads")
	viper.SetDefault("kafka.group_id", "partner-dashboard-upload-history")
}

func validate(cfg *Config) error {
	// Validate Session
	if cfg.Session.SecretKey == "" {
		return fmt.Errorf("session.secret_key is required")
	}
	if len(cfg.Session.SecretKey) < 32 {
		return fmt.Errorf("session.secret_key must be at least 32 characters for security")
	}
	if cfg.Session.CookieName == "" {
		return fmt.Errorf("session.cookie_name is required")
	}
	if cfg.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be greater than 0")
	}
	switch cfg.Session.Backend {
	case SessionBackendRedis:
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("redis.port is required")
		}
	case SessionBackendMemory:
	default:
		return fmt.Errorf("session.backend must be %q or %q", SessionBackendRedis, SessionBackendMemory)
	}

	// Validate Analysis API
	if cfg.AnalysisAPI.BaseURL == "" {
		return fmt.Errorf("analysis_api.base_url is required")
	}

	// Validate Reporting window
	if err := validateWindow(cfg.Reporting.WindowStart, cfg.Reporting.WindowEnd); err != nil {
		return err
	}
	if m := cfg.Reporting.DefaultTopPartnerMonth; m < 1 || m > 12 {
		return fmt.Errorf("reporting.default_top_partner_month must be between 1 and 12")
	}

	if cfg.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("upload.max_size_mb must be greater than 0")
	}

	if cfg.Postgres.Enabled {
		if cfg.Postgres.Host == "" {
			return fmt.Errorf("postgres.host is required")
		}
		if cfg.Postgres.Port == 0 {
			return fmt.Errorf("postgres.port is required")
		}
		if cfg.Postgres.DBName == "" {
			return fmt.Errorf("postgres.db_name is required")
		}
		if cfg.Postgres.User == "" {
			return fmt.Errorf("postgres.user is required")
		}
	}

	// Validate MinIO Configuration
	if cfg.MinIO.Enabled {
		if cfg.MinIO.Endpoint == "" {
			return fmt.Errorf("minio.endpoint is required")
		}
		if cfg.MinIO.AccessKey == "" {
			return fmt.Errorf("minio.access_key is required")
		}
		if cfg.MinIO.SecretKey == "" {
			return fmt.Errorf("minio.secret_key is required")
		}
		if cfg.MinIO.Bucket == "" {
			return fmt.Errorf("minio.bucket is required")
		}
	}

	if cfg.Kafka.Enabled {
		if len(cfg.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers must have at least one value")
		}
		if cfg.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required")
		}
	}

	return nil
}
