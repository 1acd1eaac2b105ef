package consumer

import (
	"database/sql"
	"errors"

	"partner-dashboard-srv/config"
	"partner-dashboard-srv/pkg/discord"
	"partner-dashboard-srv/pkg/log"
)

// ConsumerServer records upload-completed events into the upload history.
type ConsumerServer struct {
	l        log.Logger
	kafka    config.KafkaConfig
	db       *sql.DB
	dbSchema string
	discord  discord.IDiscord
}

// Config wires the consumer server. Discord is optional.
type Config struct {
	Logger         log.Logger
	KafkaConfig    config.KafkaConfig
	PostgresDB     *sql.DB
	PostgresSchema string
	Discord        discord.IDiscord
}

func New(cfg Config) (*ConsumerServer, error) {
	switch {
	case cfg.Logger == nil:
		return nil, errors.New("logger is required")
	case len(cfg.KafkaConfig.Brokers) == 0:
		return nil, errors.New("kafka brokers are required")
	case cfg.PostgresDB == nil:
		return nil, errors.New("postgres db is required")
	}
	return &ConsumerServer{
		l:        cfg.Logger,
		kafka:    cfg.KafkaConfig,
		db:       cfg.PostgresDB,
		dbSchema: cfg.PostgresSchema,
		discord:  cfg.Discord,
	}, nil
}
