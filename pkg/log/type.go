package log

import "go.uber.org/zap"

// ZapConfig configures the zap logger.
type ZapConfig struct {
	Level        string
	Mode         string // "debug" | "production"
	Encoding     string // "console" | "json"
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}
