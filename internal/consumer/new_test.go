package consumer

import (
	"database/sql"
	"testing"

	"partner-dashboard-srv/config"
	"partner-dashboard-srv/pkg/log"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	kafka := config.KafkaConfig{Brokers: []string{"localhost:9092"}}
	tests := []struct {
		name string
		cfg  Config
		err  string
	}{
		{"no logger", Config{KafkaConfig: kafka, PostgresDB: &sql.DB{}}, "logger"},
		{"no brokers", Config{Logger: log.NewNop(), PostgresDB: &sql.DB{}}, "brokers"},
		{"no database", Config{Logger: log.NewNop(), KafkaConfig: kafka}, "postgres"},
		{"ok", Config{Logger: log.NewNop(), KafkaConfig: kafka, PostgresDB: &sql.DB{}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			if tt.err == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.err)
		})
	}
}
