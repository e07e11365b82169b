package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 32, cfg.NotificationQueueSize)
	assert.Empty(t, cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "transaction_recorded", cfg.KafkaTopic)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.WSWriteTimeout)
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{
		"PORT":                    "3000",
		"IS_PRODUCTION":           true,
		"LOG_LEVEL":               "debug",
		"NOTIFICATION_QUEUE_SIZE": 8,
		"RATE_LIMIT":              "100-M",
		"CORS_ALLOWED_ORIGINS":    "http://a.example, http://b.example",
		"KAFKA_BROKERS":           "localhost:9092,kafka:9092",
		"SHUTDOWN_TIMEOUT":        "3s",
	}))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 8, cfg.NotificationQueueSize)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, []string{"localhost:9092", "kafka:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestFromViper_InvalidDurationFallsBack(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{"WS_WRITE_TIMEOUT": "soon"}))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.WSWriteTimeout)
}

func TestFromViper_ValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
	}{
		{"non numeric port", map[string]any{"PORT": "http"}},
		{"zero queue", map[string]any{"NOTIFICATION_QUEUE_SIZE": 0}},
		{"no cors origins", map[string]any{"CORS_ALLOWED_ORIGINS": ""}},
		{"bad broker", map[string]any{"KAFKA_BROKERS": "not a broker"}},
		{"broker without topic", map[string]any{"KAFKA_BROKERS": "localhost:9092", "KAFKA_TOPIC": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fromViper(newTestViper(tt.overrides))
			assert.Error(t, err)
		})
	}
}
