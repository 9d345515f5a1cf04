package config

import (
	"io"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"goflare.io/cinder/pkg/serialization"
)

// Config carries the construction-time settings for a Cache instance.
// Every field has a working default; callers override fields individually
// through options, the remaining fields keep their defaults.
type Config struct {
	DefaultTTL    time.Duration // applied when Set is called without an explicit TTL
	MaxSize       int           // hard entry-count bound, enforced by LRU eviction
	CheckInterval time.Duration // period of the background expiry sweep

	WarmupConcurrency int // upper bound on concurrent loader calls during Warmup

	Resilience    ResilienceConfig
	Serialization SerializationConfig
	Logger        *zap.Logger
}

// ResilienceConfig configures retries and the optional circuit breaker
// around caller-supplied warmup loaders.
type ResilienceConfig struct {
	EnableLoaderBreaker bool
	LoaderBreaker       gobreaker.Settings

	RetryAttempts  int
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
}

// SerializationConfig selects the encoder behind the approximate
// memory-usage figure in Stats. Stored values themselves are never
// serialized; the encoder only measures.
type SerializationConfig struct {
	Type    string
	Encoder func(io.Writer) serialization.Encoder
}

// NewConfig returns the default configuration.
func NewConfig() (*Config, error) {
	return &Config{
		DefaultTTL:        5 * time.Minute,
		MaxSize:           1000,
		CheckInterval:     60 * time.Second,
		WarmupConcurrency: 8,
		Resilience: ResilienceConfig{
			LoaderBreaker:  gobreaker.Settings{Name: "cinder-loader"},
			RetryAttempts:  3,
			RetryBaseDelay: 100 * time.Millisecond,
			RetryMaxDelay:  1 * time.Second,
		},
		Serialization: SerializationConfig{
			Type:    serialization.JSONType,
			Encoder: serialization.JSONEncoder,
		},
		Logger: zap.NewNop(),
	}, nil
}
