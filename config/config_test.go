package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goflare.io/cinder/config"
	"goflare.io/cinder/pkg/serialization"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := config.NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.DefaultTTL)
	assert.Equal(t, 1000, cfg.MaxSize)
	assert.Equal(t, 60*time.Second, cfg.CheckInterval)
	assert.Equal(t, 8, cfg.WarmupConcurrency)
	assert.Equal(t, serialization.JSONType, cfg.Serialization.Type)
	assert.NotNil(t, cfg.Serialization.Encoder)
	assert.NotNil(t, cfg.Logger)
	assert.False(t, cfg.Resilience.EnableLoaderBreaker)
}
