package cinder

import (
	"fmt"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"goflare.io/cinder/config"
	"goflare.io/cinder/models"
	"goflare.io/cinder/pkg/serialization"
	"goflare.io/cinder/retrier"
)

// Option 定義初始化 Cache 的選項接口
type Option func(*config.Config) error

// WithLogger 設置自定義的日誌記錄器
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config.Config) error {
		cfg.Logger = logger
		return nil
	}
}

// WithMaxSize 設置快取的最大項目數量
func WithMaxSize(maxSize int) Option {
	return func(cfg *config.Config) error {
		cfg.MaxSize = maxSize
		return nil
	}
}

// WithDefaultTTL 設置默認的過期時間
func WithDefaultTTL(ttl time.Duration) Option {
	return func(cfg *config.Config) error {
		cfg.DefaultTTL = ttl
		return nil
	}
}

// WithCheckInterval 設置清理過期項目的時間間隔
func WithCheckInterval(interval time.Duration) Option {
	return func(cfg *config.Config) error {
		cfg.CheckInterval = interval
		return nil
	}
}

// WithWarmupConcurrency 設置預熱時的最大併發數
func WithWarmupConcurrency(n int) Option {
	return func(cfg *config.Config) error {
		cfg.WarmupConcurrency = n
		return nil
	}
}

// WithLoaderRetry 設置預熱加載器的重試參數
func WithLoaderRetry(attempts int, baseDelay, maxDelay time.Duration) Option {
	return func(cfg *config.Config) error {
		cfg.Resilience.RetryAttempts = attempts
		cfg.Resilience.RetryBaseDelay = baseDelay
		cfg.Resilience.RetryMaxDelay = maxDelay
		return nil
	}
}

// WithLoaderBreaker 為預熱加載器啟用熔斷器
func WithLoaderBreaker(settings gobreaker.Settings) Option {
	return func(cfg *config.Config) error {
		cfg.Resilience.EnableLoaderBreaker = true
		cfg.Resilience.LoaderBreaker = settings
		return nil
	}
}

// WithSerializer 設置記憶體估算使用的序列化方式
func WithSerializer(serializer string) Option {
	return func(cfg *config.Config) error {
		switch serializer {
		case serialization.JSONType:
			cfg.Serialization.Type = serialization.JSONType
			cfg.Serialization.Encoder = serialization.JSONEncoder
		case serialization.GobType:
			cfg.Serialization.Type = serialization.GobType
			cfg.Serialization.Encoder = serialization.GobEncoder
		default:
			return fmt.Errorf("unsupported serialization type: %s", serializer)
		}
		return nil
	}
}

// Cache 定義快取服務的主要結構體
//
// One instance owns its entry table, its statistics block, and its
// maintenance scheduler; instances share nothing with each other.
type Cache struct {
	config  *config.Config
	logger  *zap.Logger
	tracer  trace.Tracer
	metrics *models.Metrics

	retrier  *retrier.Retrier
	loaderCB *gobreaker.CircuitBreaker

	mu      sync.RWMutex
	entries map[string]*models.Entry
	seq     uint64 // insertion sequence, only advances under mu

	janitorMu   sync.Mutex
	janitorStop chan struct{}
	running     bool
}

// New 初始化快取服務，接受多個配置選項
//
// The maintenance scheduler starts automatically; call Stop (or Close) to
// halt it.
func New(opts ...Option) (*Cache, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create config: %w", err)
	}

	for _, opt := range opts {
		if err = opt(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if err = validate(cfg); err != nil {
		return nil, err
	}

	c := &Cache{
		config:  cfg,
		logger:  cfg.Logger,
		tracer:  otel.Tracer("cache"),
		metrics: models.NewMetrics(),
		retrier: retrier.NewRetrier(
			cfg.Resilience.RetryAttempts,
			cfg.Resilience.RetryBaseDelay,
			cfg.Resilience.RetryMaxDelay,
			2,
			0.1,
		),
		entries: make(map[string]*models.Entry),
	}

	if cfg.Resilience.EnableLoaderBreaker {
		c.loaderCB = gobreaker.NewCircuitBreaker(cfg.Resilience.LoaderBreaker)
	}

	c.Start()
	return c, nil
}

func validate(cfg *config.Config) error {
	if cfg.MaxSize < 1 {
		return ErrInvalidMaxSize
	}
	if cfg.DefaultTTL <= 0 {
		return ErrInvalidTTL
	}
	if cfg.CheckInterval <= 0 {
		return ErrInvalidCheckInterval
	}
	if cfg.WarmupConcurrency < 1 {
		return ErrInvalidConcurrency
	}
	return nil
}

// Start (重新)啟動背景清理排程
//
// Calling Start while the scheduler is running is a no-op; there is never
// more than one sweep loop per instance.
func (c *Cache) Start() {
	c.janitorMu.Lock()
	defer c.janitorMu.Unlock()

	if c.running {
		return
	}

	c.janitorStop = make(chan struct{})
	c.running = true
	go c.sweepLoop(c.janitorStop)
}

// Stop 停止背景清理排程
//
// Stop is idempotent. It halts future sweeps but does not interrupt a
// sweep already in progress.
func (c *Cache) Stop() {
	c.janitorMu.Lock()
	defer c.janitorMu.Unlock()

	if !c.running {
		return
	}

	close(c.janitorStop)
	c.running = false
}

// Close 關閉快取服務，釋放資源
func (c *Cache) Close() error {
	c.Stop()
	return nil
}
