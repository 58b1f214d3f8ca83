package wiseio

import (
	"fmt"
	"os"
	"sync"

	"github.com/gobeaver/beaver-kit/config"
	"github.com/gobeaver/wiseio/logging"
	"github.com/gobeaver/wiseio/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Global instance
var (
	defaultOpener *Opener
	defaultOnce   sync.Once
	defaultErr    error
)

// Opener opens Streams on one Driver with shared logging, metrics and
// defaults.
type Opener struct {
	driver   Driver
	logger   logging.Logger
	metrics  metrics.Collector
	registry *prometheus.Registry
	chunk    int
	perm     os.FileMode
}

// Builder provides a way to create Openers with custom prefixes
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global Opener using the builder's prefix
func (b *Builder) Init() error {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return err
	}
	return Init(cfg)
}

// New creates a new Opener using the builder's prefix
func (b *Builder) New() (*Opener, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return New(cfg)
}

// Init initializes the global Opener
func Init(configs ...*Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		defaultOpener, defaultErr = New(cfg)
	})

	return defaultErr
}

// New creates an Opener with given config
func New(cfg *Config) (*Opener, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	d, err := CreateDriver(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}
	if cfg.ReadOnly {
		d = NewReadOnlyDriver(d)
	}

	perm, err := cfg.perm()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	o := &Opener{
		driver: d,
		logger: logging.NewLogger(cfg.loggingConfig()).With("driver", cfg.Driver),
		chunk:  cfg.ChunkSize,
		perm:   perm,
	}

	if cfg.MetricsEnabled {
		o.registry = prometheus.NewRegistry()
	}
	o.metrics, err = metrics.NewCollector(cfg.metricsConfig(), o.registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics collector: %w", err)
	}

	return o, nil
}

// NewWithDriver creates an Opener around an existing Driver. Logging and
// metrics default to no-ops; options override them.
func NewWithDriver(d Driver, options ...StreamOption) *Opener {
	opts := processOptions(options...)
	return &Opener{
		driver:  d,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		chunk:   opts.ChunkSize,
		perm:    opts.Perm,
	}
}

// Open opens path in mode. Options override the Opener's defaults for this
// Stream only.
func (o *Opener) Open(path string, mode OpenMode, options ...StreamOption) (*Stream, error) {
	base := []StreamOption{
		WithLogger(o.logger),
		WithMetrics(o.metrics),
		WithChunkSize(o.chunk),
		WithPerm(o.perm),
	}
	return OpenStream(o.driver, path, mode, append(base, options...)...)
}

// Driver returns the Driver files are opened on.
func (o *Opener) Driver() Driver { return o.driver }

// Logger returns the Opener's logger.
func (o *Opener) Logger() logging.Logger { return o.logger }

// Registry returns the Prometheus registry holding the stream counters, or
// nil when metrics are disabled.
func (o *Opener) Registry() *prometheus.Registry { return o.registry }

// Default returns the global instance, initializing if needed with error handling
func Default() (*Opener, error) {
	if defaultOpener == nil {
		if err := Init(); err != nil {
			return nil, err
		}
	}
	return defaultOpener, nil
}

// CreateStream opens path through the global Opener.
func CreateStream(path string, mode OpenMode, options ...StreamOption) (*Stream, error) {
	o, err := Default()
	if err != nil {
		return nil, err
	}
	return o.Open(path, mode, options...)
}

// NewFromEnv creates an Opener from environment variables (convenience constructor)
func NewFromEnv() (*Opener, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// Reset clears the global instance (for testing)
func Reset() {
	defaultOpener = nil
	defaultOnce = sync.Once{}
	defaultErr = nil
}
