package wiseio

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/gobeaver/beaver-kit/config"
	"github.com/gobeaver/wiseio/logging"
	"github.com/gobeaver/wiseio/metrics"
)

type Config struct {
	// Driver to open files with (local, memory)
	Driver string `env:"WISEIO_DRIVER,default:local"`

	// Read size for empty buffers
	ChunkSize int `env:"WISEIO_CHUNK_SIZE,default:4096"`

	// Octal permission for files created by an open
	FilePerm string `env:"WISEIO_FILE_PERM,default:0666"`

	// Refuse every open except ModeRead
	ReadOnly bool `env:"WISEIO_READ_ONLY,default:false"`

	// Logging
	LogLevel      string `env:"WISEIO_LOG_LEVEL,default:info"`
	LogFormat     string `env:"WISEIO_LOG_FORMAT,default:text"`
	LogOutput     string `env:"WISEIO_LOG_OUTPUT,default:stderr"`
	LogFile       string `env:"WISEIO_LOG_FILE"` // used when LogOutput is file
	LogMaxSize    int    `env:"WISEIO_LOG_MAX_SIZE,default:100"`
	LogMaxBackups int    `env:"WISEIO_LOG_MAX_BACKUPS,default:3"`
	LogMaxAge     int    `env:"WISEIO_LOG_MAX_AGE,default:7"`
	LogCompress   bool   `env:"WISEIO_LOG_COMPRESS,default:true"`

	// Metrics
	MetricsEnabled   bool   `env:"WISEIO_METRICS_ENABLED,default:false"`
	MetricsNamespace string `env:"WISEIO_METRICS_NAMESPACE,default:wiseio"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validateConfig checks configuration validity
func validateConfig(cfg *Config) error {
	if cfg.Driver == "" {
		return errors.New("driver is required")
	}
	if !driverRegistered(cfg.Driver) {
		return fmt.Errorf("unknown driver: %s", cfg.Driver)
	}
	if cfg.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive (got %d)", cfg.ChunkSize)
	}
	if _, err := cfg.perm(); err != nil {
		return err
	}
	if cfg.LogOutput == logging.OutputFile && cfg.LogFile == "" {
		return errors.New("log file path is required for file output")
	}
	if cfg.MetricsEnabled {
		mc := cfg.metricsConfig()
		if err := mc.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// perm parses FilePerm as an octal permission. Empty means DefaultPerm.
func (cfg *Config) perm() (os.FileMode, error) {
	if cfg.FilePerm == "" {
		return DefaultPerm, nil
	}
	v, err := strconv.ParseUint(cfg.FilePerm, 8, 32)
	if err != nil || v > 0o777 {
		return 0, fmt.Errorf("invalid file permission %q", cfg.FilePerm)
	}
	return os.FileMode(v), nil
}

func (cfg *Config) loggingConfig() logging.Config {
	lc := logging.DefaultConfig()
	if cfg.LogLevel != "" {
		lc.Level = cfg.LogLevel
	}
	if cfg.LogFormat != "" {
		lc.Format = cfg.LogFormat
	}
	if cfg.LogOutput != "" {
		lc.Output = cfg.LogOutput
	}
	lc.FilePath = cfg.LogFile
	if cfg.LogMaxSize > 0 {
		lc.MaxSize = cfg.LogMaxSize
	}
	if cfg.LogMaxBackups > 0 {
		lc.MaxBackups = cfg.LogMaxBackups
	}
	if cfg.LogMaxAge > 0 {
		lc.MaxAge = cfg.LogMaxAge
	}
	lc.Compress = cfg.LogCompress
	return lc
}

func (cfg *Config) metricsConfig() metrics.Config {
	return metrics.Config{
		Enabled:   cfg.MetricsEnabled,
		Namespace: cfg.MetricsNamespace,
	}
}
