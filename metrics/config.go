package metrics

import "errors"

// ErrNamespaceRequired is returned when metrics are enabled without a namespace.
var ErrNamespaceRequired = errors.New("metrics namespace is required when metrics are enabled")

// Config controls NewCollector.
type Config struct {
	// Enabled switches Prometheus collection on. Default false.
	Enabled bool

	// Namespace prefixes every metric name. Default "wiseio".
	Namespace string
}

// DefaultConfig returns metrics disabled with the default namespace.
func DefaultConfig() Config {
	return Config{Namespace: "wiseio"}
}

// Validate checks the config. A disabled config is always valid.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Namespace == "" {
		return ErrNamespaceRequired
	}
	return nil
}
