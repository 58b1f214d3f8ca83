package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewCollector returns a NopCollector when config.Enabled is false and a
// PrometheusCollector registered on reg otherwise.
func NewCollector(config Config, reg prometheus.Registerer) (Collector, error) {
	if !config.Enabled {
		return NewNopCollector(), nil
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return NewPrometheusCollector(config, reg)
}
