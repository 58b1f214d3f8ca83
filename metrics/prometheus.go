package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector records stream events as Prometheus counters:
//
//   - <namespace>_bytes_read_total{op}
//   - <namespace>_bytes_written_total{op}
//   - <namespace>_retries_total{op}
//   - <namespace>_errors_total{op}
type PrometheusCollector struct {
	bytesRead    *prometheus.CounterVec
	bytesWritten *prometheus.CounterVec
	retries      *prometheus.CounterVec
	errors       *prometheus.CounterVec
}

// NewPrometheusCollector creates the counters and registers them on reg.
// A nil reg uses a fresh private registry.
func NewPrometheusCollector(config Config, reg prometheus.Registerer) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	newVec := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      name,
			Help:      help,
		}, []string{"op"})
	}

	c := &PrometheusCollector{
		bytesRead:    newVec("bytes_read_total", "Bytes read from files, by operation."),
		bytesWritten: newVec("bytes_written_total", "Bytes written to files, by operation."),
		retries:      newVec("retries_total", "Interrupted syscalls retried, by operation."),
		errors:       newVec("errors_total", "Hard I/O errors, by operation."),
	}

	for _, col := range []prometheus.Collector{c.bytesRead, c.bytesWritten, c.retries, c.errors} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *PrometheusCollector) RecordRead(op string, n int) {
	c.bytesRead.WithLabelValues(op).Add(float64(n))
}

func (c *PrometheusCollector) RecordWrite(op string, n int) {
	c.bytesWritten.WithLabelValues(op).Add(float64(n))
}

func (c *PrometheusCollector) RecordRetry(op string) {
	c.retries.WithLabelValues(op).Inc()
}

func (c *PrometheusCollector) RecordError(op string) {
	c.errors.WithLabelValues(op).Inc()
}
