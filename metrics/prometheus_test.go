package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewPrometheusCollector(Config{Enabled: true, Namespace: "wiseio"}, reg)
	require.NoError(t, err)

	c.RecordRead(OpCRead, 10)
	c.RecordRead(OpCRead, 5)
	c.RecordWrite(OpAWrite, 7)
	c.RecordRetry(OpCWrite)
	c.RecordRetry(OpCWrite)
	c.RecordError(OpCustomRead)

	assert.Equal(t, 15.0, testutil.ToFloat64(c.bytesRead.WithLabelValues(OpCRead)))
	assert.Equal(t, 7.0, testutil.ToFloat64(c.bytesWritten.WithLabelValues(OpAWrite)))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.retries.WithLabelValues(OpCWrite)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.errors.WithLabelValues(OpCustomRead)))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["wiseio_bytes_read_total"])
	assert.True(t, names["wiseio_bytes_written_total"])
	assert.True(t, names["wiseio_retries_total"])
	assert.True(t, names["wiseio_errors_total"])
}

func TestPrometheusCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusCollector(Config{Enabled: true, Namespace: "wiseio"}, reg)
	require.NoError(t, err)

	_, err = NewPrometheusCollector(Config{Enabled: true, Namespace: "wiseio"}, reg)
	assert.Error(t, err)
}

func TestNewCollector(t *testing.T) {
	t.Run("disabled returns nop", func(t *testing.T) {
		c, err := NewCollector(DefaultConfig(), nil)
		require.NoError(t, err)
		_, ok := c.(*NopCollector)
		assert.True(t, ok)
	})

	t.Run("enabled returns prometheus", func(t *testing.T) {
		c, err := NewCollector(Config{Enabled: true, Namespace: "io"}, prometheus.NewRegistry())
		require.NoError(t, err)
		_, ok := c.(*PrometheusCollector)
		assert.True(t, ok)
	})

	t.Run("enabled without namespace fails", func(t *testing.T) {
		_, err := NewCollector(Config{Enabled: true}, nil)
		assert.ErrorIs(t, err, ErrNamespaceRequired)
	})
}
