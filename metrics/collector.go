// Package metrics counts stream I/O: bytes moved, EINTR retries and hard
// errors, labelled by operation.
//
// NewCollector picks the implementation from Config: a NopCollector when
// metrics are disabled, a PrometheusCollector otherwise.
package metrics

// Operation labels.
const (
	OpCRead       = "cread"
	OpCustomRead  = "custom_read"
	OpReadAll     = "read_all"
	OpAWrite      = "awrite"
	OpCWrite      = "cwrite"
	OpCustomWrite = "custom_write"
	OpChecksum    = "checksum"
)

// Collector receives I/O events from a Stream.
type Collector interface {
	// RecordRead adds n bytes read by op.
	RecordRead(op string, n int)

	// RecordWrite adds n bytes written by op.
	RecordWrite(op string, n int)

	// RecordRetry counts one interrupted syscall that op retried.
	RecordRetry(op string)

	// RecordError counts one hard I/O error that aborted op.
	RecordError(op string)
}
