package wiseio

import (
	"os"

	"github.com/gobeaver/wiseio/logging"
	"github.com/gobeaver/wiseio/metrics"
)

// DefaultChunkSize is the read size used when a Stream reads into an
// empty Buffer.
const DefaultChunkSize = 4096

// StreamOption configures a Stream at open time
type StreamOption func(*StreamOptions)

// StreamOptions contains the settings a Stream is opened with
type StreamOptions struct {
	// Logger receives Debug and Error records. Defaults to a no-op logger.
	Logger logging.Logger

	// Metrics receives byte, retry and error counts. Defaults to a no-op collector.
	Metrics metrics.Collector

	// ChunkSize is how far an empty Buffer is grown before a read.
	ChunkSize int

	// Perm is the permission used when the open creates a file.
	Perm os.FileMode
}

func defaultStreamOptions() StreamOptions {
	return StreamOptions{
		Logger:    logging.NewNopLogger(),
		Metrics:   metrics.NewNopCollector(),
		ChunkSize: DefaultChunkSize,
		Perm:      DefaultPerm,
	}
}

func processOptions(options ...StreamOption) StreamOptions {
	opts := defaultStreamOptions()
	for _, option := range options {
		option(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewNopCollector()
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	return opts
}

// WithLogger sets the logger
func WithLogger(logger logging.Logger) StreamOption {
	return func(o *StreamOptions) {
		o.Logger = logger
	}
}

// WithMetrics sets the metrics collector
func WithMetrics(collector metrics.Collector) StreamOption {
	return func(o *StreamOptions) {
		o.Metrics = collector
	}
}

// WithChunkSize sets the read size used for empty buffers
func WithChunkSize(size int) StreamOption {
	return func(o *StreamOptions) {
		o.ChunkSize = size
	}
}

// WithPerm sets the permission for files the open creates
func WithPerm(perm os.FileMode) StreamOption {
	return func(o *StreamOptions) {
		o.Perm = perm
	}
}
