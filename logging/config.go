package logging

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Levels.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Outputs.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Defaults for Config.
const (
	DefaultLevel      = LevelInfo
	DefaultFormat     = FormatText
	DefaultOutput     = OutputStderr
	DefaultMaxSize    = 100 // MB
	DefaultMaxBackups = 3
	DefaultMaxAge     = 7 // days
	DefaultCompress   = true
)

// DefaultConfig returns a Config filled with the defaults.
func DefaultConfig() Config {
	return Config{
		Level:      DefaultLevel,
		Format:     DefaultFormat,
		Output:     DefaultOutput,
		MaxSize:    DefaultMaxSize,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAge,
		Compress:   DefaultCompress,
	}
}

// Config controls how NewLogger builds a Logger.
type Config struct {
	// Format is "json" or "text". Default "text".
	Format string

	// Level is the minimum level: "debug", "info", "warn" or "error".
	// Unknown values mean "info".
	Level string

	// Output is "stderr" or "file". Default "stderr".
	Output string

	// FilePath is the log file used when Output is "file".
	FilePath string

	// MaxSize is the size in megabytes at which the file is rotated.
	MaxSize int

	// MaxBackups is the number of rotated files kept.
	MaxBackups int

	// MaxAge is the number of days rotated files are kept.
	MaxAge int

	// Compress gzips rotated files.
	Compress bool
}
