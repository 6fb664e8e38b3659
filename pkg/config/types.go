package config

// Default configuration values.
const (
	// DefaultSequenceStart is the initial value of the global sequence
	// counter. The first event built from a fresh manager gets sequence
	// ID DefaultSequenceStart + 1.
	DefaultSequenceStart = 0

	// DefaultLoggerName is the component field attached to debug log
	// entries emitted by the SDK.
	DefaultLoggerName = "analytics"
)
