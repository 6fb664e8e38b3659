package analytics

import (
	"os"

	"github.com/sirupsen/logrus"

	pkgconfig "github.com/beaconsdk/analytics-go/pkg/config"
)

// Config holds Manager construction settings. Populate it through
// Option functions passed to NewManager.
type Config struct {
	// DeviceAppAttributes is the device/app metadata snapshot stamped
	// onto events. Builds fail validation until one is set, either here
	// or later via Manager.SetDeviceAppAttributes.
	DeviceAppAttributes *DeviceAppAttributes

	// ConnectionProvider reports the active network connection at build
	// time. Nil degrades every event's connection type to "".
	ConnectionProvider ConnectionInfoProvider

	// Logger receives debug entries for built events and validation
	// failures. Nil disables SDK logging.
	Logger logrus.FieldLogger

	// SequenceStart is the initial value of the sequence counter; the
	// first event gets SequenceStart + 1.
	SequenceStart int
}

// Option is a function that modifies a Config.
type Option func(*Config)

// WithDeviceAppAttributes sets the device/app attributes snapshot.
func WithDeviceAppAttributes(attrs *DeviceAppAttributes) Option {
	return func(c *Config) {
		c.DeviceAppAttributes = attrs
	}
}

// WithConnectionProvider sets the network-status provider consulted at
// build time.
func WithConnectionProvider(provider ConnectionInfoProvider) Option {
	return func(c *Config) {
		c.ConnectionProvider = provider
	}
}

// WithLogger sets the logger for SDK debug output.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithSequenceStart sets the initial sequence counter value. Use it to
// resume a counter restored by the host application.
func WithSequenceStart(start int) Option {
	return func(c *Config) {
		c.SequenceStart = start
	}
}

// WithDebug enables debug logging to stderr when no logger was set.
func WithDebug(debug bool) Option {
	return func(c *Config) {
		if debug && c.Logger == nil {
			logger := logrus.New()
			logger.SetLevel(logrus.DebugLevel)
			logger.SetOutput(os.Stderr)
			c.Logger = logger.WithField("component", pkgconfig.DefaultLoggerName)
		}
	}
}

func newConfig(opts ...Option) *Config {
	cfg := &Config{
		SequenceStart: pkgconfig.DefaultSequenceStart,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
