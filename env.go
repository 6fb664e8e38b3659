package analytics

import (
	"os"
	"strconv"

	pkgconfig "github.com/beaconsdk/analytics-go/pkg/config"
)

// NewManagerFromEnv creates a Manager using environment variables for
// configuration. It reads ANALYTICS_DEVICE_ATTRIBUTES (path to a YAML
// snapshot file), ANALYTICS_SEQUENCE_START, and ANALYTICS_DEBUG.
// Explicit options override the environment.
//
// Example:
//
//	mgr, err := analytics.NewManagerFromEnv(
//	    analytics.WithConnectionProvider(platformNetwork),
//	)
func NewManagerFromEnv(opts ...Option) (*Manager, error) {
	envOpts := make([]Option, 0, 3)

	if path := os.Getenv(pkgconfig.EnvDeviceAttributesFile); path != "" {
		attrs, err := LoadDeviceAppAttributes(path)
		if err != nil {
			return nil, err
		}
		envOpts = append(envOpts, WithDeviceAppAttributes(attrs))
	}

	if v := os.Getenv(pkgconfig.EnvSequenceStart); v != "" {
		if start, err := strconv.Atoi(v); err == nil {
			envOpts = append(envOpts, WithSequenceStart(start))
		}
	}

	if pkgconfig.GetEnvBool(pkgconfig.EnvDebug) {
		envOpts = append(envOpts, WithDebug(true))
	}

	// Explicit options come last so they can override the environment.
	return NewManager(append(envOpts, opts...)...), nil
}
