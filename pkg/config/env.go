package config

import "os"

// Environment variable names for configuration.
const (
	// EnvDeviceAttributesFile points at a YAML file holding the
	// device/app attributes snapshot.
	EnvDeviceAttributesFile = "ANALYTICS_DEVICE_ATTRIBUTES"
	// EnvDebug enables debug logging.
	EnvDebug = "ANALYTICS_DEBUG"
	// EnvSequenceStart sets the initial value of the sequence counter.
	EnvSequenceStart = "ANALYTICS_SEQUENCE_START"
)

// GetEnvString returns the value of an environment variable or a default.
func GetEnvString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// GetEnvBool returns true if the env var is "true" or "1".
func GetEnvBool(key string) bool {
	v := os.Getenv(key)
	return v == "true" || v == "1"
}
