package analytics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgconfig "github.com/beaconsdk/analytics-go/pkg/config"
)

func TestNewManagerFromEnv(t *testing.T) {
	t.Run("loads device attributes from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "device.yaml")
		require.NoError(t, os.WriteFile(path, []byte(deviceAttrsYAML), 0o600))
		t.Setenv(pkgconfig.EnvDeviceAttributesFile, path)

		mgr, err := NewManagerFromEnv()
		require.NoError(t, err)

		event, err := mgr.NewEvent().SchemaType(SchemaTypeInteraction).Name("click").Build()
		require.NoError(t, err)
		assert.Equal(t, "AcmeApp", event.DeviceAppAttributes().AppName)
	})

	t.Run("bad attributes file fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "device.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))
		t.Setenv(pkgconfig.EnvDeviceAttributesFile, path)

		_, err := NewManagerFromEnv()
		require.Error(t, err)
	})

	t.Run("sequence start from environment", func(t *testing.T) {
		t.Setenv(pkgconfig.EnvSequenceStart, "500")

		mgr, err := NewManagerFromEnv(WithDeviceAppAttributes(testAttrs()))
		require.NoError(t, err)

		event, err := mgr.NewEvent().SchemaType(SchemaTypeInteraction).Name("click").Build()
		require.NoError(t, err)
		assert.Equal(t, 501, event.SequenceID())
	})

	t.Run("explicit options override environment", func(t *testing.T) {
		t.Setenv(pkgconfig.EnvSequenceStart, "500")

		mgr, err := NewManagerFromEnv(
			WithDeviceAppAttributes(testAttrs()),
			WithSequenceStart(10),
		)
		require.NoError(t, err)
		assert.Equal(t, 10, mgr.GlobalSequenceID())
	})

	t.Run("empty environment yields a bare manager", func(t *testing.T) {
		t.Setenv(pkgconfig.EnvDeviceAttributesFile, "")
		t.Setenv(pkgconfig.EnvSequenceStart, "")
		t.Setenv(pkgconfig.EnvDebug, "")

		mgr, err := NewManagerFromEnv()
		require.NoError(t, err)
		assert.Nil(t, mgr.DeviceAppAttributes())
		assert.Equal(t, 0, mgr.GlobalSequenceID())
	})
}
