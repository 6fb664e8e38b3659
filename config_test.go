package analytics

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := newConfig()

	assert.Nil(t, cfg.DeviceAppAttributes)
	assert.Nil(t, cfg.ConnectionProvider)
	assert.Nil(t, cfg.Logger)
	assert.Equal(t, 0, cfg.SequenceStart)
}

func TestConfigOptions(t *testing.T) {
	attrs := testAttrs()
	provider := NoConnection{}
	logger := logrus.New()

	cfg := newConfig(
		WithDeviceAppAttributes(attrs),
		WithConnectionProvider(provider),
		WithLogger(logger),
		WithSequenceStart(10),
	)

	assert.Same(t, attrs, cfg.DeviceAppAttributes)
	assert.Equal(t, provider, cfg.ConnectionProvider)
	assert.Equal(t, logrus.FieldLogger(logger), cfg.Logger)
	assert.Equal(t, 10, cfg.SequenceStart)
}

func TestWithDebug(t *testing.T) {
	t.Run("creates a debug logger when none is set", func(t *testing.T) {
		cfg := newConfig(WithDebug(true))
		assert.NotNil(t, cfg.Logger)
	})

	t.Run("does not replace an explicit logger", func(t *testing.T) {
		logger := logrus.New()
		cfg := newConfig(WithLogger(logger), WithDebug(true))
		assert.Equal(t, logrus.FieldLogger(logger), cfg.Logger)
	})

	t.Run("disabled is a no-op", func(t *testing.T) {
		cfg := newConfig(WithDebug(false))
		assert.Nil(t, cfg.Logger)
	})
}
