package analytics

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// DeviceAppAttributesProvider supplies the device/app metadata snapshot
// stamped onto events. A nil snapshot makes event construction fail.
type DeviceAppAttributesProvider interface {
	DeviceAppAttributes() *DeviceAppAttributes
}

// SequenceSource is the shared monotonic counter events draw their
// sequence IDs from. The builder performs the increment itself: it reads
// the counter, adds one, and writes the result back. Implementations
// must serialize that read-modify-write pair under concurrent builds to
// keep sequence IDs strictly increasing with no duplicates; sources that
// cannot do so through this pair should also implement SequenceAllocator.
type SequenceSource interface {
	GlobalSequenceID() int
	SetGlobalSequenceID(id int)
}

// SequenceAllocator is implemented by sequence sources that can perform
// the read-increment-write as one atomic step. When a source implements
// it, the builder calls NextSequenceID instead of the
// GlobalSequenceID/SetGlobalSequenceID pair, making concurrent builds
// safe without external locking.
type SequenceAllocator interface {
	NextSequenceID() int
}

// EventSource is the full contract a builder needs from its
// analytics-manager collaborator.
type EventSource interface {
	DeviceAppAttributesProvider
	SequenceSource
}

// Manager owns the shared state event construction depends on: the
// device/app attributes snapshot and the global sequence counter. It is
// safe for concurrent use; concurrent builds through one Manager receive
// unique, strictly increasing sequence IDs.
type Manager struct {
	attrs  atomic.Pointer[DeviceAppAttributes]
	seq    atomic.Int64
	conn   ConnectionInfoProvider
	logger logrus.FieldLogger
}

// NewManager creates a Manager configured by the given options.
func NewManager(opts ...Option) *Manager {
	cfg := newConfig(opts...)

	m := &Manager{
		conn:   cfg.ConnectionProvider,
		logger: cfg.Logger,
	}
	if cfg.DeviceAppAttributes != nil {
		attrs := *cfg.DeviceAppAttributes
		m.attrs.Store(&attrs)
	}
	m.seq.Store(int64(cfg.SequenceStart))
	return m
}

// NewEvent returns a Builder bound to this manager.
func (m *Manager) NewEvent() *Builder {
	return newBuilder(m, m.conn, m.logger)
}

// DeviceAppAttributes returns a copy of the current snapshot, or nil if
// none has been set.
func (m *Manager) DeviceAppAttributes() *DeviceAppAttributes {
	attrs := m.attrs.Load()
	if attrs == nil {
		return nil
	}
	cp := *attrs
	return &cp
}

// SetDeviceAppAttributes replaces the device/app attributes snapshot.
// Pass nil to clear it, which makes subsequent builds fail validation.
func (m *Manager) SetDeviceAppAttributes(attrs *DeviceAppAttributes) {
	if attrs == nil {
		m.attrs.Store(nil)
		return
	}
	cp := *attrs
	m.attrs.Store(&cp)
}

// GlobalSequenceID returns the current value of the sequence counter.
func (m *Manager) GlobalSequenceID() int {
	return int(m.seq.Load())
}

// SetGlobalSequenceID overwrites the sequence counter.
func (m *Manager) SetGlobalSequenceID(id int) {
	m.seq.Store(int64(id))
}

// NextSequenceID atomically increments the counter and returns the new
// value. Implements SequenceAllocator.
func (m *Manager) NextSequenceID() int {
	return int(m.seq.Add(1))
}

// Reset returns the sequence counter to zero. The next successful build
// produces sequence ID 1.
func (m *Manager) Reset() {
	m.seq.Store(0)
}

var (
	_ EventSource       = (*Manager)(nil)
	_ SequenceAllocator = (*Manager)(nil)
)
