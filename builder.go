package analytics

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Builder accumulates event fields through chained setters, then
// validates and produces one immutable Event. Setters never validate;
// all checking happens in Build. A Builder may be reconfigured and
// rebuilt any number of times, but must not be shared across goroutines.
type Builder struct {
	source EventSource
	conn   ConnectionInfoProvider
	logger logrus.FieldLogger

	startTime     int64
	endTime       int64
	name          string
	attributes    Attributes
	sessionID     int
	senderID      string
	senderContext Attributes
	schemaType    SchemaType
	eventType     EventType
	errorType     ErrorType

	// Test seams; production builders always use the defaults.
	newID     func() string
	nowMillis func() int64
}

// NewBuilder returns a Builder drawing device/app attributes and
// sequence IDs from source and the network state from conn. Both conn
// and a nil network state degrade gracefully; source must not be nil.
// Most callers should use Manager.NewEvent instead.
func NewBuilder(source EventSource, conn ConnectionInfoProvider) *Builder {
	return newBuilder(source, conn, nil)
}

func newBuilder(source EventSource, conn ConnectionInfoProvider, logger logrus.FieldLogger) *Builder {
	return &Builder{
		source:    source,
		conn:      conn,
		logger:    logger,
		newID:     newEventID,
		nowMillis: func() int64 { return time.Now().UnixMilli() },
	}
}

// StartTime sets the event start time in milliseconds since epoch.
//
// Zero is the unset sentinel: a start time left unset, or explicitly set
// to exactly zero, is replaced with the wall clock at build time. The
// ambiguity between "unset" and "intentionally zero" is long-standing
// and deliberately preserved.
func (b *Builder) StartTime(startTime int64) *Builder {
	b.startTime = startTime
	return b
}

// EndTime sets the event end time in milliseconds since epoch.
func (b *Builder) EndTime(endTime int64) *Builder {
	b.endTime = endTime
	return b
}

// Name sets the event name. Mandatory; Build fails on an empty name.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Attributes sets the free-form attribute map.
func (b *Builder) Attributes(attributes Attributes) *Builder {
	b.attributes = attributes
	return b
}

// SessionID sets the session identifier.
func (b *Builder) SessionID(sessionID int) *Builder {
	b.sessionID = sessionID
	return b
}

// SenderID sets the logical sender identifier.
func (b *Builder) SenderID(senderID string) *Builder {
	b.senderID = senderID
	return b
}

// SenderContext sets the sender context map.
func (b *Builder) SenderContext(senderContext Attributes) *Builder {
	b.senderContext = senderContext
	return b
}

// SchemaType sets the schema classification. Mandatory.
func (b *Builder) SchemaType(schemaType SchemaType) *Builder {
	b.schemaType = schemaType
	return b
}

// EventType sets the origin classification.
func (b *Builder) EventType(eventType EventType) *Builder {
	b.eventType = eventType
	return b
}

// ErrorType sets the error severity.
func (b *Builder) ErrorType(errorType ErrorType) *Builder {
	b.errorType = errorType
	return b
}

// Build validates the accumulated fields and produces an immutable
// Event. On validation failure it returns a *BuildError and leaves the
// sequence counter untouched; when several mandatory fields are missing
// the message of the last failed check wins. Missing connectivity never
// fails a build, it degrades the connection type to a partial or empty
// string.
func (b *Builder) Build() (*Event, error) {
	eventID := b.newID()

	var errorMessage string
	if b.schemaType == SchemaTypeUnset {
		errorMessage = msgSchemaTypeNotSet
	}
	if b.name == "" {
		errorMessage = msgNameNotSet
	}
	deviceAppAttributes := b.source.DeviceAppAttributes()
	if deviceAppAttributes == nil {
		errorMessage = msgDeviceAppAttributesNotSet
	}
	if errorMessage != "" {
		if b.logger != nil {
			b.logger.WithField("name", b.name).Debug("event validation failed: ", errorMessage)
		}
		return nil, &BuildError{Message: errorMessage}
	}

	var sequenceID int
	if alloc, ok := b.source.(SequenceAllocator); ok {
		sequenceID = alloc.NextSequenceID()
	} else {
		sequenceID = b.source.GlobalSequenceID() + 1
		b.source.SetGlobalSequenceID(sequenceID)
	}

	// Defaults to the current time if not explicitly set.
	startTime := b.startTime
	if startTime == 0 {
		startTime = b.nowMillis()
	}

	event := &Event{
		eventID:             eventID,
		startTime:           startTime,
		endTime:             b.endTime,
		name:                b.name,
		attributes:          copyAttributes(b.attributes),
		sessionID:           b.sessionID,
		sequenceID:          sequenceID,
		senderID:            b.senderID,
		senderContext:       copyAttributes(b.senderContext),
		schemaType:          b.schemaType,
		eventType:           b.eventType,
		errorType:           b.errorType,
		deviceAppAttributes: deviceAppAttributes,
		connectionType:      connectionTypeString(b.conn),
	}

	if b.logger != nil {
		b.logger.WithFields(logrus.Fields{
			"eventId":    event.eventID,
			"name":       event.name,
			"sequenceId": event.sequenceID,
		}).Debug("event built")
	}
	return event, nil
}
