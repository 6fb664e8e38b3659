package analytics

import "encoding/json"

// Event is an immutable instrumentation record. Events are constructed
// only through Builder.Build, which guarantees every Event has a fresh
// ID, a non-empty name, a schema type, a device/app attributes snapshot,
// and a sequence ID unique among events from the same Manager.
type Event struct {
	eventID             string
	startTime           int64
	endTime             int64
	name                string
	attributes          Attributes
	sessionID           int
	sequenceID          int
	senderID            string
	senderContext       Attributes
	schemaType          SchemaType
	eventType           EventType
	errorType           ErrorType
	deviceAppAttributes *DeviceAppAttributes
	connectionType      string
}

// EventID returns the globally unique identifier generated for this event.
func (e *Event) EventID() string { return e.eventID }

// StartTime returns the event start time in milliseconds since epoch.
func (e *Event) StartTime() int64 { return e.startTime }

// EndTime returns the event end time in milliseconds since epoch, or
// zero if the caller never set one.
func (e *Event) EndTime() int64 { return e.endTime }

// Name returns the event name.
func (e *Event) Name() string { return e.name }

// Attributes returns a copy of the event's free-form attributes, or nil
// if none were set.
func (e *Event) Attributes() Attributes { return copyAttributes(e.attributes) }

// SessionID returns the session identifier, or zero if unset.
func (e *Event) SessionID() int { return e.sessionID }

// SequenceID returns the manager-assigned sequence number.
func (e *Event) SequenceID() int { return e.sequenceID }

// SenderID returns the logical sender identifier, or "" if unset.
func (e *Event) SenderID() string { return e.senderID }

// SenderContext returns a copy of the sender context map, or nil if none
// was set.
func (e *Event) SenderContext() Attributes { return copyAttributes(e.senderContext) }

// SchemaType returns the event's schema classification.
func (e *Event) SchemaType() SchemaType { return e.schemaType }

// EventType returns the event's origin classification, or the zero value
// if unset.
func (e *Event) EventType() EventType { return e.eventType }

// ErrorType returns the event's error severity, or the zero value if unset.
func (e *Event) ErrorType() ErrorType { return e.errorType }

// DeviceAppAttributes returns the device/app metadata snapshot captured
// at build time.
func (e *Event) DeviceAppAttributes() *DeviceAppAttributes {
	if e.deviceAppAttributes == nil {
		return nil
	}
	attrs := *e.deviceAppAttributes
	return &attrs
}

// ConnectionType returns the derived network descriptor. It is never a
// "null" marker: absence of connectivity yields the empty string.
func (e *Event) ConnectionType() string { return e.connectionType }

// eventJSON mirrors the serialized form consumed by downstream ingestion.
type eventJSON struct {
	EventID             string               `json:"eventId"`
	StartTime           int64                `json:"startTime"`
	EndTime             int64                `json:"endTime,omitempty"`
	Name                string               `json:"name"`
	Attributes          Attributes           `json:"attributes,omitempty"`
	SessionID           int                  `json:"sessionId,omitempty"`
	SequenceID          int                  `json:"sequenceId"`
	SenderID            string               `json:"senderId,omitempty"`
	SenderContext       Attributes           `json:"senderContext,omitempty"`
	SchemaType          SchemaType           `json:"schemaType"`
	EventType           EventType            `json:"eventType,omitempty"`
	ErrorType           ErrorType            `json:"errorType,omitempty"`
	DeviceAppAttributes *DeviceAppAttributes `json:"deviceAppAttributes"`
	ConnectionType      string               `json:"connectionType"`
}

// MarshalJSON implements json.Marshaler using the established wire keys.
// Unset optional fields are omitted; connectionType is always present,
// even when empty.
func (e *Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventJSON{
		EventID:             e.eventID,
		StartTime:           e.startTime,
		EndTime:             e.endTime,
		Name:                e.name,
		Attributes:          e.attributes,
		SessionID:           e.sessionID,
		SequenceID:          e.sequenceID,
		SenderID:            e.senderID,
		SenderContext:       e.senderContext,
		SchemaType:          e.schemaType,
		EventType:           e.eventType,
		ErrorType:           e.errorType,
		DeviceAppAttributes: e.deviceAppAttributes,
		ConnectionType:      e.connectionType,
	})
}

// copyAttributes returns a shallow copy of m, or nil if m is nil.
func copyAttributes(m Attributes) Attributes {
	if m == nil {
		return nil
	}
	out := make(Attributes, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
