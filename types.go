package analytics

// SchemaType classifies the shape of an event. It is the only mandatory
// classification: Build fails when it is left unset.
type SchemaType string

const (
	// SchemaTypeUnset is the zero value, meaning the caller never chose
	// a schema type.
	SchemaTypeUnset SchemaType = ""

	SchemaTypeInteraction SchemaType = "LightningInteraction"
	SchemaTypePageView    SchemaType = "LightningPageView"
	SchemaTypePerformance SchemaType = "LightningPerformance"
	SchemaTypeError       SchemaType = "LightningError"
)

// String returns the string representation of the schema type.
func (s SchemaType) String() string { return string(s) }

// EventType classifies the origin of an event. Optional; the zero value
// means unset and is omitted from serialized events.
type EventType string

const (
	EventTypeUser   EventType = "user"
	EventTypeSystem EventType = "system"
	EventTypeError  EventType = "error"
	EventTypeCRUD   EventType = "crud"
)

// String returns the string representation of the event type.
func (e EventType) String() string { return string(e) }

// ErrorType grades the severity of an error event. Optional; the zero
// value means unset and is omitted from serialized events.
type ErrorType string

const (
	ErrorTypeInfo  ErrorType = "info"
	ErrorTypeWarn  ErrorType = "warn"
	ErrorTypeError ErrorType = "error"
)

// String returns the string representation of the error type.
func (e ErrorType) String() string { return string(e) }

// Attributes is an alias for map[string]any, the shape of the free-form
// attribute and sender-context maps attached to events.
type Attributes = map[string]any
