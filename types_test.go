package analytics

import (
	"encoding/json"
	"testing"
)

func TestSchemaType_String(t *testing.T) {
	tests := []struct {
		schemaType SchemaType
		want       string
	}{
		{SchemaTypeInteraction, "LightningInteraction"},
		{SchemaTypePageView, "LightningPageView"},
		{SchemaTypePerformance, "LightningPerformance"},
		{SchemaTypeError, "LightningError"},
		{SchemaTypeUnset, ""},
	}
	for _, tt := range tests {
		if got := tt.schemaType.String(); got != tt.want {
			t.Errorf("SchemaType(%q).String() = %q, want %q", tt.schemaType, got, tt.want)
		}
	}
}

func TestEnumJSONForms(t *testing.T) {
	data, err := json.Marshal(struct {
		Schema SchemaType `json:"schema"`
		Event  EventType  `json:"event"`
		Error  ErrorType  `json:"error"`
	}{SchemaTypePageView, EventTypeCRUD, ErrorTypeWarn})
	if err != nil {
		t.Fatalf("Marshal() err = %v", err)
	}
	want := `{"schema":"LightningPageView","event":"crud","error":"warn"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestEventTypeValues(t *testing.T) {
	for _, tt := range []struct {
		eventType EventType
		want      string
	}{
		{EventTypeUser, "user"},
		{EventTypeSystem, "system"},
		{EventTypeError, "error"},
		{EventTypeCRUD, "crud"},
	} {
		if got := tt.eventType.String(); got != tt.want {
			t.Errorf("EventType.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorTypeValues(t *testing.T) {
	for _, tt := range []struct {
		errorType ErrorType
		want      string
	}{
		{ErrorTypeInfo, "info"},
		{ErrorTypeWarn, "warn"},
		{ErrorTypeError, "error"},
	} {
		if got := tt.errorType.String(); got != tt.want {
			t.Errorf("ErrorType.String() = %q, want %q", got, tt.want)
		}
	}
}
