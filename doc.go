// Package analytics provides the event model and builder for a mobile
// telemetry SDK. It validates and constructs immutable instrumentation
// events carrying timing, naming, session and sequence identifiers,
// classification types, device/app metadata, and the network connection
// state at build time.
//
// # Quick Start
//
// Create a manager with the host's device/app attributes, then build
// events through it:
//
//	mgr := analytics.NewManager(
//	    analytics.WithDeviceAppAttributes(&analytics.DeviceAppAttributes{
//	        AppName:    "AcmeApp",
//	        AppVersion: "4.2.0",
//	        OSName:     "android",
//	        DeviceID:   deviceID,
//	    }),
//	)
//
//	event, err := mgr.NewEvent().
//	    SchemaType(analytics.SchemaTypeInteraction).
//	    Name("tap:checkout").
//	    SessionID(sessionID).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The three mandatory fields are the schema type, the event name, and the
// manager's device/app attributes. Everything else is optional and
// defaults sensibly: the start time defaults to the wall clock at build
// time, and the sequence ID is assigned by the manager.
//
// # Validation
//
// Setters never validate; Build does. A failed Build returns a
// *BuildError carrying one fixed message naming the missing field, and
// leaves the manager's sequence counter untouched.
//
// # Thread Safety
//
// A Manager is safe for concurrent use: its sequence counter hands out
// strictly increasing IDs to any number of goroutines. Individual
// Builder instances should only be used from a single goroutine.
//
// # Scope
//
// This package constructs event values. Queueing, persistence, and
// upload of built events belong to whatever ingestion system consumes
// them.
package analytics
