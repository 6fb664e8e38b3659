package analytics

import "strings"

// ConnectionInfo describes the active network connection as reported by
// the host platform: a coarse type such as "WIFI" or "MOBILE" and an
// optional subtype such as "LTE". Either field may be empty.
type ConnectionInfo struct {
	Type    string
	Subtype string
}

// ConnectionInfoProvider is the narrow capability the builder uses to
// read the active network state at build time. Implementations wrap the
// host platform's network-status API; ok is false when there is no
// active connection. The call must be cheap and local, with no network
// round-trip.
type ConnectionInfoProvider interface {
	CurrentConnection() (info ConnectionInfo, ok bool)
}

// StaticConnection is a ConnectionInfoProvider that always reports the
// same connection. Useful on platforms without a network-status API and
// as a test substitute.
type StaticConnection struct {
	Info ConnectionInfo
}

// CurrentConnection implements ConnectionInfoProvider.
func (s StaticConnection) CurrentConnection() (ConnectionInfo, bool) {
	return s.Info, true
}

// NoConnection is a ConnectionInfoProvider that always reports no active
// connection.
type NoConnection struct{}

// CurrentConnection implements ConnectionInfoProvider.
func (NoConnection) CurrentConnection() (ConnectionInfo, bool) {
	return ConnectionInfo{}, false
}

// connectionTypeString derives the event's connection descriptor from
// the provider. The format is "<type>;<subtype>" when both parts are
// present, "<type>;" with no subtype, bare "<subtype>" with no type, and
// "" when the provider is nil or reports no active connection. Absence
// never fails a build.
func connectionTypeString(provider ConnectionInfoProvider) string {
	if provider == nil {
		return ""
	}
	info, ok := provider.CurrentConnection()
	if !ok {
		return ""
	}
	var sb strings.Builder
	if info.Type != "" {
		sb.WriteString(info.Type)
		sb.WriteString(";")
	}
	if info.Subtype != "" {
		sb.WriteString(info.Subtype)
	}
	return sb.String()
}
