package analytics

import "errors"

// Fixed validation messages. These are part of the wire-level contract
// with existing consumers and must not be reworded.
const (
	msgSchemaTypeNotSet          = "Mandatory field 'schema type' not set!"
	msgNameNotSet                = "Mandatory field 'name' not set!"
	msgDeviceAppAttributesNotSet = "Mandatory field 'device app attributes' not set!"
)

// ErrMandatoryFieldMissing is the sentinel every BuildError wraps.
// Use errors.Is(err, ErrMandatoryFieldMissing) to detect validation
// failures without caring which field was missing.
var ErrMandatoryFieldMissing = errors.New("analytics: mandatory field missing")

// BuildError is returned by Builder.Build when a mandatory field is
// missing. Message holds exactly one of the fixed validation messages;
// when several mandatory fields are missing at once, the message for the
// last check in validation order wins.
type BuildError struct {
	Message string
}

// Error implements the error interface. It returns the fixed validation
// message verbatim.
func (e *BuildError) Error() string {
	return e.Message
}

// Unwrap returns ErrMandatoryFieldMissing for errors.Is support.
func (e *BuildError) Unwrap() error {
	return ErrMandatoryFieldMissing
}

// IsBuildError reports whether err is a *BuildError and returns it.
func IsBuildError(err error) (*BuildError, bool) {
	var be *BuildError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
