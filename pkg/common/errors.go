package common

import "errors"

// Failure taxonomy shared by repositories and services. Callers tag wrapped
// errors with one of these so handlers can tell them apart with errors.Is.
var (
	ErrNetworkFailure   = errors.New("network failure")
	ErrParseFailure     = errors.New("parse failure")
	ErrModelUnavailable = errors.New("model unavailable")
	ErrEmptyInput       = errors.New("empty input")
	ErrInvalidInput     = errors.New("invalid input")
)

// Tag joins err with a taxonomy sentinel.
func Tag(kind, err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(kind, err)
}
