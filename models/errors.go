package models

import (
	"errors"
	"fmt"
)

// ErrInvalidSport is returned for a sport code outside the supported set,
// before any network call is made.
var ErrInvalidSport = errors.New("unsupported sport code")

// ErrRateLimited marks a caller that exhausted its request quota.
var ErrRateLimited = errors.New("rate limit exceeded")

// UpstreamError wraps a transport failure or non-success status from an
// external service (odds provider, completion service).
type UpstreamError struct {
	Service    string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s returned status %d", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ParseError means the oracle output could not be recovered into
// structured data at all (no payload span, or malformed JSON).
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("parse error: %s", e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError means the oracle output parsed as JSON but violated the
// required prediction schema. Kept distinct from ParseError so callers can
// tell formatting noise from contract drift.
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error: %s", e.Msg)
}
