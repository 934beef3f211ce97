package gateway_event

import "errors"

var (
	ErrMissingEventType   = errors.New("gateway event type is required")
	ErrUndefinedEventType = errors.New("undefined gateway event type")
)
