package rtc

import (
	"errors"
	"fmt"
)

var (
	ErrProtocolViolation   = errors.New("join response did not include a local participant")
	ErrMalformedEvent      = errors.New("malformed engine event")
	ErrClientDisconnected  = errors.New("client disconnected before the connection was established")
	ErrEngineDisconnected  = errors.New("engine disconnected")
	ErrAlreadyConnected    = errors.New("room is already connecting or connected")
	ErrDuplicateJoin       = errors.New("join response received after connect was resolved")
	ErrLocalParticipantSID = errors.New("sid belongs to the local participant")
	ErrDataTrackClosed     = errors.New("data track is closed")
)

// ConnectionError is returned by Connect and reported through OnFailedToConnect / OnDisconnected.
type ConnectionError struct {
	Reason string
	Err    error
}

func newConnectionError(reason string, err error) *ConnectionError {
	return &ConnectionError{Reason: reason, Err: err}
}

func (e *ConnectionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("connection error: %s", e.Reason)
	}
	return fmt.Sprintf("connection error: %s: %v", e.Reason, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
