package rtc

import (
	"fmt"
	"strings"
)

const (
	trackIdSeparator = "|"
)

// UnpackStreamID splits a packed "<participant>|<track>" stream id.
// A stream id without separator is the bare participant sid.
func UnpackStreamID(packed string) (participantSid string, trackSid string) {
	parts := strings.Split(packed, trackIdSeparator)
	if len(parts) > 1 {
		return parts[0], packed[len(parts[0])+1:]
	}
	return packed, ""
}

func PackStreamID(participantSid, trackSid string) string {
	return participantSid + trackIdSeparator + trackSid
}

func PackDataTrackLabel(participantSid, trackSid string, name string) string {
	return participantSid + trackIdSeparator + trackSid + trackIdSeparator + name
}

// UnpackDataTrackLabel decodes a data channel label into its owner, track sid and name.
// The name is everything after the second separator.
func UnpackDataTrackLabel(packed string) (participantSid string, trackSid string, name string, err error) {
	parts := strings.SplitN(packed, trackIdSeparator, 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return "", "", "", fmt.Errorf("%w: invalid data track label %q", ErrMalformedEvent, packed)
	}
	return parts[0], parts[1], parts[2], nil
}
