package rtc

import (
	"fmt"

	"github.com/livekit/protocol/logger"

	"github.com/livekit/client-sdk-go/pkg/rtc/types"
)

type MediaTrackMatch struct {
	Participant        *RemoteParticipant
	ParticipantCreated bool
	Publication        *TrackPublication
}

type DataTrackMatch struct {
	Participant        *RemoteParticipant
	ParticipantCreated bool
	DataTrack          *DataTrack
	Replaced           *DataTrack
}

// TrackMatcher resolves the owner of inbound media tracks and data channels and attaches them.
type TrackMatcher struct {
	logger   logger.Logger
	registry *ParticipantRegistry
}

func NewTrackMatcher(logger logger.Logger, registry *ParticipantRegistry) *TrackMatcher {
	return &TrackMatcher{
		logger:   logger,
		registry: registry,
	}
}

// MatchMediaTrack uses the first stream id as the owner. A packed "<participant>|<track>" stream id
// also names the track sid, otherwise the track's own id is used.
func (m *TrackMatcher) MatchMediaTrack(track types.MediaTrack, streamIDs []string) (MediaTrackMatch, error) {
	if len(streamIDs) == 0 {
		return MediaTrackMatch{}, fmt.Errorf("%w: media track %s has no stream id", ErrMalformedEvent, track.ID())
	}

	participantSid, trackSid := UnpackStreamID(streamIDs[0])
	if participantSid == "" {
		return MediaTrackMatch{}, fmt.Errorf("%w: media track %s has an empty stream id", ErrMalformedEvent, track.ID())
	}
	if trackSid == "" {
		trackSid = track.ID()
	}

	rp, created, err := m.registry.GetOrCreate(participantSid, nil)
	if err != nil {
		return MediaTrackMatch{}, fmt.Errorf("%w: media track %s: %v", ErrMalformedEvent, trackSid, err)
	}
	if created {
		m.logger.Debugw("created participant stub for media track", "pID", participantSid, "trackID", trackSid)
	}

	pub, _ := rp.addSubscribedMediaTrack(track, trackSid)
	return MediaTrackMatch{
		Participant:        rp,
		ParticipantCreated: created,
		Publication:        pub,
	}, nil
}

// MatchDataChannel decodes the channel label and attaches a data track to its owner.
func (m *TrackMatcher) MatchDataChannel(dc types.DataChannel) (DataTrackMatch, error) {
	participantSid, trackSid, name, err := UnpackDataTrackLabel(dc.Label())
	if err != nil {
		return DataTrackMatch{}, err
	}

	rp, created, err := m.registry.GetOrCreate(participantSid, nil)
	if err != nil {
		return DataTrackMatch{}, fmt.Errorf("%w: data channel %s: %v", ErrMalformedEvent, dc.Label(), err)
	}
	if created {
		m.logger.Debugw("created participant stub for data track", "pID", participantSid, "trackID", trackSid)
	}

	dt := NewDataTrack(DataTrackParams{
		Logger:         m.logger,
		ParticipantSID: participantSid,
		TrackSID:       trackSid,
		Name:           name,
		Channel:        dc,
	})
	return DataTrackMatch{
		Participant:        rp,
		ParticipantCreated: created,
		DataTrack:          dt,
		Replaced:           rp.addDataTrack(dt),
	}, nil
}
