package rtc

import (
	"testing"

	"github.com/pion/webrtc/v3"
	"github.com/stretchr/testify/require"

	"github.com/livekit/protocol/livekit"
	"github.com/livekit/protocol/logger"
)

func TestTrackMatcher(t *testing.T) {
	newMatcher := func() (*TrackMatcher, *ParticipantRegistry) {
		reg := NewParticipantRegistry()
		reg.SetLocalSID("PA_local")
		_, _, _ = reg.GetOrCreate("PA_1", participantInfo("PA_1", livekit.ParticipantInfo_ACTIVE, trackInfo("TR_v", livekit.TrackType_VIDEO)))
		return NewTrackMatcher(logger.GetLogger(), reg), reg
	}

	t.Run("packed stream id names the track", func(t *testing.T) {
		m, reg := newMatcher()
		track := newFakeMediaTrack("webrtc-track-id", webrtc.RTPCodecTypeVideo)

		match, err := m.MatchMediaTrack(track, []string{PackStreamID("PA_1", "TR_v")})
		require.NoError(t, err)
		require.False(t, match.ParticipantCreated)
		require.Same(t, reg.Get("PA_1"), match.Participant)
		require.Equal(t, "TR_v", match.Publication.SID())
		require.Same(t, track, match.Publication.Track())
	})

	t.Run("bare stream id falls back to the track id", func(t *testing.T) {
		m, reg := newMatcher()
		track := newFakeMediaTrack("TR_a", webrtc.RTPCodecTypeAudio)

		match, err := m.MatchMediaTrack(track, []string{"PA_2", "ignored"})
		require.NoError(t, err)
		require.True(t, match.ParticipantCreated)
		require.Equal(t, "TR_a", match.Publication.SID())
		require.Equal(t, TrackKindAudio, match.Publication.Kind())
		require.True(t, reg.Get("PA_2").isStub())
	})

	t.Run("track arriving twice keeps one publication", func(t *testing.T) {
		m, reg := newMatcher()
		_, err := m.MatchMediaTrack(newFakeMediaTrack("TR_v", webrtc.RTPCodecTypeVideo), []string{"PA_1"})
		require.NoError(t, err)
		_, err = m.MatchMediaTrack(newFakeMediaTrack("TR_v", webrtc.RTPCodecTypeVideo), []string{"PA_1"})
		require.NoError(t, err)
		require.Len(t, reg.Get("PA_1").TrackPublications(), 1)
	})

	t.Run("missing stream context is malformed", func(t *testing.T) {
		m, reg := newMatcher()
		for _, streamIDs := range [][]string{nil, {""}, {"|TR_v"}} {
			_, err := m.MatchMediaTrack(newFakeMediaTrack("TR_v", webrtc.RTPCodecTypeVideo), streamIDs)
			require.ErrorIs(t, err, ErrMalformedEvent)
		}
		require.Equal(t, 1, reg.Len())
	})

	t.Run("local participant tracks are rejected", func(t *testing.T) {
		m, reg := newMatcher()
		_, err := m.MatchMediaTrack(newFakeMediaTrack("TR_x", webrtc.RTPCodecTypeVideo), []string{"PA_local"})
		require.ErrorIs(t, err, ErrMalformedEvent)
		require.Nil(t, reg.Get("PA_local"))
	})

	t.Run("data channel", func(t *testing.T) {
		m, reg := newMatcher()
		dc := newFakeDataChannel(PackDataTrackLabel("PA_3", "TR_d", "chat|v2"))

		match, err := m.MatchDataChannel(dc)
		require.NoError(t, err)
		require.True(t, match.ParticipantCreated)
		require.Nil(t, match.Replaced)
		require.Equal(t, DataTrackKey{ParticipantSID: "PA_3", TrackSID: "TR_d", Name: "chat|v2"}, match.DataTrack.Key())
		require.Same(t, match.DataTrack, reg.Get("PA_3").GetDataTrack("TR_d", "chat|v2"))

		again, err := m.MatchDataChannel(newFakeDataChannel(dc.Label()))
		require.NoError(t, err)
		require.Same(t, match.DataTrack, again.Replaced)
		require.Len(t, reg.Get("PA_3").DataTracks(), 1)
	})

	t.Run("malformed data channel label", func(t *testing.T) {
		m, _ := newMatcher()
		for _, label := range []string{"", "PA_1", "PA_1|TR_d", "|TR_d|name", "PA_1||name"} {
			_, err := m.MatchDataChannel(newFakeDataChannel(label))
			require.ErrorIs(t, err, ErrMalformedEvent, label)
		}
	})
}
