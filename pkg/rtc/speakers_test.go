package rtc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/livekit/protocol/livekit"
)

func TestSpeakerAggregator(t *testing.T) {
	newParticipants := func() (*LocalParticipant, *RemoteParticipant, *RemoteParticipant) {
		return newLocalParticipant(participantInfo("PA_local", livekit.ParticipantInfo_ACTIVE)),
			newRemoteParticipant("PA_r1", participantInfo("PA_r1", livekit.ParticipantInfo_ACTIVE)),
			newRemoteParticipant("PA_r2", participantInfo("PA_r2", livekit.ParticipantInfo_ACTIVE))
	}

	t.Run("absent participants reset to zero", func(t *testing.T) {
		lp, r1, r2 := newParticipants()
		a := NewSpeakerAggregator()
		all := []Participant{lp, r1, r2}

		a.Apply(all, []*livekit.SpeakerInfo{{Sid: "PA_local", Level: 0.5}})
		require.Equal(t, float32(0.5), lp.AudioLevel())
		require.True(t, lp.IsSpeaking())

		speakers := a.Apply(all, []*livekit.SpeakerInfo{{Sid: "PA_r2", Level: 0.8}})
		require.Equal(t, float32(0), lp.AudioLevel())
		require.Equal(t, float32(0), r1.AudioLevel())
		require.Equal(t, float32(0.8), r2.AudioLevel())
		require.False(t, lp.IsSpeaking())
		require.Equal(t, []string{"PA_r2"}, sids(speakers))
	})

	t.Run("speakers are sorted loudest first", func(t *testing.T) {
		lp, r1, r2 := newParticipants()
		a := NewSpeakerAggregator()

		speakers := a.Apply([]Participant{lp, r1, r2}, []*livekit.SpeakerInfo{
			{Sid: "PA_r1", Level: 0.2},
			{Sid: "PA_local", Level: 0.9},
			{Sid: "PA_r2", Level: 0.4},
		})
		require.Equal(t, []string{"PA_local", "PA_r2", "PA_r1"}, sids(speakers))
	})

	t.Run("equal levels are ordered by sid", func(t *testing.T) {
		lp, r1, r2 := newParticipants()
		a := NewSpeakerAggregator()

		speakers := a.Apply([]Participant{r2, lp, r1}, []*livekit.SpeakerInfo{
			{Sid: "PA_r2", Level: 0.5},
			{Sid: "PA_r1", Level: 0.5},
			{Sid: "PA_local", Level: 0.5},
		})
		require.Equal(t, []string{"PA_local", "PA_r1", "PA_r2"}, sids(speakers))
	})

	t.Run("unknown sids are ignored", func(t *testing.T) {
		lp, r1, _ := newParticipants()
		a := NewSpeakerAggregator()

		speakers := a.Apply([]Participant{lp, r1}, []*livekit.SpeakerInfo{
			{Sid: "PA_gone", Level: 1},
			{Sid: "PA_r1", Level: 0.3},
		})
		require.Equal(t, []string{"PA_r1"}, sids(speakers))
	})

	t.Run("remove and reset", func(t *testing.T) {
		lp, r1, r2 := newParticipants()
		a := NewSpeakerAggregator()
		a.Apply([]Participant{lp, r1, r2}, []*livekit.SpeakerInfo{
			{Sid: "PA_r1", Level: 0.3},
			{Sid: "PA_r2", Level: 0.6},
		})

		require.True(t, a.Remove("PA_r2"))
		require.False(t, a.Remove("PA_r2"))
		require.Equal(t, []string{"PA_r1"}, sids(a.ActiveSpeakers()))

		a.Reset()
		require.Empty(t, a.ActiveSpeakers())
	})
}
