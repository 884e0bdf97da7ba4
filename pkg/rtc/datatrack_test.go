package rtc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/livekit/protocol/logger"
)

func TestDataTrack(t *testing.T) {
	dc := newFakeDataChannel("PA_1|TR_1|chat")
	dt := NewDataTrack(DataTrackParams{
		Logger:         logger.GetLogger(),
		ParticipantSID: "PA_1",
		TrackSID:       "TR_1",
		Name:           "chat",
		Channel:        dc,
	})

	require.NoError(t, dt.Send([]byte("hello")))
	require.Equal(t, 1, dc.SendCallCount())
	require.Equal(t, []byte("hello"), dc.SendArgsForCall(0))

	dt.Close()
	dt.Close()
	require.True(t, dt.IsClosed())
	require.Equal(t, 1, dc.CloseCallCount())

	require.ErrorIs(t, dt.Send([]byte("late")), ErrDataTrackClosed)
	require.Equal(t, 1, dc.SendCallCount())
}
