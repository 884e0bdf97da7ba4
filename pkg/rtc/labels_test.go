package rtc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamID(t *testing.T) {
	packed := PackStreamID("PA_1", "TR_1")
	pID, trackID := UnpackStreamID(packed)
	require.Equal(t, "PA_1", pID)
	require.Equal(t, "TR_1", trackID)

	pID, trackID = UnpackStreamID("PA_1")
	require.Equal(t, "PA_1", pID)
	require.Empty(t, trackID)
}

func TestDataTrackLabel(t *testing.T) {
	pID, trackID, name, err := UnpackDataTrackLabel(PackDataTrackLabel("PA_1", "TR_1", "a|b"))
	require.NoError(t, err)
	require.Equal(t, "PA_1", pID)
	require.Equal(t, "TR_1", trackID)
	require.Equal(t, "a|b", name)

	// empty name is allowed
	_, _, name, err = UnpackDataTrackLabel("PA_1|TR_1|")
	require.NoError(t, err)
	require.Empty(t, name)

	_, _, _, err = UnpackDataTrackLabel("PA_1|TR_1")
	require.ErrorIs(t, err, ErrMalformedEvent)
}
