package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestStopwatch(t *testing.T) {
	sw := NewStopwatch()
	require.Empty(t, sw.Splits())
	require.Zero(t, sw.Elapsed())

	time.Sleep(5 * time.Millisecond)
	sw.Mark("join")
	sw.Mark("joined")

	splits := sw.Splits()
	require.Len(t, splits, 2)
	require.Equal(t, "join", splits[0].Label)
	require.Equal(t, "joined", splits[1].Label)
	require.GreaterOrEqual(t, splits[0].Duration, 5*time.Millisecond)
	require.Equal(t, splits[0].Duration+splits[1].Duration, sw.Elapsed())

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, enc.AddArray("splits", splits))
	require.Len(t, enc.Fields["splits"], 2)
}
