package main

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/livekit/protocol/auth"
	"github.com/livekit/protocol/livekit"

	"github.com/livekit/client-sdk-go/pkg/config"
	"github.com/livekit/client-sdk-go/pkg/rtc"
	"github.com/livekit/client-sdk-go/pkg/rtc/types/typesfakes"
)

type testStruct struct {
	configFileName string
	configBody     string

	expectedError      error
	expectedConfigBody string
}

func TestGetConfigString(t *testing.T) {
	tests := []testStruct{
		{"", "", nil, ""},
		{"", "configBody", nil, "configBody"},
		{"file", "configBody", nil, "configBody"},
		{"file", "", nil, "fileContent"},
	}
	for _, test := range tests {
		func() {
			writeConfigFile(test, t)
			defer os.Remove(test.configFileName)

			configBody, err := getConfigString(test.configFileName, test.configBody)
			require.Equal(t, test.expectedError, err)
			require.Equal(t, test.expectedConfigBody, configBody)
		}()
	}
}

func TestShouldReturnErrorIfConfigFileDoesNotExist(t *testing.T) {
	configBody, err := getConfigString("notExistingFile", "")
	require.Error(t, err)
	require.Empty(t, configBody)
}

func writeConfigFile(test testStruct, t *testing.T) {
	if test.configFileName != "" {
		d1 := []byte(test.expectedConfigBody)
		err := os.WriteFile(test.configFileName, d1, 0o644)
		require.NoError(t, err)
	}
}

func TestAccessToken(t *testing.T) {
	conf, err := config.NewConfig("", true, nil, nil)
	require.NoError(t, err)

	_, err = accessToken(conf)
	require.ErrorIs(t, err, config.ErrCredentialsNotSet)

	conf.APIKey = "devkey"
	conf.APISecret = "secret-secret-secret-secret-secret"
	_, err = accessToken(conf)
	require.ErrorIs(t, err, config.ErrRoomNotSet)

	conf.Room = "test"
	conf.Identity = "alice"
	token, err := accessToken(conf)
	require.NoError(t, err)

	verifier, err := auth.ParseAPIToken(token)
	require.NoError(t, err)
	require.Equal(t, "devkey", verifier.APIKey())
	require.Equal(t, "alice", verifier.Identity())
	grants, err := verifier.Verify(conf.APISecret)
	require.NoError(t, err)
	require.Equal(t, "test", grants.Video.Room)
	require.True(t, grants.Video.RoomJoin)
}

type lockedBuffer struct {
	lock sync.Mutex
	buf  bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.buf.String()
}

func TestEventPrinter(t *testing.T) {
	conf, err := config.NewConfig("", true, nil, nil)
	require.NoError(t, err)
	conf.Output.SpeakerDebounce = 0
	conf.Output.SummaryInterval = 0

	out := &lockedBuffer{}
	printer := newEventPrinter(conf, out)
	engine := &typesfakes.FakeEngine{}
	room := newRoom(engine, printer)
	client := NewClient(conf, room, printer)
	t.Cleanup(client.Stop)

	engine.JoinStub = func(ctx context.Context, url string, token string) error {
		room.OnJoined(&livekit.JoinResponse{
			Room:        &livekit.Room{Sid: "RM_test", Name: "test"},
			Participant: &livekit.ParticipantInfo{Sid: "PA_local", Identity: "local"},
			OtherParticipants: []*livekit.ParticipantInfo{
				{Sid: "PA_bob", Identity: "bob", State: livekit.ParticipantInfo_ACTIVE},
			},
		})
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, client.Connect(ctx, "token"))
	require.Equal(t, rtc.ConnectionStateConnected, room.ConnectionState())

	// summary table lists everyone once connected
	require.Contains(t, out.String(), "local (local)")
	require.Contains(t, out.String(), "PA_bob")

	room.OnParticipantUpdate([]*livekit.ParticipantInfo{
		{
			Sid:      "PA_carol",
			Identity: "carol",
			State:    livekit.ParticipantInfo_ACTIVE,
			Tracks:   []*livekit.TrackInfo{{Sid: "TR_audio", Name: "mic", Type: livekit.TrackType_AUDIO}},
		},
	})
	room.OnSpeakersChanged([]*livekit.SpeakerInfo{{Sid: "PA_carol", Level: 0.5, Active: true}})
	room.OnParticipantUpdate([]*livekit.ParticipantInfo{
		{Sid: "PA_carol", Identity: "carol", State: livekit.ParticipantInfo_DISCONNECTED},
	})

	require.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("participant left: carol"))
	}, 5*time.Second, 10*time.Millisecond)

	output := out.String()
	require.Contains(t, output, "participant joined: carol (PA_carol)")
	require.Contains(t, output, "track published: audio TR_audio \"mic\" by carol")
	require.Contains(t, output, "active speakers: carol (0.50)")
	require.Contains(t, output, "track unpublished: audio TR_audio by carol")

	room.Disconnect()
	select {
	case <-client.Disconnected():
	case <-time.After(5 * time.Second):
		t.Fatal("disconnect was not reported")
	}
}
