package rtc

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pion/webrtc/v3"
	"github.com/stretchr/testify/require"

	"github.com/livekit/protocol/livekit"
	"github.com/livekit/protocol/logger"

	"github.com/livekit/client-sdk-go/pkg/rtc/types"
	"github.com/livekit/client-sdk-go/pkg/rtc/types/typesfakes"
)

const testTimeout = 5 * time.Second

// roomEvents records every callback fired by a room, in order.
type roomEvents struct {
	lock   sync.Mutex
	events []string
}

func (e *roomEvents) add(format string, args ...interface{}) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.events = append(e.events, fmt.Sprintf(format, args...))
}

func (e *roomEvents) get() []string {
	e.lock.Lock()
	defer e.lock.Unlock()
	return append([]string(nil), e.events...)
}

func (e *roomEvents) reset() {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.events = nil
}

func (e *roomEvents) count(event string) int {
	n := 0
	for _, ev := range e.get() {
		if ev == event {
			n++
		}
	}
	return n
}

func (e *roomEvents) callback() *RoomCallback {
	return &RoomCallback{
		OnDisconnected: func(err error) {
			if err == nil {
				e.add("disconnected")
			} else {
				e.add("disconnected:error")
			}
		},
		OnFailedToConnect:     func(err error) { e.add("failedToConnect") },
		OnReconnecting:        func() { e.add("reconnecting") },
		OnReconnected:         func() { e.add("reconnected") },
		OnRoomMetadataChanged: func(metadata string) { e.add("roomMetadata:%s", metadata) },
		OnParticipantConnected: func(p *RemoteParticipant) {
			e.add("participantConnected:%s", p.SID())
		},
		OnParticipantDisconnected: func(p *RemoteParticipant) {
			e.add("participantDisconnected:%s", p.SID())
		},
		OnActiveSpeakersChanged: func(speakers []Participant) {
			sids := make([]string, 0, len(speakers))
			for _, s := range speakers {
				sids = append(sids, s.SID())
			}
			e.add("activeSpeakers:%v", sids)
		},
		OnMetadataChanged: func(oldMetadata string, p Participant) {
			e.add("metadata:%s:%s->%s", p.SID(), oldMetadata, p.Metadata())
		},
		OnTrackPublished: func(pub *TrackPublication, p *RemoteParticipant) {
			e.add("trackPublished:%s:%s", p.SID(), pub.SID())
		},
		OnTrackUnpublished: func(pub *TrackPublication, p *RemoteParticipant) {
			e.add("trackUnpublished:%s:%s", p.SID(), pub.SID())
		},
		OnTrackSubscribed: func(track types.MediaTrack, pub *TrackPublication, p *RemoteParticipant) {
			e.add("trackSubscribed:%s:%s", p.SID(), pub.SID())
		},
		OnTrackSubscriptionFailed: func(trackSid string, p *RemoteParticipant) {
			e.add("trackSubscriptionFailed:%s:%s", participantSID(p), trackSid)
		},
		OnTrackUnsubscribed: func(track types.MediaTrack, pub *TrackPublication, p *RemoteParticipant) {
			e.add("trackUnsubscribed:%s:%s", p.SID(), pub.SID())
		},
		OnDataReceived: func(data []byte, dt *DataTrack, p *RemoteParticipant) {
			e.add("data:%s:%s:%s", p.SID(), dt.Name(), string(data))
		},
	}
}

type testRoom struct {
	*Room
	engine *typesfakes.FakeEngine
	events *roomEvents
}

func newTestRoom(t *testing.T) *testRoom {
	t.Helper()

	engine := &typesfakes.FakeEngine{}
	events := &roomEvents{}
	room := NewRoom(RoomParams{
		Engine:   engine,
		Callback: events.callback(),
		Logger:   logger.GetLogger(),
	})
	t.Cleanup(room.Close)

	require.Equal(t, 1, engine.SetHandlerCallCount())
	require.Same(t, room, engine.SetHandlerArgsForCall(0))

	return &testRoom{
		Room:   room,
		engine: engine,
		events: events,
	}
}

// sync waits until every event enqueued so far has been applied and its callbacks delivered.
func (r *testRoom) sync(t *testing.T) {
	t.Helper()

	done := make(chan struct{})
	r.queue.Enqueue(func() { close(done) })
	select {
	case <-done:
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for room events")
	}
}

// connect joins with res delivered by the engine as part of the handshake.
func (r *testRoom) connect(t *testing.T, res *livekit.JoinResponse) error {
	t.Helper()

	r.engine.JoinStub = func(ctx context.Context, url string, token string) error {
		r.OnJoined(res)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	err := r.Connect(ctx, "ws://localhost:7880", "token")
	r.sync(t)
	return err
}

func participantInfo(sid string, state livekit.ParticipantInfo_State, tracks ...*livekit.TrackInfo) *livekit.ParticipantInfo {
	return &livekit.ParticipantInfo{
		Sid:      sid,
		Identity: "identity-" + sid,
		Name:     "name-" + sid,
		State:    state,
		Tracks:   tracks,
	}
}

func trackInfo(sid string, trackType livekit.TrackType) *livekit.TrackInfo {
	return &livekit.TrackInfo{
		Sid:  sid,
		Name: "track-" + sid,
		Type: trackType,
	}
}

func joinResponse(local *livekit.ParticipantInfo, others ...*livekit.ParticipantInfo) *livekit.JoinResponse {
	return &livekit.JoinResponse{
		Room: &livekit.Room{
			Sid:  "RM_test",
			Name: "test",
		},
		Participant:       local,
		OtherParticipants: others,
		ServerVersion:     "1.5.4",
	}
}

func newFakeMediaTrack(id string, kind webrtc.RTPCodecType) *typesfakes.FakeMediaTrack {
	track := &typesfakes.FakeMediaTrack{}
	track.IDReturns(id)
	track.KindReturns(kind)
	return track
}

func newFakeDataChannel(label string) *typesfakes.FakeDataChannel {
	dc := &typesfakes.FakeDataChannel{}
	dc.LabelReturns(label)
	return dc
}

func sids[T Participant](participants []T) []string {
	out := make([]string, 0, len(participants))
	for _, p := range participants {
		out = append(out, p.SID())
	}
	return out
}
