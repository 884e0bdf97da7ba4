package signalling

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pion/rtcp"
	"github.com/pion/webrtc/v3"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/livekit/protocol/livekit"
	"github.com/livekit/protocol/logger"

	"github.com/livekit/client-sdk-go/pkg/rtc/types"
	"github.com/livekit/client-sdk-go/pkg/rtc/types/typesfakes"
	"github.com/livekit/client-sdk-go/pkg/testutils"
)

// fakeServer feeds signal responses to the engine through a fake websocket.
type fakeServer struct {
	ws        *typesfakes.FakeWebsocketClient
	responses chan []byte
	closeOnce sync.Once
	closed    chan struct{}
}

func newFakeServer() *fakeServer {
	s := &fakeServer{
		ws:        &typesfakes.FakeWebsocketClient{},
		responses: make(chan []byte, 16),
		closed:    make(chan struct{}),
	}
	s.ws.ReadMessageStub = func() (int, []byte, error) {
		select {
		case payload := <-s.responses:
			return websocket.BinaryMessage, payload, nil
		case <-s.closed:
			return 0, nil, io.EOF
		}
	}
	s.ws.CloseStub = func() error {
		s.closeOnce.Do(func() { close(s.closed) })
		return nil
	}
	return s
}

func (s *fakeServer) send(t *testing.T, res *livekit.SignalResponse) {
	t.Helper()
	payload, err := proto.Marshal(res)
	require.NoError(t, err)
	s.responses <- payload
}

func (s *fakeServer) requests(t *testing.T) []*livekit.SignalRequest {
	t.Helper()
	var out []*livekit.SignalRequest
	for i := 0; i < s.ws.WriteMessageCallCount(); i++ {
		_, data := s.ws.WriteMessageArgsForCall(i)
		req := &livekit.SignalRequest{}
		require.NoError(t, proto.Unmarshal(data, req))
		out = append(out, req)
	}
	return out
}

type fakePeerConnection struct {
	lock              sync.Mutex
	onICEState        func(webrtc.ICEConnectionState)
	remote            *webrtc.SessionDescription
	candidates        []webrtc.ICECandidateInit
	candidatesAtOffer int
	rtcp              []rtcp.Packet
	closed            bool
}

func (pc *fakePeerConnection) OnICECandidate(f func(*webrtc.ICECandidate))              {}
func (pc *fakePeerConnection) OnTrack(f func(*webrtc.TrackRemote, *webrtc.RTPReceiver)) {}
func (pc *fakePeerConnection) OnDataChannel(f func(*webrtc.DataChannel))                {}

func (pc *fakePeerConnection) OnICEConnectionStateChange(f func(webrtc.ICEConnectionState)) {
	pc.lock.Lock()
	defer pc.lock.Unlock()
	pc.onICEState = f
}

func (pc *fakePeerConnection) SetRemoteDescription(desc webrtc.SessionDescription) error {
	pc.lock.Lock()
	defer pc.lock.Unlock()
	pc.remote = &desc
	pc.candidatesAtOffer = len(pc.candidates)
	return nil
}

func (pc *fakePeerConnection) CreateAnswer(options *webrtc.AnswerOptions) (webrtc.SessionDescription, error) {
	return webrtc.SessionDescription{Type: webrtc.SDPTypeAnswer, SDP: "answer"}, nil
}

func (pc *fakePeerConnection) SetLocalDescription(desc webrtc.SessionDescription) error {
	return nil
}

func (pc *fakePeerConnection) AddICECandidate(candidate webrtc.ICECandidateInit) error {
	pc.lock.Lock()
	defer pc.lock.Unlock()
	pc.candidates = append(pc.candidates, candidate)
	return nil
}

func (pc *fakePeerConnection) WriteRTCP(pkts []rtcp.Packet) error {
	pc.lock.Lock()
	defer pc.lock.Unlock()
	pc.rtcp = append(pc.rtcp, pkts...)
	return nil
}

func (pc *fakePeerConnection) Close() error {
	pc.lock.Lock()
	defer pc.lock.Unlock()
	pc.closed = true
	return nil
}

func (pc *fakePeerConnection) setICEState(state webrtc.ICEConnectionState) {
	pc.lock.Lock()
	f := pc.onICEState
	pc.lock.Unlock()
	f(state)
}

func (pc *fakePeerConnection) isClosed() bool {
	pc.lock.Lock()
	defer pc.lock.Unlock()
	return pc.closed
}

type testEngine struct {
	*Engine
	server  *fakeServer
	pc      *fakePeerConnection
	handler *typesfakes.FakeEngineHandler
}

func newTestEngine(t *testing.T) *testEngine {
	t.Helper()

	server := newFakeServer()
	pc := &fakePeerConnection{}
	handler := &typesfakes.FakeEngineHandler{}
	e := NewEngine(EngineParams{
		Logger:       logger.GetLogger(),
		PingInterval: -1,
		Dialer: func(ctx context.Context, url string, token string, params ConnectParams) (types.WebsocketClient, error) {
			return server.ws, nil
		},
		NewPeerConnection: func(configuration webrtc.Configuration) (PeerConnection, error) {
			return pc, nil
		},
	})
	e.SetHandler(handler)
	t.Cleanup(e.Close)

	require.NoError(t, e.Join(context.Background(), "ws://localhost:7880", "token"))
	return &testEngine{
		Engine:  e,
		server:  server,
		pc:      pc,
		handler: handler,
	}
}

func (e *testEngine) join(t *testing.T) {
	t.Helper()
	e.server.send(t, &livekit.SignalResponse{
		Message: &livekit.SignalResponse_Join{
			Join: &livekit.JoinResponse{
				Room:        &livekit.Room{Sid: "RM_test", Name: "test"},
				Participant: &livekit.ParticipantInfo{Sid: "PA_local", Identity: "local"},
			},
		},
	})
	waitForCalls(t, "OnJoined", e.handler.OnJoinedCallCount)
}

func waitForCalls(t *testing.T, name string, count func() int) {
	t.Helper()
	testutils.WithTimeout(t, func() string {
		if n := count(); n != 1 {
			return fmt.Sprintf("%s called %d times", name, n)
		}
		return ""
	})
}

func TestEngineJoin(t *testing.T) {
	t.Run("dial error is returned", func(t *testing.T) {
		e := NewEngine(EngineParams{
			Dialer: func(ctx context.Context, url string, token string, params ConnectParams) (types.WebsocketClient, error) {
				require.Equal(t, types.DefaultProtocol, params.ProtocolVersion)
				return nil, errors.New("refused")
			},
		})
		e.SetHandler(&typesfakes.FakeEngineHandler{})
		require.Error(t, e.Join(context.Background(), "ws://localhost:7880", "token"))
	})

	t.Run("requires a handler", func(t *testing.T) {
		e := NewEngine(EngineParams{})
		require.Error(t, e.Join(context.Background(), "ws://localhost:7880", "token"))
	})

	t.Run("join response is forwarded", func(t *testing.T) {
		e := newTestEngine(t)
		e.join(t)
		require.Equal(t, "PA_local", e.handler.OnJoinedArgsForCall(0).Participant.Sid)
	})

	t.Run("connection lost before join is a connect failure", func(t *testing.T) {
		e := newTestEngine(t)
		require.NoError(t, e.server.ws.Close())

		waitForCalls(t, "OnConnectFailed", e.handler.OnConnectFailedCallCount)
		require.Equal(t, 0, e.handler.OnDisconnectedCallCount())
		require.True(t, e.pc.isClosed())
	})
}

func TestEngineSignalResponses(t *testing.T) {
	t.Run("room events", func(t *testing.T) {
		e := newTestEngine(t)
		e.join(t)

		e.server.send(t, &livekit.SignalResponse{
			Message: &livekit.SignalResponse_Update{
				Update: &livekit.ParticipantUpdate{
					Participants: []*livekit.ParticipantInfo{{Sid: "PA_1"}, {Sid: "PA_2"}},
				},
			},
		})
		e.server.send(t, &livekit.SignalResponse{
			Message: &livekit.SignalResponse_SpeakersChanged{
				SpeakersChanged: &livekit.SpeakersChanged{
					Speakers: []*livekit.SpeakerInfo{{Sid: "PA_1", Level: 0.5, Active: true}},
				},
			},
		})
		e.server.send(t, &livekit.SignalResponse{
			Message: &livekit.SignalResponse_RoomUpdate{
				RoomUpdate: &livekit.RoomUpdate{Room: &livekit.Room{Sid: "RM_test", Metadata: "meta"}},
			},
		})
		e.server.send(t, &livekit.SignalResponse{
			Message: &livekit.SignalResponse_SubscriptionResponse{
				SubscriptionResponse: &livekit.SubscriptionResponse{TrackSid: "TR_1"},
			},
		})

		waitForCalls(t, "OnSubscriptionFailed", e.handler.OnSubscriptionFailedCallCount)
		require.Equal(t, 1, e.handler.OnParticipantUpdateCallCount())
		require.Len(t, e.handler.OnParticipantUpdateArgsForCall(0), 2)
		require.Equal(t, 1, e.handler.OnSpeakersChangedCallCount())
		require.Equal(t, "meta", e.handler.OnRoomUpdateArgsForCall(0).Metadata)
		trackSid, _ := e.handler.OnSubscriptionFailedArgsForCall(0)
		require.Equal(t, "TR_1", trackSid)
	})

	t.Run("leave disconnects once", func(t *testing.T) {
		e := newTestEngine(t)
		e.join(t)

		e.server.send(t, &livekit.SignalResponse{
			Message: &livekit.SignalResponse_Leave{
				Leave: &livekit.LeaveRequest{Reason: livekit.DisconnectReason_SERVER_SHUTDOWN},
			},
		})

		waitForCalls(t, "OnDisconnected", e.handler.OnDisconnectedCallCount)
		require.Equal(t, livekit.DisconnectReason_SERVER_SHUTDOWN.String(), e.handler.OnDisconnectedArgsForCall(0))
		require.True(t, e.pc.isClosed())

		e.pc.setICEState(webrtc.ICEConnectionStateFailed)
		require.Equal(t, 1, e.handler.OnDisconnectedCallCount())
		require.Equal(t, 0, e.handler.OnConnectFailedCallCount())
	})

	t.Run("offer is answered after queued candidates", func(t *testing.T) {
		e := newTestEngine(t)
		e.join(t)

		trickle, err := ToProtoTrickle(webrtc.ICECandidateInit{Candidate: "candidate:1"}, livekit.SignalTarget_SUBSCRIBER)
		require.NoError(t, err)
		e.server.send(t, &livekit.SignalResponse{
			Message: &livekit.SignalResponse_Trickle{Trickle: trickle},
		})
		e.server.send(t, &livekit.SignalResponse{
			Message: &livekit.SignalResponse_Offer{
				Offer: &livekit.SessionDescription{Type: "offer", Sdp: "offer"},
			},
		})

		waitForCalls(t, "WriteMessage", e.server.ws.WriteMessageCallCount)
		answer := e.server.requests(t)[0].GetAnswer()
		require.NotNil(t, answer)
		require.Equal(t, "answer", answer.Sdp)

		e.pc.lock.Lock()
		defer e.pc.lock.Unlock()
		require.Equal(t, "offer", e.pc.remote.SDP)
		require.Equal(t, 0, e.pc.candidatesAtOffer)
		require.Len(t, e.pc.candidates, 1)
	})
}

func TestEngineICEState(t *testing.T) {
	t.Run("resume cycle", func(t *testing.T) {
		e := newTestEngine(t)

		e.pc.setICEState(webrtc.ICEConnectionStateDisconnected)
		require.Equal(t, 0, e.handler.OnResumingCallCount())

		e.join(t)
		e.pc.setICEState(webrtc.ICEConnectionStateConnected)
		e.pc.setICEState(webrtc.ICEConnectionStateDisconnected)
		e.pc.setICEState(webrtc.ICEConnectionStateDisconnected)
		require.Equal(t, 1, e.handler.OnResumingCallCount())

		e.pc.setICEState(webrtc.ICEConnectionStateConnected)
		require.Equal(t, 1, e.handler.OnResumedCallCount())
	})

	t.Run("failure after join disconnects", func(t *testing.T) {
		e := newTestEngine(t)
		e.join(t)

		e.pc.setICEState(webrtc.ICEConnectionStateFailed)
		require.Equal(t, 1, e.handler.OnDisconnectedCallCount())
		require.Equal(t, 0, e.handler.OnConnectFailedCallCount())
	})
}

func TestEngineClose(t *testing.T) {
	e := newTestEngine(t)
	e.join(t)

	e.Close()
	requests := e.server.requests(t)
	require.Len(t, requests, 1)
	require.Equal(t, livekit.DisconnectReason_CLIENT_INITIATED, requests[0].GetLeave().Reason)
	require.True(t, e.pc.isClosed())

	// closing is silent
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, 0, e.handler.OnDisconnectedCallCount())
	require.Equal(t, 0, e.handler.OnConnectFailedCallCount())

	require.ErrorIs(t, e.RequestKeyFrame(&typesfakes.FakeMediaTrack{}), ErrNotJoined)
	e.Close()
}

func TestEngineRequestKeyFrame(t *testing.T) {
	e := newTestEngine(t)
	track := &typesfakes.FakeMediaTrack{}
	track.SSRCReturns(1234)

	require.NoError(t, e.RequestKeyFrame(track))
	e.pc.lock.Lock()
	defer e.pc.lock.Unlock()
	require.Len(t, e.pc.rtcp, 1)
	pli, ok := e.pc.rtcp[0].(*rtcp.PictureLossIndication)
	require.True(t, ok)
	require.Equal(t, uint32(1234), pli.MediaSSRC)
}
