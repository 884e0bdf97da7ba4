// Copyright 2023 LiveKit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package signalling

import (
	"context"
	"sync"
	"time"

	"github.com/frostbyte73/core"
	"github.com/pion/rtcp"
	"github.com/pion/webrtc/v3"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/livekit/protocol/livekit"
	"github.com/livekit/protocol/logger"

	"github.com/livekit/client-sdk-go/pkg/rtc/types"
)

const (
	lossyDataChannel    = "_lossy"
	reliableDataChannel = "_reliable"

	defaultPingInterval = 10 * time.Second
)

var (
	ErrNotJoined = errors.New("engine has no active session")

	// minimal settings only with stun server
	DefaultConfiguration = webrtc.Configuration{
		ICEServers: []webrtc.ICEServer{
			{
				URLs: []string{"stun:stun.l.google.com:19302"},
			},
		},
	}
)

type EngineParams struct {
	Logger        logger.Logger
	Configuration webrtc.Configuration
	ConnectParams ConnectParams
	// PingInterval of zero uses the default, a negative one disables pings.
	PingInterval time.Duration
	Dialer       Dialer
	// NewPeerConnection is used for the subscriber transport. Defaults to a pion PeerConnection
	// with the default codecs registered.
	NewPeerConnection func(configuration webrtc.Configuration) (PeerConnection, error)
}

// PeerConnection is the part of *webrtc.PeerConnection the engine drives.
type PeerConnection interface {
	OnICECandidate(f func(*webrtc.ICECandidate))
	OnTrack(f func(*webrtc.TrackRemote, *webrtc.RTPReceiver))
	OnDataChannel(f func(*webrtc.DataChannel))
	OnICEConnectionStateChange(f func(webrtc.ICEConnectionState))
	SetRemoteDescription(desc webrtc.SessionDescription) error
	CreateAnswer(options *webrtc.AnswerOptions) (webrtc.SessionDescription, error)
	SetLocalDescription(desc webrtc.SessionDescription) error
	AddICECandidate(candidate webrtc.ICECandidateInit) error
	WriteRTCP(pkts []rtcp.Packet) error
	Close() error
}

// Engine is a types.Engine talking to a server over a websocket signal connection, with a single
// subscriber PeerConnection receiving media and data.
type Engine struct {
	params EngineParams

	lock    sync.Mutex
	handler types.EngineHandler
	session *session
}

func NewEngine(params EngineParams) *Engine {
	if params.Logger == nil {
		params.Logger = logger.GetLogger()
	}
	if params.Dialer == nil {
		params.Dialer = DialWebsocket
	}
	if params.NewPeerConnection == nil {
		params.NewPeerConnection = newPionPeerConnection
	}
	if params.PingInterval == 0 {
		params.PingInterval = defaultPingInterval
	}
	if params.ConnectParams.ProtocolVersion == 0 {
		params.ConnectParams.ProtocolVersion = types.DefaultProtocol
	}
	if len(params.Configuration.ICEServers) == 0 {
		params.Configuration.ICEServers = DefaultConfiguration.ICEServers
	}
	return &Engine{params: params}
}

func (e *Engine) SetHandler(h types.EngineHandler) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.handler = h
}

// Join dials the server and starts a session. The join outcome is reported to the handler.
func (e *Engine) Join(ctx context.Context, url string, token string) error {
	e.lock.Lock()
	handler := e.handler
	previous := e.session
	e.session = nil
	e.lock.Unlock()

	if handler == nil {
		return errors.New("engine has no handler")
	}
	if previous != nil {
		previous.close(false)
	}

	conn, err := e.params.Dialer(ctx, url, token, e.params.ConnectParams)
	if err != nil {
		return err
	}

	pc, err := e.params.NewPeerConnection(e.params.Configuration)
	if err != nil {
		_ = conn.Close()
		return errors.Wrap(err, "could not create peer connection")
	}

	s := newSession(sessionParams{
		Logger:          e.params.Logger,
		Handler:         handler,
		Conn:            NewSignalConnection(e.params.Logger, conn, e.params.PingInterval),
		PeerConnection:  pc,
		ProtocolVersion: e.params.ConnectParams.ProtocolVersion,
	})

	e.lock.Lock()
	e.session = s
	e.lock.Unlock()

	go s.readWorker()
	return nil
}

// Close sends a leave request and tears the session down without notifying the handler.
func (e *Engine) Close() {
	e.lock.Lock()
	s := e.session
	e.session = nil
	e.lock.Unlock()

	if s != nil {
		s.close(true)
	}
}

// RequestKeyFrame asks the publisher of track for a key frame.
func (e *Engine) RequestKeyFrame(track types.MediaTrack) error {
	e.lock.Lock()
	s := e.session
	e.lock.Unlock()

	if s == nil {
		return ErrNotJoined
	}
	return s.pc.WriteRTCP([]rtcp.Packet{
		&rtcp.PictureLossIndication{MediaSSRC: uint32(track.SSRC())},
	})
}

func newPionPeerConnection(configuration webrtc.Configuration) (PeerConnection, error) {
	me := &webrtc.MediaEngine{}
	if err := me.RegisterDefaultCodecs(); err != nil {
		return nil, err
	}
	api := webrtc.NewAPI(webrtc.WithMediaEngine(me))
	return api.NewPeerConnection(configuration)
}

// ---------------------------------------------

type sessionParams struct {
	Logger          logger.Logger
	Handler         types.EngineHandler
	Conn            *SignalConnection
	PeerConnection  PeerConnection
	ProtocolVersion types.ProtocolVersion
}

type session struct {
	params sessionParams
	logger logger.Logger
	conn   *SignalConnection
	pc     PeerConnection
	router *packetRouter

	lock              sync.Mutex
	hasRemote         bool
	pendingCandidates []webrtc.ICECandidateInit

	joined       atomic.Bool
	interrupted  atomic.Bool
	disconnected atomic.Bool
	closed       core.Fuse
}

func newSession(params sessionParams) *session {
	s := &session{
		params: params,
		logger: params.Logger,
		conn:   params.Conn,
		pc:     params.PeerConnection,
		closed: core.NewFuse(),
	}
	s.router = newPacketRouter(params.Logger, s.onDataChannel)

	s.pc.OnICECandidate(func(ic *webrtc.ICECandidate) {
		if ic == nil || s.closed.IsBroken() {
			return
		}
		if err := s.sendICECandidate(ic.ToJSON()); err != nil {
			s.logger.Warnw("could not send ice candidate", err)
		}
	})
	s.pc.OnTrack(func(track *webrtc.TrackRemote, _ *webrtc.RTPReceiver) {
		s.onMediaTrack(track)
	})
	s.pc.OnDataChannel(func(dc *webrtc.DataChannel) {
		s.onRawDataChannel(dc)
	})
	s.pc.OnICEConnectionStateChange(s.onICEConnectionStateChange)
	return s
}

func (s *session) readWorker() {
	for {
		res, err := s.conn.ReadResponse()
		if err != nil {
			if s.closed.IsBroken() {
				return
			}
			if IsClosedError(err) {
				s.logger.Infow("signal connection closed")
			} else {
				s.logger.Warnw("error while reading", err)
			}
			s.fail(err)
			return
		}

		if err := s.handleResponse(res); err != nil {
			s.logger.Warnw("could not handle signal response", err)
		}
		if s.closed.IsBroken() {
			return
		}
	}
}

func (s *session) handleResponse(res *livekit.SignalResponse) error {
	h := s.params.Handler
	switch msg := res.Message.(type) {
	case *livekit.SignalResponse_Join:
		s.joined.Store(true)
		s.logger.Infow("join accepted", "participant", msg.Join.GetParticipant().GetIdentity())
		h.OnJoined(msg.Join)

	case *livekit.SignalResponse_Offer:
		return s.handleOffer(FromProtoSessionDescription(msg.Offer))

	case *livekit.SignalResponse_Trickle:
		if msg.Trickle.Target != livekit.SignalTarget_SUBSCRIBER {
			return nil
		}
		candidateInit, err := FromProtoTrickle(msg.Trickle)
		if err != nil {
			return errors.Wrap(err, "invalid trickle")
		}
		return s.addICECandidate(candidateInit)

	case *livekit.SignalResponse_Update:
		h.OnParticipantUpdate(msg.Update.Participants)

	case *livekit.SignalResponse_SpeakersChanged:
		h.OnSpeakersChanged(msg.SpeakersChanged.Speakers)

	case *livekit.SignalResponse_RoomUpdate:
		if msg.RoomUpdate.Room != nil {
			h.OnRoomUpdate(msg.RoomUpdate.Room)
		}

	case *livekit.SignalResponse_SubscriptionResponse:
		h.OnSubscriptionFailed(msg.SubscriptionResponse.TrackSid, msg.SubscriptionResponse.Err.String())

	case *livekit.SignalResponse_Leave:
		s.logger.Infow("server requested leave",
			"reason", msg.Leave.Reason,
			"canReconnect", msg.Leave.CanReconnect,
		)
		s.disconnect(msg.Leave.Reason.String())

	default:
		s.logger.Debugw("ignoring signal response", "message", res.Message)
	}
	return nil
}

// handles a server initiated offer on the subscriber PC
func (s *session) handleOffer(desc webrtc.SessionDescription) error {
	if err := s.pc.SetRemoteDescription(desc); err != nil {
		return errors.Wrap(err, "could not set remote description")
	}
	s.flushPendingCandidates()

	answer, err := s.pc.CreateAnswer(nil)
	if err != nil {
		return errors.Wrap(err, "could not create answer")
	}
	if err := s.pc.SetLocalDescription(answer); err != nil {
		return errors.Wrap(err, "could not set local description")
	}

	s.logger.Debugw("sending subscriber answer")
	return s.conn.WriteRequest(&livekit.SignalRequest{
		Message: &livekit.SignalRequest_Answer{
			Answer: ToProtoSessionDescription(answer),
		},
	})
}

// candidates received before the first offer are held until the remote description is set
func (s *session) addICECandidate(candidate webrtc.ICECandidateInit) error {
	s.lock.Lock()
	if !s.hasRemote {
		s.pendingCandidates = append(s.pendingCandidates, candidate)
		s.lock.Unlock()
		return nil
	}
	s.lock.Unlock()

	return s.pc.AddICECandidate(candidate)
}

func (s *session) flushPendingCandidates() {
	s.lock.Lock()
	s.hasRemote = true
	pending := s.pendingCandidates
	s.pendingCandidates = nil
	s.lock.Unlock()

	for _, c := range pending {
		if err := s.pc.AddICECandidate(c); err != nil {
			s.logger.Warnw("could not add ice candidate", err)
		}
	}
}

func (s *session) sendICECandidate(candidate webrtc.ICECandidateInit) error {
	trickle, err := ToProtoTrickle(candidate, livekit.SignalTarget_SUBSCRIBER)
	if err != nil {
		return err
	}
	return s.conn.WriteRequest(&livekit.SignalRequest{
		Message: &livekit.SignalRequest_Trickle{
			Trickle: trickle,
		},
	})
}

func (s *session) onMediaTrack(track types.MediaTrack) {
	if s.closed.IsBroken() {
		return
	}
	s.logger.Debugw("received media track", "trackID", track.ID(), "streamID", track.StreamID(), "kind", track.Kind())
	s.params.Handler.OnMediaTrack(track, []string{track.StreamID()})
}

func (s *session) onRawDataChannel(dc *webrtc.DataChannel) {
	switch dc.Label() {
	case reliableDataChannel, lossyDataChannel:
		if !s.params.ProtocolVersion.HandlesDataPackets() {
			s.logger.Debugw("ignoring packet data channel", "label", dc.Label())
			return
		}
		s.router.attach(dc)
	default:
		s.onDataChannel(dc)
	}
}

func (s *session) onDataChannel(dc types.DataChannel) {
	if s.closed.IsBroken() {
		return
	}
	s.params.Handler.OnDataChannel(dc)
}

func (s *session) onICEConnectionStateChange(state webrtc.ICEConnectionState) {
	if s.closed.IsBroken() {
		return
	}
	s.logger.Debugw("ice connection state changed", "state", state)

	switch state {
	case webrtc.ICEConnectionStateDisconnected:
		if s.joined.Load() && !s.interrupted.Swap(true) {
			s.params.Handler.OnResuming()
		}
	case webrtc.ICEConnectionStateConnected:
		if s.interrupted.Swap(false) {
			s.params.Handler.OnResumed()
		}
	case webrtc.ICEConnectionStateFailed:
		s.fail(errors.New("ice connection failed"))
	}
}

// fail reports a transport failure. Before the join response it is a connect failure.
func (s *session) fail(err error) {
	if s.joined.Load() {
		s.disconnect(err.Error())
		return
	}
	if s.disconnected.Swap(true) {
		return
	}
	s.close(false)
	s.params.Handler.OnConnectFailed(err)
}

func (s *session) disconnect(reason string) {
	if s.disconnected.Swap(true) {
		return
	}
	s.close(false)
	s.params.Handler.OnDisconnected(reason)
}

func (s *session) close(sendLeave bool) {
	if s.closed.IsBroken() {
		return
	}
	s.closed.Break()

	if sendLeave {
		_ = s.conn.WriteRequest(&livekit.SignalRequest{
			Message: &livekit.SignalRequest_Leave{
				Leave: &livekit.LeaveRequest{
					Reason: livekit.DisconnectReason_CLIENT_INITIATED,
				},
			},
		})
	}
	_ = s.conn.Close()
	s.router.close()
	if err := s.pc.Close(); err != nil {
		s.logger.Debugw("could not close peer connection", "error", err)
	}
}

var _ types.Engine = (*Engine)(nil)
