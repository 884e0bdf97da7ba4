package types

import (
	"context"
	"time"

	"github.com/pion/webrtc/v3"

	"github.com/livekit/protocol/livekit"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . WebsocketClient
type WebsocketClient interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	Close() error
}

// MediaTrack is an inbound media track delivered by the engine. *webrtc.TrackRemote satisfies it.
//
//counterfeiter:generate . MediaTrack
type MediaTrack interface {
	ID() string
	StreamID() string
	Kind() webrtc.RTPCodecType
	SSRC() webrtc.SSRC
}

// DataChannel is an inbound data channel delivered by the engine. *webrtc.DataChannel satisfies it.
//
//counterfeiter:generate . DataChannel
type DataChannel interface {
	Label() string
	OnMessage(f func(msg webrtc.DataChannelMessage))
	Send(data []byte) error
	Close() error
}

// Engine performs the network handshake and media negotiation.
// Join starts the handshake; its outcome is reported through the EngineHandler.
//
//counterfeiter:generate . Engine
type Engine interface {
	SetHandler(h EngineHandler)
	Join(ctx context.Context, url string, token string) error
	Close()
}

// EngineHandler receives engine notifications. Each notification is delivered at most once and
// batches keep the order they were produced in.
//
//counterfeiter:generate . EngineHandler
type EngineHandler interface {
	OnJoined(join *livekit.JoinResponse)
	OnConnectFailed(err error)
	OnDisconnected(reason string)
	OnResuming()
	OnResumed()
	OnRoomUpdate(room *livekit.Room)
	OnParticipantUpdate(infos []*livekit.ParticipantInfo)
	OnSpeakersChanged(speakers []*livekit.SpeakerInfo)
	OnMediaTrack(track MediaTrack, streamIDs []string)
	OnDataChannel(dc DataChannel)
	OnSubscriptionFailed(trackSid string, reason string)
}
