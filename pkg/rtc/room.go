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

package rtc

import (
	"context"
	"sync"

	"github.com/hashicorp/go-version"
	"github.com/pion/webrtc/v3"

	"github.com/livekit/protocol/livekit"
	"github.com/livekit/protocol/logger"

	"github.com/livekit/client-sdk-go/pkg/rtc/types"
	"github.com/livekit/client-sdk-go/pkg/telemetry/prometheus"
	"github.com/livekit/client-sdk-go/pkg/utils"
)

type ConnectionState int

const (
	ConnectionStateDisconnected ConnectionState = iota
	ConnectionStateConnecting
	ConnectionStateConnected
	ConnectionStateReconnecting
)

func (s ConnectionState) String() string {
	switch s {
	case ConnectionStateDisconnected:
		return "DISCONNECTED"
	case ConnectionStateConnecting:
		return "CONNECTING"
	case ConnectionStateConnected:
		return "CONNECTED"
	case ConnectionStateReconnecting:
		return "RECONNECTING"
	default:
		return "UNKNOWN"
	}
}

const (
	eventJoined              = "joined"
	eventConnectFailed       = "connect_failed"
	eventDisconnected        = "disconnected"
	eventDisconnect          = "disconnect"
	eventConnectAborted      = "connect_aborted"
	eventResuming            = "resuming"
	eventResumed             = "resumed"
	eventRoomUpdate          = "room_update"
	eventParticipantUpdate   = "participant_update"
	eventSpeakersChanged     = "speakers_changed"
	eventMediaTrack          = "media_track"
	eventDataChannel         = "data_channel"
	eventDataReceived        = "data_received"
	eventSubscriptionFailure = "subscription_failed"
)

type RoomParams struct {
	Engine   types.Engine
	Callback *RoomCallback
	Logger   logger.Logger
}

// Room is the client side view of one session. Engine events are applied one at a time on the
// room's queue goroutine, and observers are notified from that goroutine once each event is applied.
type Room struct {
	params RoomParams

	loggerLock sync.RWMutex
	logger     logger.Logger

	registry *ParticipantRegistry
	speakers *SpeakerAggregator
	fanout   *fanout
	queue    *utils.OpsQueue

	lock             sync.RWMutex
	state            ConnectionState
	epoch            uint32
	sid              string
	name             string
	metadata         string
	serverVersion    *version.Version
	localParticipant *LocalParticipant
	matcher          *TrackMatcher
	attempt          *utils.OneShot

	// participant and speaker updates received ahead of the join response, queue goroutine only
	deferredUpdates  [][]*livekit.ParticipantInfo
	deferredSpeakers []*livekit.SpeakerInfo
	speakersDeferred bool
}

var _ types.EngineHandler = (*Room)(nil)

func NewRoom(params RoomParams) *Room {
	callback := NewRoomCallback()
	callback.Merge(params.Callback)
	if params.Logger == nil {
		params.Logger = logger.GetLogger()
	}

	r := &Room{
		params:   params,
		logger:   params.Logger,
		registry: NewParticipantRegistry(),
		speakers: NewSpeakerAggregator(),
		fanout:   newFanout(callback),
		queue:    utils.NewOpsQueue(params.Logger, "room"),
	}
	r.queue.Start()
	params.Engine.SetHandler(r)
	return r
}

func (r *Room) SetLogger(l logger.Logger) {
	r.loggerLock.Lock()
	r.logger = l
	r.loggerLock.Unlock()

	r.queue.SetLogger(l)
}

func (r *Room) getLogger() logger.Logger {
	r.loggerLock.RLock()
	defer r.loggerLock.RUnlock()
	return r.logger
}

func (r *Room) SID() string {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.sid
}

func (r *Room) Name() string {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.name
}

func (r *Room) Metadata() string {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.metadata
}

func (r *Room) ConnectionState() ConnectionState {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.state
}

// ServerVersion is nil until connected, or when the server did not report a parsable version.
func (r *Room) ServerVersion() *version.Version {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.serverVersion
}

func (r *Room) LocalParticipant() *LocalParticipant {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.localParticipant
}

func (r *Room) GetParticipant(sid string) *RemoteParticipant {
	return r.registry.Get(sid)
}

func (r *Room) GetParticipants() []*RemoteParticipant {
	return r.registry.Snapshot()
}

func (r *Room) ActiveSpeakers() []Participant {
	return r.speakers.ActiveSpeakers()
}

// Connect joins the room at url and blocks until the join succeeds or fails. Cancelling ctx
// aborts the attempt. Only one attempt may be in flight, and a connected room must be
// disconnected before connecting again.
func (r *Room) Connect(ctx context.Context, url string, token string) error {
	r.lock.Lock()
	if r.state != ConnectionStateDisconnected {
		state := r.state
		r.lock.Unlock()
		r.getLogger().Debugw("connect called in invalid state", "state", state)
		return ErrAlreadyConnected
	}
	attempt := utils.NewOneShot()
	r.epoch++
	r.attempt = attempt
	r.matcher = NewTrackMatcher(r.getLogger(), r.registry)
	r.state = ConnectionStateConnecting
	r.lock.Unlock()

	prometheus.RecordConnectAttempt()
	stopwatch := utils.NewStopwatch()
	r.getLogger().Infow("connecting to room", "url", url)

	if err := r.params.Engine.Join(ctx, url, token); err != nil {
		r.abortConnect(attempt, newConnectionError("could not join", err))
	}
	stopwatch.Mark("signal")

	resolved, err := attempt.Wait(ctx)
	if !resolved {
		r.abortConnect(attempt, newConnectionError("connect cancelled", err))
		// either the abort or a concurrent outcome has resolved the attempt by now
		_, err = attempt.Wait(context.Background())
	}

	stopwatch.Mark("resolved")

	if err != nil {
		prometheus.RecordConnectFailure()
		r.getLogger().Infow("failed to connect to room", "url", url, "error", err, "splits", stopwatch.Splits())
		return err
	}
	prometheus.RecordConnectSuccess(stopwatch.Elapsed())
	r.getLogger().Debugw("connect timing", "splits", stopwatch.Splits())
	return nil
}

// abortConnect fails a pending attempt from outside the queue and schedules the cleanup on it.
func (r *Room) abortConnect(attempt *utils.OneShot, err error) {
	r.lock.Lock()
	if !attempt.Resolve(err) {
		r.lock.Unlock()
		return
	}
	r.state = ConnectionStateDisconnected
	r.lock.Unlock()

	r.params.Engine.Close()
	r.enqueueCleanup(eventConnectAborted, nil)
}

// Disconnect closes the engine and resets the room. It resolves a pending Connect with an error
// and is a no-op on a disconnected room.
func (r *Room) Disconnect() {
	r.lock.Lock()
	prevState := r.state
	r.state = ConnectionStateDisconnected
	if r.attempt != nil {
		r.attempt.Resolve(newConnectionError("disconnect requested", ErrClientDisconnected))
	}
	r.lock.Unlock()

	r.params.Engine.Close()
	if prevState == ConnectionStateDisconnected {
		return
	}

	r.getLogger().Infow("disconnecting from room", "state", prevState)
	r.enqueueCleanup(eventDisconnect, func(cb *RoomCallback) { cb.OnDisconnected(nil) })
}

// Close disconnects and releases the room's event goroutine once pending notifications are
// delivered. The room cannot be connected again afterwards.
func (r *Room) Close() {
	r.Disconnect()
	r.queue.Enqueue(r.queue.Stop)
}

// enqueue schedules an engine event for the session current at enqueue time. Events that outlive
// their session are dropped.
func (r *Room) enqueue(eventType string, op func() prometheus.EventStatus) {
	r.lock.RLock()
	epoch := r.epoch
	r.lock.RUnlock()

	r.queue.Enqueue(func() {
		if r.currentEpoch() != epoch {
			prometheus.RecordEvent(eventType, prometheus.EventStatusIgnored)
			return
		}
		status := op()
		prometheus.RecordEvent(eventType, status)
		r.fanout.flush()
	})
}

// enqueueCleanup schedules a teardown of the room state after every event queued so far.
func (r *Room) enqueueCleanup(eventType string, notify func(cb *RoomCallback)) {
	r.queue.Enqueue(func() {
		r.teardown()
		if notify != nil {
			r.fanout.emit(notify)
		}
		prometheus.RecordEvent(eventType, prometheus.EventStatusApplied)
		r.fanout.flush()
	})
}

func (r *Room) currentEpoch() uint32 {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.epoch
}

// isActive reports whether engine events should still be applied.
func (r *Room) isActive() bool {
	return r.ConnectionState() != ConnectionStateDisconnected
}

func (r *Room) getMatcher() *TrackMatcher {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.matcher
}

// teardown drops every participant and data track. No participant notifications are produced.
func (r *Room) teardown() {
	for _, rp := range r.registry.Clear() {
		for _, dt := range rp.removeAllDataTracks() {
			dt.Close()
		}
	}
	r.speakers.Reset()
	r.deferredUpdates = nil
	r.deferredSpeakers = nil
	r.speakersDeferred = false

	r.lock.Lock()
	r.localParticipant = nil
	r.sid = ""
	r.name = ""
	r.metadata = ""
	r.serverVersion = nil
	r.lock.Unlock()

	prometheus.SetParticipants(0)
	prometheus.SetActiveSpeakers(0)
}

// ------------------------------------------------------
// EngineHandler

func (r *Room) OnJoined(res *livekit.JoinResponse) {
	r.enqueue(eventJoined, func() prometheus.EventStatus {
		return r.applyJoined(res)
	})
}

func (r *Room) OnConnectFailed(err error) {
	r.enqueue(eventConnectFailed, func() prometheus.EventStatus {
		return r.applyConnectFailed(err)
	})
}

func (r *Room) OnDisconnected(reason string) {
	r.enqueue(eventDisconnected, func() prometheus.EventStatus {
		return r.applyDisconnected(reason)
	})
}

func (r *Room) OnResuming() {
	r.enqueue(eventResuming, r.applyResuming)
}

func (r *Room) OnResumed() {
	r.enqueue(eventResumed, r.applyResumed)
}

func (r *Room) OnRoomUpdate(room *livekit.Room) {
	r.enqueue(eventRoomUpdate, func() prometheus.EventStatus {
		return r.applyRoomUpdate(room)
	})
}

func (r *Room) OnParticipantUpdate(infos []*livekit.ParticipantInfo) {
	r.enqueue(eventParticipantUpdate, func() prometheus.EventStatus {
		return r.applyParticipantUpdate(infos)
	})
}

func (r *Room) OnSpeakersChanged(speakers []*livekit.SpeakerInfo) {
	r.enqueue(eventSpeakersChanged, func() prometheus.EventStatus {
		return r.applySpeakersChanged(speakers)
	})
}

func (r *Room) OnMediaTrack(track types.MediaTrack, streamIDs []string) {
	r.enqueue(eventMediaTrack, func() prometheus.EventStatus {
		return r.applyMediaTrack(track, streamIDs)
	})
}

func (r *Room) OnDataChannel(dc types.DataChannel) {
	r.enqueue(eventDataChannel, func() prometheus.EventStatus {
		return r.applyDataChannel(dc)
	})
}

func (r *Room) OnSubscriptionFailed(trackSid string, reason string) {
	r.enqueue(eventSubscriptionFailure, func() prometheus.EventStatus {
		return r.applySubscriptionFailed(trackSid, reason)
	})
}

// ------------------------------------------------------
// event application, runs on the queue goroutine only

func (r *Room) applyJoined(res *livekit.JoinResponse) prometheus.EventStatus {
	r.lock.Lock()
	attempt := r.attempt
	if r.state != ConnectionStateConnecting || attempt == nil || attempt.IsResolved() {
		state := r.state
		r.lock.Unlock()
		r.getLogger().Warnw("ignoring join response", ErrDuplicateJoin, "state", state)
		return prometheus.EventStatusIgnored
	}

	if res.GetParticipant() == nil {
		r.state = ConnectionStateDisconnected
		attempt.Resolve(newConnectionError("invalid join response", ErrProtocolViolation))
		r.lock.Unlock()

		r.params.Engine.Close()
		r.teardown()
		return prometheus.EventStatusApplied
	}

	r.sid = res.Room.GetSid()
	r.name = res.Room.GetName()
	r.metadata = res.Room.GetMetadata()
	if res.ServerVersion != "" {
		sv, err := version.NewVersion(res.ServerVersion)
		if err != nil {
			r.getLogger().Warnw("could not parse server version", err, "serverVersion", res.ServerVersion)
		}
		r.serverVersion = sv
	}

	lp := newLocalParticipant(res.Participant)
	r.localParticipant = lp
	if stub := r.registry.SetLocalSID(lp.SID()); stub != nil {
		// tracks routed to our own sid before the join response
		r.getLogger().Debugw("dropping participant stub for local sid", "pID", lp.SID())
		stub.removeAllPublications()
		for _, dt := range stub.removeAllDataTracks() {
			dt.Close()
		}
	}
	for _, info := range res.OtherParticipants {
		if info.GetSid() == "" || info.State == livekit.ParticipantInfo_DISCONNECTED {
			continue
		}
		rp, created, err := r.registry.GetOrCreate(info.Sid, info)
		if err != nil {
			r.getLogger().Warnw("skipping participant in join response", err, "pID", info.Sid)
			continue
		}
		if !created {
			// stub created by a track that arrived ahead of the join response
			rp.updateInfo(info)
		}
	}

	r.state = ConnectionStateConnected
	attempt.Resolve(nil)
	roomName, roomSid := r.name, r.sid
	r.lock.Unlock()

	r.applyDeferred()
	prometheus.SetParticipants(r.registry.Len())
	r.getLogger().Infow("connected to room",
		"room", roomName,
		"roomID", roomSid,
		"participant", lp.Identity(),
		"pID", lp.SID(),
		"remoteParticipants", r.registry.Len(),
		"serverVersion", res.ServerVersion,
	)
	return prometheus.EventStatusApplied
}

// applyDeferred replays the updates that arrived ahead of the join response, on top of the
// participants it seeded.
func (r *Room) applyDeferred() {
	updates := r.deferredUpdates
	r.deferredUpdates = nil
	for _, infos := range updates {
		for _, info := range infos {
			r.applyParticipantInfo(info)
		}
	}

	if r.speakersDeferred {
		snapshot := r.deferredSpeakers
		r.deferredSpeakers = nil
		r.speakersDeferred = false
		r.applySpeakersChanged(snapshot)
	}
}

// awaitingJoin reports whether the local participant is still unknown.
func (r *Room) awaitingJoin() bool {
	return r.LocalParticipant() == nil
}

func (r *Room) applyConnectFailed(err error) prometheus.EventStatus {
	cerr := newConnectionError("engine could not connect", err)
	switch state, ok := r.failSession(cerr); {
	case !ok:
		return prometheus.EventStatusIgnored
	case state == ConnectionStateConnecting:
		// Connect reports the failure
	default:
		r.fanout.emit(func(cb *RoomCallback) { cb.OnFailedToConnect(cerr) })
	}
	return prometheus.EventStatusApplied
}

func (r *Room) applyDisconnected(reason string) prometheus.EventStatus {
	cerr := newConnectionError(reason, ErrEngineDisconnected)
	switch state, ok := r.failSession(cerr); {
	case !ok:
		return prometheus.EventStatusIgnored
	case state == ConnectionStateConnecting:
	default:
		r.fanout.emit(func(cb *RoomCallback) { cb.OnDisconnected(cerr) })
	}
	return prometheus.EventStatusApplied
}

// failSession moves the room to DISCONNECTED on an engine failure and returns the state it left.
// A pending connect is resolved with cerr.
func (r *Room) failSession(cerr *ConnectionError) (ConnectionState, bool) {
	r.lock.Lock()
	prevState := r.state
	if prevState == ConnectionStateDisconnected {
		r.lock.Unlock()
		return prevState, false
	}
	r.state = ConnectionStateDisconnected
	if prevState == ConnectionStateConnecting && r.attempt != nil {
		r.attempt.Resolve(cerr)
	}
	r.lock.Unlock()

	r.getLogger().Infow("room disconnected by engine", "state", prevState, "reason", cerr.Reason, "error", cerr.Err)
	if prevState == ConnectionStateConnecting {
		r.params.Engine.Close()
	}
	r.teardown()
	return prevState, true
}

func (r *Room) applyResuming() prometheus.EventStatus {
	if !r.transition(ConnectionStateConnected, ConnectionStateReconnecting) {
		return prometheus.EventStatusIgnored
	}
	r.fanout.emit(func(cb *RoomCallback) { cb.OnReconnecting() })
	return prometheus.EventStatusApplied
}

func (r *Room) applyResumed() prometheus.EventStatus {
	if !r.transition(ConnectionStateReconnecting, ConnectionStateConnected) {
		return prometheus.EventStatusIgnored
	}
	r.fanout.emit(func(cb *RoomCallback) { cb.OnReconnected() })
	return prometheus.EventStatusApplied
}

func (r *Room) transition(from ConnectionState, to ConnectionState) bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.state != from {
		return false
	}
	r.state = to
	return true
}

func (r *Room) applyRoomUpdate(room *livekit.Room) prometheus.EventStatus {
	if room == nil || !r.isActive() {
		return prometheus.EventStatusIgnored
	}

	r.lock.Lock()
	changed := r.metadata != room.Metadata
	r.metadata = room.Metadata
	if room.Sid != "" {
		r.sid = room.Sid
	}
	r.lock.Unlock()

	if changed {
		metadata := room.Metadata
		r.fanout.emit(func(cb *RoomCallback) { cb.OnRoomMetadataChanged(metadata) })
	}
	return prometheus.EventStatusApplied
}

func (r *Room) applyParticipantUpdate(infos []*livekit.ParticipantInfo) prometheus.EventStatus {
	if !r.isActive() {
		return prometheus.EventStatusIgnored
	}
	if r.awaitingJoin() {
		r.getLogger().Debugw("deferring participant update until joined", "participants", len(infos))
		r.deferredUpdates = append(r.deferredUpdates, infos)
		return prometheus.EventStatusDeferred
	}

	for _, info := range infos {
		r.applyParticipantInfo(info)
	}
	prometheus.SetParticipants(r.registry.Len())
	return prometheus.EventStatusApplied
}

func (r *Room) applyParticipantInfo(info *livekit.ParticipantInfo) {
	if info.GetSid() == "" {
		r.getLogger().Debugw("dropping participant info without sid", "participant", info.GetIdentity())
		return
	}

	if lp := r.LocalParticipant(); lp != nil && lp.SID() == info.Sid {
		changes := lp.updateInfo(info)
		if changes.metadataChanged {
			r.fanout.emit(func(cb *RoomCallback) { cb.OnMetadataChanged(changes.oldMetadata, lp) })
		}
		return
	}

	if info.State == livekit.ParticipantInfo_DISCONNECTED {
		rp, ok := r.registry.Remove(info.Sid)
		if !ok {
			return
		}
		r.removeParticipant(rp)
		return
	}

	rp := r.registry.Get(info.Sid)
	switch {
	case rp == nil:
		created, _, err := r.registry.GetOrCreate(info.Sid, info)
		if err != nil {
			r.getLogger().Warnw("could not add participant", err, "pID", info.Sid)
			return
		}
		r.emitParticipantConnected(created)

	default:
		// a stub only referenced by its tracks so far is merged like any known participant
		changes := rp.updateInfo(info)
		if changes.stale {
			r.getLogger().Debugw("ignoring stale participant info", "pID", info.Sid, "version", info.Version)
			return
		}
		if changes.metadataChanged {
			r.fanout.emit(func(cb *RoomCallback) { cb.OnMetadataChanged(changes.oldMetadata, rp) })
		}
		for _, pub := range changes.published {
			pub := pub
			r.fanout.emit(func(cb *RoomCallback) { cb.OnTrackPublished(pub, rp) })
		}
		for _, pub := range changes.unpublished {
			r.unpublish(pub, rp)
		}
	}
}

func (r *Room) emitParticipantConnected(rp *RemoteParticipant) {
	r.getLogger().Debugw("participant connected", "participant", rp.Identity(), "pID", rp.SID())
	r.fanout.emit(func(cb *RoomCallback) { cb.OnParticipantConnected(rp) })
	for _, pub := range rp.TrackPublications() {
		pub := pub
		r.fanout.emit(func(cb *RoomCallback) { cb.OnTrackPublished(pub, rp) })
	}
}

func (r *Room) removeParticipant(rp *RemoteParticipant) {
	r.getLogger().Debugw("participant disconnected", "participant", rp.Identity(), "pID", rp.SID())
	for _, pub := range rp.removeAllPublications() {
		r.unpublish(pub, rp)
	}
	for _, dt := range rp.removeAllDataTracks() {
		dt.Close()
	}
	if r.speakers.Remove(rp.SID()) {
		speakers := r.speakers.ActiveSpeakers()
		prometheus.SetActiveSpeakers(len(speakers))
		r.fanout.emit(func(cb *RoomCallback) { cb.OnActiveSpeakersChanged(speakers) })
	}
	r.fanout.emit(func(cb *RoomCallback) { cb.OnParticipantDisconnected(rp) })
}

func (r *Room) unpublish(pub *TrackPublication, rp *RemoteParticipant) {
	if track := pub.unbind(); track != nil {
		r.fanout.emit(func(cb *RoomCallback) { cb.OnTrackUnsubscribed(track, pub, rp) })
	}
	r.fanout.emit(func(cb *RoomCallback) { cb.OnTrackUnpublished(pub, rp) })
}

func (r *Room) applySpeakersChanged(snapshot []*livekit.SpeakerInfo) prometheus.EventStatus {
	if !r.isActive() {
		return prometheus.EventStatusIgnored
	}
	if r.awaitingJoin() {
		// only the latest snapshot matters
		r.deferredSpeakers = snapshot
		r.speakersDeferred = true
		return prometheus.EventStatusDeferred
	}

	remotes := r.registry.Snapshot()
	participants := make([]Participant, 0, len(remotes)+1)
	if lp := r.LocalParticipant(); lp != nil {
		participants = append(participants, lp)
	}
	for _, rp := range remotes {
		participants = append(participants, rp)
	}

	speakers := r.speakers.Apply(participants, snapshot)
	prometheus.SetActiveSpeakers(len(speakers))
	r.fanout.emit(func(cb *RoomCallback) { cb.OnActiveSpeakersChanged(speakers) })
	return prometheus.EventStatusApplied
}

func (r *Room) applyMediaTrack(track types.MediaTrack, streamIDs []string) prometheus.EventStatus {
	if !r.isActive() {
		return prometheus.EventStatusIgnored
	}

	match, err := r.getMatcher().MatchMediaTrack(track, streamIDs)
	if err != nil {
		r.getLogger().Warnw("dropping media track", err, "trackID", track.ID(), "streamIDs", streamIDs)
		return prometheus.EventStatusDropped
	}
	if match.ParticipantCreated {
		prometheus.SetParticipants(r.registry.Len())
	}

	rp, pub := match.Participant, match.Publication
	r.getLogger().Debugw("track subscribed", "pID", rp.SID(), "trackID", pub.SID(), "kind", pub.Kind())
	r.fanout.emit(func(cb *RoomCallback) { cb.OnTrackSubscribed(track, pub, rp) })
	return prometheus.EventStatusApplied
}

func (r *Room) applyDataChannel(dc types.DataChannel) prometheus.EventStatus {
	if !r.isActive() {
		return prometheus.EventStatusIgnored
	}

	match, err := r.getMatcher().MatchDataChannel(dc)
	if err != nil {
		r.getLogger().Warnw("dropping data channel", err, "label", dc.Label())
		return prometheus.EventStatusDropped
	}
	if match.ParticipantCreated {
		prometheus.SetParticipants(r.registry.Len())
	}
	if match.Replaced != nil {
		match.Replaced.Close()
	}

	dt := match.DataTrack
	dc.OnMessage(func(msg webrtc.DataChannelMessage) {
		data := msg.Data
		r.enqueue(eventDataReceived, func() prometheus.EventStatus {
			return r.applyDataReceived(dt, data)
		})
	})
	return prometheus.EventStatusApplied
}

func (r *Room) applyDataReceived(dt *DataTrack, data []byte) prometheus.EventStatus {
	if !r.isActive() || dt.IsClosed() {
		return prometheus.EventStatusIgnored
	}

	rp := r.registry.Get(dt.ParticipantSID())
	if rp == nil || rp.GetDataTrack(dt.TrackSID(), dt.Name()) != dt {
		return prometheus.EventStatusIgnored
	}
	r.fanout.emit(func(cb *RoomCallback) { cb.OnDataReceived(data, dt, rp) })
	return prometheus.EventStatusApplied
}

func (r *Room) applySubscriptionFailed(trackSid string, reason string) prometheus.EventStatus {
	if !r.isActive() {
		return prometheus.EventStatusIgnored
	}

	rp, _ := r.registry.FindByTrack(trackSid)
	r.getLogger().Infow("track subscription failed", "trackID", trackSid, "pID", participantSID(rp), "reason", reason)
	r.fanout.emit(func(cb *RoomCallback) { cb.OnTrackSubscriptionFailed(trackSid, rp) })
	return prometheus.EventStatusApplied
}

func participantSID(rp *RemoteParticipant) string {
	if rp == nil {
		return ""
	}
	return rp.SID()
}
