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
	"github.com/livekit/client-sdk-go/pkg/rtc/types"
)

// RoomCallback holds the observer notifications of a room. Unset callbacks are no-ops.
// All callbacks run on the room's event goroutine, in the order the events were applied.
type RoomCallback struct {
	OnDisconnected            func(err error)
	OnFailedToConnect         func(err error)
	OnReconnecting            func()
	OnReconnected             func()
	OnRoomMetadataChanged     func(metadata string)
	OnParticipantConnected    func(p *RemoteParticipant)
	OnParticipantDisconnected func(p *RemoteParticipant)
	OnActiveSpeakersChanged   func(speakers []Participant)
	OnMetadataChanged         func(oldMetadata string, p Participant)

	OnTrackPublished          func(pub *TrackPublication, p *RemoteParticipant)
	OnTrackUnpublished        func(pub *TrackPublication, p *RemoteParticipant)
	OnTrackSubscribed         func(track types.MediaTrack, pub *TrackPublication, p *RemoteParticipant)
	OnTrackSubscriptionFailed func(trackSid string, p *RemoteParticipant)
	OnTrackUnsubscribed       func(track types.MediaTrack, pub *TrackPublication, p *RemoteParticipant)
	OnDataReceived            func(data []byte, dt *DataTrack, p *RemoteParticipant)
}

func NewRoomCallback() *RoomCallback {
	return &RoomCallback{
		OnDisconnected:            func(err error) {},
		OnFailedToConnect:         func(err error) {},
		OnReconnecting:            func() {},
		OnReconnected:             func() {},
		OnRoomMetadataChanged:     func(metadata string) {},
		OnParticipantConnected:    func(p *RemoteParticipant) {},
		OnParticipantDisconnected: func(p *RemoteParticipant) {},
		OnActiveSpeakersChanged:   func(speakers []Participant) {},
		OnMetadataChanged:         func(oldMetadata string, p Participant) {},

		OnTrackPublished:          func(pub *TrackPublication, p *RemoteParticipant) {},
		OnTrackUnpublished:        func(pub *TrackPublication, p *RemoteParticipant) {},
		OnTrackSubscribed:         func(track types.MediaTrack, pub *TrackPublication, p *RemoteParticipant) {},
		OnTrackSubscriptionFailed: func(trackSid string, p *RemoteParticipant) {},
		OnTrackUnsubscribed:       func(track types.MediaTrack, pub *TrackPublication, p *RemoteParticipant) {},
		OnDataReceived:            func(data []byte, dt *DataTrack, p *RemoteParticipant) {},
	}
}

// Merge copies the callbacks set in other over cb.
func (cb *RoomCallback) Merge(other *RoomCallback) {
	if other == nil {
		return
	}

	if other.OnDisconnected != nil {
		cb.OnDisconnected = other.OnDisconnected
	}
	if other.OnFailedToConnect != nil {
		cb.OnFailedToConnect = other.OnFailedToConnect
	}
	if other.OnReconnecting != nil {
		cb.OnReconnecting = other.OnReconnecting
	}
	if other.OnReconnected != nil {
		cb.OnReconnected = other.OnReconnected
	}
	if other.OnRoomMetadataChanged != nil {
		cb.OnRoomMetadataChanged = other.OnRoomMetadataChanged
	}
	if other.OnParticipantConnected != nil {
		cb.OnParticipantConnected = other.OnParticipantConnected
	}
	if other.OnParticipantDisconnected != nil {
		cb.OnParticipantDisconnected = other.OnParticipantDisconnected
	}
	if other.OnActiveSpeakersChanged != nil {
		cb.OnActiveSpeakersChanged = other.OnActiveSpeakersChanged
	}
	if other.OnMetadataChanged != nil {
		cb.OnMetadataChanged = other.OnMetadataChanged
	}
	if other.OnTrackPublished != nil {
		cb.OnTrackPublished = other.OnTrackPublished
	}
	if other.OnTrackUnpublished != nil {
		cb.OnTrackUnpublished = other.OnTrackUnpublished
	}
	if other.OnTrackSubscribed != nil {
		cb.OnTrackSubscribed = other.OnTrackSubscribed
	}
	if other.OnTrackSubscriptionFailed != nil {
		cb.OnTrackSubscriptionFailed = other.OnTrackSubscriptionFailed
	}
	if other.OnTrackUnsubscribed != nil {
		cb.OnTrackUnsubscribed = other.OnTrackUnsubscribed
	}
	if other.OnDataReceived != nil {
		cb.OnDataReceived = other.OnDataReceived
	}
}

// fanout buffers the notifications produced while applying one event, so observers only see
// fully applied events. It is only touched from the room's event goroutine.
type fanout struct {
	callback *RoomCallback
	pending  []func(cb *RoomCallback)
}

func newFanout(callback *RoomCallback) *fanout {
	return &fanout{callback: callback}
}

func (f *fanout) emit(notify func(cb *RoomCallback)) {
	f.pending = append(f.pending, notify)
}

func (f *fanout) flush() {
	pending := f.pending
	f.pending = nil
	for _, notify := range pending {
		notify(f.callback)
	}
}
