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
	"sync"

	"github.com/pion/webrtc/v3"

	"github.com/livekit/protocol/livekit"

	"github.com/livekit/client-sdk-go/pkg/rtc/types"
)

type TrackKind string

const (
	TrackKindAudio TrackKind = "audio"
	TrackKindVideo TrackKind = "video"
	TrackKindData  TrackKind = "data"
)

func (k TrackKind) String() string {
	return string(k)
}

func trackKindFromProto(t livekit.TrackType) TrackKind {
	switch t {
	case livekit.TrackType_AUDIO:
		return TrackKindAudio
	case livekit.TrackType_VIDEO:
		return TrackKindVideo
	default:
		return TrackKindData
	}
}

func trackKindFromCodec(t webrtc.RTPCodecType) TrackKind {
	switch t {
	case webrtc.RTPCodecTypeAudio:
		return TrackKindAudio
	case webrtc.RTPCodecTypeVideo:
		return TrackKindVideo
	default:
		return TrackKindData
	}
}

// TrackPublication is a track announced by a participant. It may be published without being
// subscribed, in which case Track returns nil.
type TrackPublication struct {
	lock  sync.RWMutex
	sid   string
	name  string
	kind  TrackKind
	muted bool
	track types.MediaTrack
}

func newTrackPublication(sid string, kind TrackKind) *TrackPublication {
	return &TrackPublication{
		sid:  sid,
		kind: kind,
	}
}

func newTrackPublicationFromInfo(ti *livekit.TrackInfo) *TrackPublication {
	pub := newTrackPublication(ti.Sid, trackKindFromProto(ti.Type))
	pub.updateInfo(ti)
	return pub
}

func (p *TrackPublication) SID() string {
	return p.sid
}

func (p *TrackPublication) Name() string {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.name
}

func (p *TrackPublication) Kind() TrackKind {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.kind
}

func (p *TrackPublication) IsMuted() bool {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.muted
}

func (p *TrackPublication) Track() types.MediaTrack {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.track
}

func (p *TrackPublication) IsSubscribed() bool {
	return p.Track() != nil
}

func (p *TrackPublication) updateInfo(ti *livekit.TrackInfo) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.name = ti.Name
	p.muted = ti.Muted
	p.kind = trackKindFromProto(ti.Type)
}

func (p *TrackPublication) setTrack(track types.MediaTrack) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.track = track
	if track != nil {
		p.kind = trackKindFromCodec(track.Kind())
	}
}

// unbind detaches the subscribed track, returning it if there was one.
func (p *TrackPublication) unbind() types.MediaTrack {
	p.lock.Lock()
	defer p.lock.Unlock()
	track := p.track
	p.track = nil
	return track
}
