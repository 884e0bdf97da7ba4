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
	"github.com/elliotchance/orderedmap/v2"

	"github.com/livekit/protocol/livekit"

	"github.com/livekit/client-sdk-go/pkg/rtc/types"
)

type RemoteParticipant struct {
	baseParticipant

	dataTracks *orderedmap.OrderedMap[DataTrackKey, *DataTrack]
}

// newRemoteParticipant creates a participant keyed by sid. A nil info creates a stub that is
// enriched by the first full info seen for it.
func newRemoteParticipant(sid string, info *livekit.ParticipantInfo) *RemoteParticipant {
	p := &RemoteParticipant{
		dataTracks: orderedmap.NewOrderedMap[DataTrackKey, *DataTrack](),
	}
	p.init(sid)
	if info != nil {
		p.mergeInfo(info)
	}
	return p
}

func (p *RemoteParticipant) IsLocal() bool {
	return false
}

func (p *RemoteParticipant) updateInfo(info *livekit.ParticipantInfo) participantChanges {
	return p.mergeInfo(info)
}

func (p *RemoteParticipant) DataTracks() []*DataTrack {
	p.lock.RLock()
	defer p.lock.RUnlock()

	dataTracks := make([]*DataTrack, 0, p.dataTracks.Len())
	for el := p.dataTracks.Front(); el != nil; el = el.Next() {
		dataTracks = append(dataTracks, el.Value)
	}
	return dataTracks
}

func (p *RemoteParticipant) GetDataTrack(trackSid string, name string) *DataTrack {
	p.lock.RLock()
	defer p.lock.RUnlock()

	dt, _ := p.dataTracks.Get(DataTrackKey{ParticipantSID: p.sid, TrackSID: trackSid, Name: name})
	return dt
}

// addSubscribedMediaTrack binds track to the publication for trackSid, creating the
// publication when the track arrives before it was announced.
func (p *RemoteParticipant) addSubscribedMediaTrack(track types.MediaTrack, trackSid string) (*TrackPublication, bool) {
	pub, created := p.getOrCreatePublication(trackSid, trackKindFromCodec(track.Kind()))
	pub.setTrack(track)
	return pub, created
}

// addDataTrack attaches dt, returning the data track it replaced, if any.
func (p *RemoteParticipant) addDataTrack(dt *DataTrack) *DataTrack {
	p.lock.Lock()
	defer p.lock.Unlock()

	prev, _ := p.dataTracks.Get(dt.Key())
	p.dataTracks.Set(dt.Key(), dt)
	return prev
}

func (p *RemoteParticipant) removeAllDataTracks() []*DataTrack {
	p.lock.Lock()
	defer p.lock.Unlock()

	dataTracks := make([]*DataTrack, 0, p.dataTracks.Len())
	for el := p.dataTracks.Front(); el != nil; el = el.Next() {
		dataTracks = append(dataTracks, el.Value)
	}
	p.dataTracks = orderedmap.NewOrderedMap[DataTrackKey, *DataTrack]()
	return dataTracks
}
