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

	"github.com/elliotchance/orderedmap/v2"
	"go.uber.org/atomic"
	"google.golang.org/protobuf/proto"

	"github.com/livekit/protocol/livekit"
)

// Participant is either the *LocalParticipant or a *RemoteParticipant.
type Participant interface {
	SID() string
	Identity() string
	Name() string
	Metadata() string
	AudioLevel() float32
	IsSpeaking() bool
	IsLocal() bool
	TrackPublications() []*TrackPublication
	GetTrackPublication(sid string) *TrackPublication
	ToProto() *livekit.ParticipantInfo

	setAudioLevel(level float32)
}

type participantChanges struct {
	stale           bool
	metadataChanged bool
	oldMetadata     string
	published       []*TrackPublication
	unpublished     []*TrackPublication
}

type baseParticipant struct {
	audioLevel atomic.Float32

	lock         sync.RWMutex
	sid          string
	info         *livekit.ParticipantInfo
	publications *orderedmap.OrderedMap[string, *TrackPublication]
}

func (p *baseParticipant) init(sid string) {
	p.sid = sid
	p.publications = orderedmap.NewOrderedMap[string, *TrackPublication]()
}

func (p *baseParticipant) SID() string {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.sid
}

func (p *baseParticipant) Identity() string {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.info.GetIdentity()
}

func (p *baseParticipant) Name() string {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.info.GetName()
}

func (p *baseParticipant) Metadata() string {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.info.GetMetadata()
}

func (p *baseParticipant) AudioLevel() float32 {
	return p.audioLevel.Load()
}

func (p *baseParticipant) IsSpeaking() bool {
	return p.audioLevel.Load() > 0
}

func (p *baseParticipant) setAudioLevel(level float32) {
	p.audioLevel.Store(level)
}

func (p *baseParticipant) TrackPublications() []*TrackPublication {
	p.lock.RLock()
	defer p.lock.RUnlock()

	pubs := make([]*TrackPublication, 0, p.publications.Len())
	for el := p.publications.Front(); el != nil; el = el.Next() {
		pubs = append(pubs, el.Value)
	}
	return pubs
}

func (p *baseParticipant) GetTrackPublication(sid string) *TrackPublication {
	p.lock.RLock()
	defer p.lock.RUnlock()

	pub, _ := p.publications.Get(sid)
	return pub
}

// ToProto returns a copy of the last participant info seen, nil for a stub.
func (p *baseParticipant) ToProto() *livekit.ParticipantInfo {
	p.lock.RLock()
	defer p.lock.RUnlock()

	if p.info == nil {
		return nil
	}
	return proto.Clone(p.info).(*livekit.ParticipantInfo)
}

// mergeInfo applies info on top of the participant and reconciles publications with info.Tracks.
// Infos older than the last one seen are reported as stale and ignored. Publications a stub
// gathered from its tracks are reported as published once info announces them.
func (p *baseParticipant) mergeInfo(info *livekit.ParticipantInfo) participantChanges {
	p.lock.Lock()
	defer p.lock.Unlock()

	var changes participantChanges
	if p.info != nil && info.Version != 0 && info.Version < p.info.Version {
		changes.stale = true
		return changes
	}

	wasStub := p.info == nil
	changes.oldMetadata = p.info.GetMetadata()
	changes.metadataChanged = p.info != nil && p.info.Metadata != info.Metadata
	if info.Sid != "" {
		p.sid = info.Sid
	}
	p.info = proto.Clone(info).(*livekit.ParticipantInfo)

	announced := make(map[string]struct{}, len(info.Tracks))
	for _, ti := range info.Tracks {
		announced[ti.Sid] = struct{}{}
		if pub, ok := p.publications.Get(ti.Sid); ok {
			pub.updateInfo(ti)
			if wasStub {
				changes.published = append(changes.published, pub)
			}
			continue
		}
		pub := newTrackPublicationFromInfo(ti)
		p.publications.Set(ti.Sid, pub)
		changes.published = append(changes.published, pub)
	}

	for el := p.publications.Front(); el != nil; {
		next := el.Next()
		if _, ok := announced[el.Key]; !ok {
			changes.unpublished = append(changes.unpublished, el.Value)
			p.publications.Delete(el.Key)
		}
		el = next
	}
	return changes
}

// getOrCreatePublication returns the publication for sid, creating an unannounced one when missing.
func (p *baseParticipant) getOrCreatePublication(sid string, kind TrackKind) (*TrackPublication, bool) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if pub, ok := p.publications.Get(sid); ok {
		return pub, false
	}
	pub := newTrackPublication(sid, kind)
	p.publications.Set(sid, pub)
	return pub, true
}

func (p *baseParticipant) removeAllPublications() []*TrackPublication {
	p.lock.Lock()
	defer p.lock.Unlock()

	pubs := make([]*TrackPublication, 0, p.publications.Len())
	for el := p.publications.Front(); el != nil; el = el.Next() {
		pubs = append(pubs, el.Value)
	}
	p.publications = orderedmap.NewOrderedMap[string, *TrackPublication]()
	return pubs
}

func (p *baseParticipant) isStub() bool {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.info == nil
}
