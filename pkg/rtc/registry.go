package rtc

import (
	"sync"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/livekit/protocol/livekit"
)

// ParticipantRegistry maps remote participant sids to participants, in the order they were first seen.
// Writes come from the room's event queue only, reads may come from anywhere.
type ParticipantRegistry struct {
	lock         sync.RWMutex
	localSid     string
	participants *orderedmap.OrderedMap[string, *RemoteParticipant]
}

func NewParticipantRegistry() *ParticipantRegistry {
	return &ParticipantRegistry{
		participants: orderedmap.NewOrderedMap[string, *RemoteParticipant](),
	}
}

// SetLocalSID reserves sid for the local participant. It is evicted if it was registered as remote.
func (r *ParticipantRegistry) SetLocalSID(sid string) *RemoteParticipant {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.localSid = sid
	if sid == "" {
		return nil
	}
	p, ok := r.participants.Get(sid)
	if !ok {
		return nil
	}
	r.participants.Delete(sid)
	return p
}

func (r *ParticipantRegistry) Get(sid string) *RemoteParticipant {
	r.lock.RLock()
	defer r.lock.RUnlock()

	p, _ := r.participants.Get(sid)
	return p
}

// GetOrCreate resolves sid, creating the participant from info (or a stub when info is nil) if absent.
func (r *ParticipantRegistry) GetOrCreate(sid string, info *livekit.ParticipantInfo) (*RemoteParticipant, bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if sid == r.localSid && sid != "" {
		return nil, false, ErrLocalParticipantSID
	}
	if p, ok := r.participants.Get(sid); ok {
		return p, false, nil
	}

	p := newRemoteParticipant(sid, info)
	r.participants.Set(sid, p)
	return p, true, nil
}

func (r *ParticipantRegistry) Remove(sid string) (*RemoteParticipant, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()

	p, ok := r.participants.Get(sid)
	if !ok {
		return nil, false
	}
	r.participants.Delete(sid)
	return p, true
}

// FindByTrack returns the participant holding a publication for trackSid.
func (r *ParticipantRegistry) FindByTrack(trackSid string) (*RemoteParticipant, *TrackPublication) {
	for _, p := range r.Snapshot() {
		if pub := p.GetTrackPublication(trackSid); pub != nil {
			return p, pub
		}
	}
	return nil, nil
}

func (r *ParticipantRegistry) Snapshot() []*RemoteParticipant {
	r.lock.RLock()
	defer r.lock.RUnlock()

	participants := make([]*RemoteParticipant, 0, r.participants.Len())
	for el := r.participants.Front(); el != nil; el = el.Next() {
		participants = append(participants, el.Value)
	}
	return participants
}

func (r *ParticipantRegistry) SIDs() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.participants.Keys()
}

func (r *ParticipantRegistry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.participants.Len()
}

// Clear empties the registry and returns what it held.
func (r *ParticipantRegistry) Clear() []*RemoteParticipant {
	r.lock.Lock()
	defer r.lock.Unlock()

	participants := make([]*RemoteParticipant, 0, r.participants.Len())
	for el := r.participants.Front(); el != nil; el = el.Next() {
		participants = append(participants, el.Value)
	}
	r.participants = orderedmap.NewOrderedMap[string, *RemoteParticipant]()
	r.localSid = ""
	return participants
}
