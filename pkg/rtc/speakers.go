package rtc

import (
	"sort"
	"sync"

	"github.com/livekit/protocol/livekit"
)

// SpeakerAggregator turns speaker snapshots into audio levels and an ordered active speaker list.
type SpeakerAggregator struct {
	lock           sync.RWMutex
	activeSpeakers []Participant
}

func NewSpeakerAggregator() *SpeakerAggregator {
	return &SpeakerAggregator{}
}

// Apply sets the audio level of every participant from the snapshot, resetting absent ones to 0.
// The resulting speakers are ordered loudest first, ties broken by sid. Snapshot entries for
// unknown sids are ignored. Silence never removes a participant.
func (a *SpeakerAggregator) Apply(participants []Participant, snapshot []*livekit.SpeakerInfo) []Participant {
	levels := make(map[string]float32, len(snapshot))
	for _, si := range snapshot {
		levels[si.Sid] = si.Level
	}

	var speakers []Participant
	for _, p := range participants {
		if p == nil {
			continue
		}
		level := levels[p.SID()]
		p.setAudioLevel(level)
		if level > 0 {
			speakers = append(speakers, p)
		}
	}

	sort.SliceStable(speakers, func(i, j int) bool {
		li, lj := speakers[i].AudioLevel(), speakers[j].AudioLevel()
		if li != lj {
			return li > lj
		}
		return speakers[i].SID() < speakers[j].SID()
	})

	a.lock.Lock()
	a.activeSpeakers = speakers
	a.lock.Unlock()

	return a.ActiveSpeakers()
}

func (a *SpeakerAggregator) ActiveSpeakers() []Participant {
	a.lock.RLock()
	defer a.lock.RUnlock()

	speakers := make([]Participant, len(a.activeSpeakers))
	copy(speakers, a.activeSpeakers)
	return speakers
}

// Remove drops a participant from the active speaker list without touching the others.
func (a *SpeakerAggregator) Remove(sid string) bool {
	a.lock.Lock()
	defer a.lock.Unlock()

	for i, p := range a.activeSpeakers {
		if p.SID() == sid {
			a.activeSpeakers = append(a.activeSpeakers[:i:i], a.activeSpeakers[i+1:]...)
			return true
		}
	}
	return false
}

func (a *SpeakerAggregator) Reset() {
	a.lock.Lock()
	a.activeSpeakers = nil
	a.lock.Unlock()
}
