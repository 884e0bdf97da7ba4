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

package main

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/dustin/go-humanize"
	"github.com/frostbyte73/core"
	"github.com/olekukonko/tablewriter"
	"github.com/thoas/go-funk"

	"github.com/livekit/client-sdk-go/pkg/config"
	"github.com/livekit/client-sdk-go/pkg/rtc"
	"github.com/livekit/client-sdk-go/pkg/rtc/types"
	"github.com/livekit/client-sdk-go/pkg/telemetry/prometheus"
)

// eventPrinter writes room events to out as they are delivered.
type eventPrinter struct {
	out             io.Writer
	summaryInterval time.Duration
	debounced       func(f func())

	lock     sync.Mutex
	room     *rtc.Room
	joinedAt map[string]time.Time
	speakers []rtc.Participant

	disconnected core.Fuse
	stopped      core.Fuse
}

func newEventPrinter(conf *config.Config, out io.Writer) *eventPrinter {
	p := &eventPrinter{
		out:             out,
		summaryInterval: conf.Output.SummaryInterval,
		joinedAt:        make(map[string]time.Time),
		disconnected:    core.NewFuse(),
		stopped:         core.NewFuse(),
	}
	if conf.Output.SpeakerDebounce > 0 {
		p.debounced = debounce.New(conf.Output.SpeakerDebounce)
	} else {
		p.debounced = func(f func()) { f() }
	}
	return p
}

func (p *eventPrinter) setRoom(room *rtc.Room) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.room = room
}

func (p *eventPrinter) printf(format string, args ...interface{}) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.printfLocked(format, args...)
}

func (p *eventPrinter) printfLocked(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.out, "%s  %s\n", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
}

func (p *eventPrinter) Callback() *rtc.RoomCallback {
	return &rtc.RoomCallback{
		OnDisconnected: func(err error) {
			if err != nil {
				p.printf("disconnected: %v", err)
			} else {
				p.printf("disconnected")
			}
			p.disconnected.Break()
		},
		OnFailedToConnect: func(err error) {
			p.printf("connection failed: %v", err)
			p.disconnected.Break()
		},
		OnReconnecting: func() {
			p.printf("connection interrupted, reconnecting")
		},
		OnReconnected: func() {
			p.printf("reconnected")
		},
		OnRoomMetadataChanged: func(metadata string) {
			p.printf("room metadata: %q", metadata)
		},
		OnParticipantConnected: func(rp *rtc.RemoteParticipant) {
			p.lock.Lock()
			defer p.lock.Unlock()
			p.joinedAt[rp.SID()] = time.Now()
			p.printfLocked("participant joined: %s (%s)", rp.Identity(), rp.SID())
		},
		OnParticipantDisconnected: func(rp *rtc.RemoteParticipant) {
			p.lock.Lock()
			defer p.lock.Unlock()
			if joined, ok := p.joinedAt[rp.SID()]; ok {
				p.printfLocked("participant left: %s (%s), joined %s", rp.Identity(), rp.SID(), humanize.Time(joined))
				delete(p.joinedAt, rp.SID())
			} else {
				p.printfLocked("participant left: %s (%s)", rp.Identity(), rp.SID())
			}
		},
		OnActiveSpeakersChanged: func(speakers []rtc.Participant) {
			p.lock.Lock()
			p.speakers = speakers
			p.lock.Unlock()
			p.debounced(p.printSpeakers)
		},
		OnMetadataChanged: func(oldMetadata string, participant rtc.Participant) {
			p.printf("metadata of %s: %q -> %q", participant.Identity(), oldMetadata, participant.Metadata())
		},
		OnTrackPublished: func(pub *rtc.TrackPublication, rp *rtc.RemoteParticipant) {
			p.printf("track published: %s %s %q by %s", pub.Kind(), pub.SID(), pub.Name(), rp.Identity())
		},
		OnTrackUnpublished: func(pub *rtc.TrackPublication, rp *rtc.RemoteParticipant) {
			p.printf("track unpublished: %s %s by %s", pub.Kind(), pub.SID(), rp.Identity())
		},
		OnTrackSubscribed: func(track types.MediaTrack, pub *rtc.TrackPublication, rp *rtc.RemoteParticipant) {
			p.printf("track subscribed: %s %s from %s (ssrc %d)", track.Kind(), pub.SID(), rp.Identity(), track.SSRC())
		},
		OnTrackSubscriptionFailed: func(trackSid string, rp *rtc.RemoteParticipant) {
			if rp != nil {
				p.printf("subscription failed: %s from %s", trackSid, rp.Identity())
			} else {
				p.printf("subscription failed: %s", trackSid)
			}
		},
		OnTrackUnsubscribed: func(track types.MediaTrack, pub *rtc.TrackPublication, rp *rtc.RemoteParticipant) {
			p.printf("track unsubscribed: %s from %s", pub.SID(), rp.Identity())
		},
		OnDataReceived: func(data []byte, dt *rtc.DataTrack, rp *rtc.RemoteParticipant) {
			p.printf("data from %s on %s: %s", rp.Identity(), dt.Name(), humanize.Bytes(uint64(len(data))))
		},
	}
}

func (p *eventPrinter) printSpeakers() {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.speakers) == 0 {
		p.printfLocked("no active speakers")
		return
	}
	identities := funk.Map(p.speakers, func(s rtc.Participant) string {
		return fmt.Sprintf("%s (%.2f)", s.Identity(), s.AudioLevel())
	}).([]string)
	p.printfLocked("active speakers: %s", strings.Join(identities, ", "))
}

// printSummary renders the participants of the room as a table.
func (p *eventPrinter) printSummary() {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.room == nil || p.room.ConnectionState() != rtc.ConnectionStateConnected {
		return
	}

	_, _ = fmt.Fprintf(p.out, "room %s (%s), %s\n", p.room.Name(), p.room.SID(), p.room.ConnectionState())

	table := tablewriter.NewWriter(p.out)
	table.SetRowLine(true)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{
		"Identity", "SID",
		"Tracks\nSubscribed", "Speaking\nLevel",
		"Joined",
	})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	participants := make([]rtc.Participant, 0)
	if lp := p.room.LocalParticipant(); lp != nil {
		participants = append(participants, lp)
	}
	for _, rp := range p.room.GetParticipants() {
		participants = append(participants, rp)
	}

	for _, participant := range participants {
		pubs := participant.TrackPublications()
		subscribed := funk.Filter(pubs, func(pub *rtc.TrackPublication) bool {
			return pub.IsSubscribed()
		}).([]*rtc.TrackPublication)

		identity := participant.Identity()
		joined := "-"
		if participant.IsLocal() {
			identity += " (local)"
		} else if at, ok := p.joinedAt[participant.SID()]; ok {
			joined = humanize.Time(at)
		}

		table.Append([]string{
			identity, participant.SID(),
			fmt.Sprintf("%d\n%d", len(pubs), len(subscribed)),
			fmt.Sprintf("%t\n%.2f", participant.IsSpeaking(), participant.AudioLevel()),
			joined,
		})
	}
	table.Render()

	stats := prometheus.GetStats()
	_, _ = fmt.Fprintf(p.out, "events applied %s, dropped %s\n",
		humanize.Comma(int64(stats.EventsApplied)), humanize.Comma(int64(stats.EventsDropped)))
}

func (p *eventPrinter) summaryWorker() {
	if p.summaryInterval <= 0 {
		return
	}
	ticker := time.NewTicker(p.summaryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopped.Watch():
			return
		case <-ticker.C:
			p.printSummary()
		}
	}
}

func (p *eventPrinter) stop() {
	p.stopped.Break()
}
