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

package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

type EventStatus string

const (
	EventStatusApplied  EventStatus = "applied"
	EventStatusDropped  EventStatus = "dropped"
	EventStatusIgnored  EventStatus = "ignored"
	EventStatusDeferred EventStatus = "deferred"
)

var (
	eventsApplied   atomic.Uint64
	eventsDropped   atomic.Uint64
	connectAttempts atomic.Uint32
	connectSuccess  atomic.Uint32
	connectFailure  atomic.Uint32
)

func newEventCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: livekitNamespace,
		Subsystem: "client",
		Name:      "events",
		Help:      "Engine events handled by the room, by type and outcome.",
	}, []string{"type", "status"})
}

func newConnectCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: livekitNamespace,
		Subsystem: "client",
		Name:      "connect_counter",
	}, []string{"state"})
}

func newConnectTime() prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: livekitNamespace,
		Subsystem: "client",
		Name:      "connect_time_ms",
		Buckets:   prometheus.ExponentialBucketsRange(50, 30000, 15),
	})
}

func newParticipantGauge() prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: livekitNamespace,
		Subsystem: "client",
		Name:      "remote_participants",
	})
}

func newActiveSpeakerGauge() prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: livekitNamespace,
		Subsystem: "client",
		Name:      "active_speakers",
	})
}

func RecordEvent(eventType string, status EventStatus) {
	switch status {
	case EventStatusApplied:
		eventsApplied.Inc()
	case EventStatusDropped:
		eventsDropped.Inc()
	}
	promEventCounter.WithLabelValues(eventType, string(status)).Inc()
}

func RecordConnectAttempt() {
	connectAttempts.Inc()
	promConnectCounter.WithLabelValues("attempt").Inc()
}

func RecordConnectSuccess(d time.Duration) {
	connectSuccess.Inc()
	promConnectCounter.WithLabelValues("success").Inc()
	promConnectTime.Observe(float64(d.Milliseconds()))
}

func RecordConnectFailure() {
	connectFailure.Inc()
	promConnectCounter.WithLabelValues("failure").Inc()
}

func SetParticipants(count int) {
	promParticipants.Set(float64(count))
}

func SetActiveSpeakers(count int) {
	promActiveSpeakers.Set(float64(count))
}

type Stats struct {
	EventsApplied   uint64
	EventsDropped   uint64
	ConnectAttempts uint32
	ConnectSuccess  uint32
	ConnectFailure  uint32
}

// GetStats returns process-wide totals, independent of registration.
func GetStats() Stats {
	return Stats{
		EventsApplied:   eventsApplied.Load(),
		EventsDropped:   eventsDropped.Load(),
		ConnectAttempts: connectAttempts.Load(),
		ConnectSuccess:  connectSuccess.Load(),
		ConnectFailure:  connectFailure.Load(),
	}
}
