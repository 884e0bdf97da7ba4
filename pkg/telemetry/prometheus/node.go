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
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

const (
	livekitNamespace string = "livekit"
)

var (
	initialized atomic.Bool

	promEventCounter   = newEventCounter()
	promConnectCounter = newConnectCounter()
	promConnectTime    = newConnectTime()
	promParticipants   = newParticipantGauge()
	promActiveSpeakers = newActiveSpeakerGauge()
)

// Init registers the client collectors with registerer, or the default registerer when nil.
// Metrics are recorded before Init too, they are just not exported.
func Init(registerer prometheus.Registerer) error {
	if initialized.Swap(true) {
		return nil
	}
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	for _, c := range []prometheus.Collector{
		promEventCounter,
		promConnectCounter,
		promConnectTime,
		promParticipants,
		promActiveSpeakers,
	} {
		if err := registerer.Register(c); err != nil {
			initialized.Store(false)
			return err
		}
	}
	return nil
}
