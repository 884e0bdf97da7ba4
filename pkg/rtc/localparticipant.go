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
	"github.com/livekit/protocol/livekit"
)

// LocalParticipant is the participant this client joined as. It is never part of the registry.
type LocalParticipant struct {
	baseParticipant
}

func newLocalParticipant(info *livekit.ParticipantInfo) *LocalParticipant {
	p := &LocalParticipant{}
	p.init(info.Sid)
	p.mergeInfo(info)
	return p
}

func (p *LocalParticipant) IsLocal() bool {
	return true
}

func (p *LocalParticipant) updateInfo(info *livekit.ParticipantInfo) participantChanges {
	return p.mergeInfo(info)
}
