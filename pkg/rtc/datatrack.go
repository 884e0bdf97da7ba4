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

	"github.com/frostbyte73/core"

	"github.com/livekit/protocol/logger"

	"github.com/livekit/client-sdk-go/pkg/rtc/types"
)

type DataTrackKey struct {
	ParticipantSID string
	TrackSID       string
	Name           string
}

type DataTrackParams struct {
	Logger         logger.Logger
	ParticipantSID string
	TrackSID       string
	Name           string
	Channel        types.DataChannel
}

// DataTrack is a named payload channel scoped to a participant and track sid.
type DataTrack struct {
	params DataTrackParams

	closeLock sync.Mutex
	closed    core.Fuse
}

func NewDataTrack(params DataTrackParams) *DataTrack {
	return &DataTrack{
		params: params,
		closed: core.NewFuse(),
	}
}

func (d *DataTrack) Key() DataTrackKey {
	return DataTrackKey{
		ParticipantSID: d.params.ParticipantSID,
		TrackSID:       d.params.TrackSID,
		Name:           d.params.Name,
	}
}

func (d *DataTrack) ParticipantSID() string {
	return d.params.ParticipantSID
}

func (d *DataTrack) TrackSID() string {
	return d.params.TrackSID
}

func (d *DataTrack) Name() string {
	return d.params.Name
}

func (d *DataTrack) IsClosed() bool {
	return d.closed.IsBroken()
}

func (d *DataTrack) Send(data []byte) error {
	if d.closed.IsBroken() {
		return ErrDataTrackClosed
	}
	return d.params.Channel.Send(data)
}

func (d *DataTrack) Close() {
	d.closeLock.Lock()
	defer d.closeLock.Unlock()
	if d.closed.IsBroken() {
		return
	}
	d.closed.Break()

	d.params.Logger.Debugw("closing data track", "trackID", d.params.TrackSID, "name", d.params.Name)
	if err := d.params.Channel.Close(); err != nil {
		d.params.Logger.Debugw("could not close data channel", "error", err, "trackID", d.params.TrackSID)
	}
}
