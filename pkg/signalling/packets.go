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

package signalling

import (
	"sync"

	"github.com/frostbyte73/core"
	"github.com/pion/webrtc/v3"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"

	"github.com/livekit/protocol/livekit"
	"github.com/livekit/protocol/logger"

	"github.com/livekit/client-sdk-go/pkg/rtc"
	"github.com/livekit/client-sdk-go/pkg/rtc/types"
)

const (
	packetTrackName = "packets"

	// messages arriving before a reader is attached are held up to this many per channel
	maxPendingPackets = 64
)

var ErrChannelClosed = errors.New("data channel closed")

// rawChannel is the part of *webrtc.DataChannel the router needs.
type rawChannel interface {
	Label() string
	OnMessage(f func(msg webrtc.DataChannelMessage))
	Send(data []byte) error
}

// packetRouter splits the shared packet channels by sender. Each sender gets one virtual data
// channel per packet channel, labelled "<sender>|<channel>|packets", announced on first use.
type packetRouter struct {
	logger   logger.Logger
	announce func(dc types.DataChannel)

	lock     sync.Mutex
	channels map[string]*packetChannel
	closed   bool
}

func newPacketRouter(logger logger.Logger, announce func(dc types.DataChannel)) *packetRouter {
	return &packetRouter{
		logger:   logger,
		announce: announce,
		channels: make(map[string]*packetChannel),
	}
}

func (r *packetRouter) attach(raw rawChannel) {
	raw.OnMessage(func(msg webrtc.DataChannelMessage) {
		r.handleMessage(raw, msg.Data)
	})
}

func (r *packetRouter) handleMessage(raw rawChannel, data []byte) {
	dp := &livekit.DataPacket{}
	if err := proto.Unmarshal(data, dp); err != nil {
		r.logger.Debugw("could not unmarshal data packet", "error", err)
		return
	}
	user, ok := dp.Value.(*livekit.DataPacket_User)
	if !ok || user.User.ParticipantSid == "" {
		return
	}

	label := rtc.PackDataTrackLabel(user.User.ParticipantSid, raw.Label(), packetTrackName)

	r.lock.Lock()
	if r.closed {
		r.lock.Unlock()
		return
	}
	pc, found := r.channels[label]
	if !found {
		pc = newPacketChannel(label, raw, dp.Kind, user.User.ParticipantSid, func() { r.remove(label) })
		r.channels[label] = pc
	}
	r.lock.Unlock()

	if !found {
		r.announce(pc)
	}
	pc.deliver(user.User.Payload)
}

func (r *packetRouter) remove(label string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.channels, label)
}

func (r *packetRouter) close() {
	r.lock.Lock()
	r.closed = true
	channels := r.channels
	r.channels = make(map[string]*packetChannel)
	r.lock.Unlock()

	for _, pc := range channels {
		pc.shutdown()
	}
}

// ---------------------------------------------

// packetChannel is a virtual types.DataChannel carrying the user packets of one sender.
type packetChannel struct {
	label    string
	raw      rawChannel
	kind     livekit.DataPacket_Kind
	sender   string
	onRemove func()

	lock     sync.Mutex
	onMsg    func(msg webrtc.DataChannelMessage)
	pending  [][]byte
	closed   core.Fuse
	shutOnce sync.Once
}

func newPacketChannel(label string, raw rawChannel, kind livekit.DataPacket_Kind, sender string, onRemove func()) *packetChannel {
	return &packetChannel{
		label:    label,
		raw:      raw,
		kind:     kind,
		sender:   sender,
		onRemove: onRemove,
		closed:   core.NewFuse(),
	}
}

func (c *packetChannel) Label() string {
	return c.label
}

// OnMessage installs the reader and replays messages received before it was set.
// Readers are called with the channel lock held and must not block.
func (c *packetChannel) OnMessage(f func(msg webrtc.DataChannelMessage)) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.onMsg = f
	for _, data := range c.pending {
		f(webrtc.DataChannelMessage{Data: data})
	}
	c.pending = nil
}

// Send addresses a user packet to the sender of this channel.
func (c *packetChannel) Send(data []byte) error {
	if c.closed.IsBroken() {
		return ErrChannelClosed
	}
	payload, err := proto.Marshal(&livekit.DataPacket{
		Kind: c.kind,
		Value: &livekit.DataPacket_User{
			User: &livekit.UserPacket{
				Payload:         data,
				DestinationSids: []string{c.sender},
			},
		},
	})
	if err != nil {
		return err
	}
	return c.raw.Send(payload)
}

func (c *packetChannel) Close() error {
	c.shutdown()
	c.onRemove()
	return nil
}

func (c *packetChannel) shutdown() {
	c.shutOnce.Do(func() {
		c.closed.Break()
		c.lock.Lock()
		c.onMsg = nil
		c.pending = nil
		c.lock.Unlock()
	})
}

func (c *packetChannel) deliver(data []byte) {
	if c.closed.IsBroken() {
		return
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if c.onMsg == nil {
		if len(c.pending) < maxPendingPackets {
			c.pending = append(c.pending, data)
		}
		return
	}
	c.onMsg(webrtc.DataChannelMessage{Data: data})
}
