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
	"context"

	"github.com/google/wire"

	"github.com/livekit/protocol/logger"

	"github.com/livekit/client-sdk-go/pkg/config"
	"github.com/livekit/client-sdk-go/pkg/rtc"
	"github.com/livekit/client-sdk-go/pkg/rtc/types"
	"github.com/livekit/client-sdk-go/pkg/signalling"
)

var ClientSet = wire.NewSet(
	getEngineParams,
	signalling.NewEngine,
	wire.Bind(new(types.Engine), new(*signalling.Engine)),
	newEventPrinter,
	newRoom,
	NewClient,
)

type Client struct {
	conf    *config.Config
	room    *rtc.Room
	printer *eventPrinter
}

func NewClient(conf *config.Config, room *rtc.Room, printer *eventPrinter) *Client {
	return &Client{
		conf:    conf,
		room:    room,
		printer: printer,
	}
}

func (c *Client) Connect(ctx context.Context, token string) error {
	logger.Infow("connecting to room", "url", c.conf.URL, "room", c.conf.Room)
	if err := c.room.Connect(ctx, c.conf.URL, token); err != nil {
		return err
	}

	logger.Infow("joined room",
		"room", c.room.Name(),
		"sid", c.room.SID(),
		"serverVersion", c.room.ServerVersion(),
		"participants", len(c.room.GetParticipants()),
	)
	c.printer.printSummary()
	go c.printer.summaryWorker()
	return nil
}

func (c *Client) Disconnected() <-chan struct{} {
	return c.printer.disconnected.Watch()
}

func (c *Client) Stop() {
	c.printer.stop()
	c.room.Close()
}

func getEngineParams(conf *config.Config) signalling.EngineParams {
	return signalling.EngineParams{
		Logger:        logger.GetLogger(),
		Configuration: conf.WebRTCConfiguration(),
		ConnectParams: signalling.ConnectParams{
			AutoSubscribe:   conf.RTC.AutoSubscribe,
			ProtocolVersion: types.ProtocolVersion(conf.RTC.ProtocolVersion),
		},
		PingInterval: conf.RTC.PingInterval,
	}
}

func newRoom(engine types.Engine, printer *eventPrinter) *rtc.Room {
	room := rtc.NewRoom(rtc.RoomParams{
		Engine:   engine,
		Callback: printer.Callback(),
		Logger:   logger.GetLogger(),
	})
	printer.setRoom(room)
	return room
}
