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
	"time"

	"github.com/frostbyte73/core"
	"github.com/gorilla/websocket"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/livekit/protocol/livekit"
	"github.com/livekit/protocol/logger"

	"github.com/livekit/client-sdk-go/pkg/rtc/types"
)

const (
	pingFrequency = 10 * time.Second
	pingTimeout   = 2 * time.Second
)

// SignalConnection reads SignalResponses from and writes SignalRequests to a websocket.
type SignalConnection struct {
	logger logger.Logger
	conn   types.WebsocketClient

	lock    sync.Mutex
	useJSON bool
	closed  core.Fuse
}

func NewSignalConnection(logger logger.Logger, conn types.WebsocketClient, pingInterval time.Duration) *SignalConnection {
	c := &SignalConnection{
		logger: logger,
		conn:   conn,
		closed: core.NewFuse(),
	}
	if pingInterval > 0 {
		go c.pingWorker(pingInterval)
	}
	return c
}

// ReadResponse blocks until the next response. Servers answering in JSON switch the connection
// to JSON for writes too.
func (c *SignalConnection) ReadResponse() (*livekit.SignalResponse, error) {
	for {
		messageType, payload, err := c.conn.ReadMessage()
		if err != nil {
			return nil, err
		}

		msg := &livekit.SignalResponse{}
		switch messageType {
		case websocket.BinaryMessage:
			if err := proto.Unmarshal(payload, msg); err != nil {
				return nil, err
			}
			return msg, nil
		case websocket.TextMessage:
			c.lock.Lock()
			c.useJSON = true
			c.lock.Unlock()
			if err := protojson.Unmarshal(payload, msg); err != nil {
				return nil, err
			}
			return msg, nil
		default:
			c.logger.Debugw("unsupported message", "message", messageType)
		}
	}
}

func (c *SignalConnection) WriteRequest(msg *livekit.SignalRequest) error {
	if c.closed.IsBroken() {
		return websocket.ErrCloseSent
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	var msgType int
	var payload []byte
	var err error
	if c.useJSON {
		msgType = websocket.TextMessage
		payload, err = protojson.Marshal(msg)
	} else {
		msgType = websocket.BinaryMessage
		payload, err = proto.Marshal(msg)
	}
	if err != nil {
		return err
	}
	return c.conn.WriteMessage(msgType, payload)
}

func (c *SignalConnection) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.closed.IsBroken() {
		return nil
	}
	c.closed.Break()
	return c.conn.Close()
}

func (c *SignalConnection) pingWorker(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.closed.Watch():
			return
		case <-ticker.C:
			c.lock.Lock()
			err := c.conn.WriteControl(websocket.PingMessage, []byte(""), time.Now().Add(pingTimeout))
			c.lock.Unlock()
			if err != nil {
				c.logger.Debugw("stopping ping worker", "error", err)
				return
			}
		}
	}
}
