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
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/livekit/client-sdk-go/pkg/rtc/types"
)

const sdkName = "go"

type ConnectParams struct {
	AutoSubscribe   bool
	ProtocolVersion types.ProtocolVersion
}

// Dialer opens the signal websocket. DialWebsocket is the default.
type Dialer func(ctx context.Context, url string, token string, params ConnectParams) (types.WebsocketClient, error)

// BuildURL turns a server address into its /rtc signal endpoint. http(s) schemes are mapped to ws(s).
func BuildURL(host string, params ConnectParams) (string, error) {
	u, err := url.Parse(host)
	if err != nil {
		return "", errors.Wrap(err, "invalid server url")
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", errors.Errorf("unsupported url scheme %q", u.Scheme)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/rtc"

	protocol := params.ProtocolVersion
	if protocol == 0 {
		protocol = types.DefaultProtocol
	}
	q := u.Query()
	q.Set("protocol", strconv.Itoa(int(protocol)))
	q.Set("auto_subscribe", strconv.FormatBool(params.AutoSubscribe))
	q.Set("sdk", sdkName)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func SetAuthorizationToken(header http.Header, token string) {
	header.Set("Authorization", "Bearer "+token)
}

func DialWebsocket(ctx context.Context, host string, token string, params ConnectParams) (types.WebsocketClient, error) {
	connectURL, err := BuildURL(host, params)
	if err != nil {
		return nil, err
	}

	requestHeader := make(http.Header)
	SetAuthorizationToken(requestHeader, token)

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, connectURL, requestHeader)
	if err != nil {
		if resp != nil {
			return nil, errors.Wrapf(err, "could not connect to %s, status %d", host, resp.StatusCode)
		}
		return nil, errors.Wrapf(err, "could not connect to %s", host)
	}
	return conn, nil
}
