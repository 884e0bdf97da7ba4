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
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"

	"github.com/livekit/protocol/auth"
	"github.com/livekit/protocol/logger"

	"github.com/livekit/client-sdk-go/pkg/config"
	"github.com/livekit/client-sdk-go/pkg/telemetry/prometheus"
)

func joinRoom(c *cli.Context) error {
	conf, err := getConfig(c)
	if err != nil {
		return err
	}
	if err = conf.ReadTokenFile(); err != nil {
		return err
	}
	if err = conf.Validate(); err != nil {
		return err
	}

	token := conf.Token
	if token == "" {
		if token, err = accessToken(conf); err != nil {
			return err
		}
	}

	if conf.PrometheusPort > 0 {
		if err = startPrometheus(conf.PrometheusPort); err != nil {
			return err
		}
	}

	client, err := InitializeClient(conf, os.Stdout)
	if err != nil {
		return err
	}
	defer client.Stop()

	ctx, cancel := context.WithTimeout(c.Context, conf.ConnectTimeout)
	err = client.Connect(ctx, token)
	cancel()
	if err != nil {
		return errors.Wrap(err, "could not join room")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChan:
		logger.Infow("exit requested, leaving room", "signal", sig)
	case <-client.Disconnected():
		logger.Infow("room disconnected")
	}
	return nil
}

func createToken(c *cli.Context) error {
	conf, err := getConfig(c)
	if err != nil {
		return err
	}

	token, err := accessToken(conf)
	if err != nil {
		return err
	}

	fmt.Println("Token:", token)
	return nil
}

func helpVerbose(c *cli.Context) error {
	generatedFlags, err := config.GenerateCLIFlags(baseFlags, false)
	if err != nil {
		return err
	}

	c.App.Flags = append(baseFlags, generatedFlags...)
	return cli.ShowAppHelp(c)
}

func accessToken(conf *config.Config) (string, error) {
	if conf.APIKey == "" || conf.APISecret == "" {
		return "", config.ErrCredentialsNotSet
	}
	if conf.Room == "" || conf.Identity == "" {
		return "", config.ErrRoomNotSet
	}

	at := auth.NewAccessToken(conf.APIKey, conf.APISecret).
		AddGrant(&auth.VideoGrant{
			RoomJoin: true,
			Room:     conf.Room,
		}).
		SetIdentity(conf.Identity).
		SetValidFor(conf.TokenValidFor)

	return at.ToJWT()
}

func startPrometheus(port uint32) error {
	if err := prometheus.Init(nil); err != nil {
		return err
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return errors.Wrap(err, "could not listen for prometheus")
	}
	srv := &http.Server{
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warnw("prometheus server stopped", err)
		}
	}()
	logger.Infow("serving prometheus metrics", "port", port)
	return nil
}
