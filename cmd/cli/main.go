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
	"os"

	"github.com/urfave/cli/v2"

	"github.com/livekit/protocol/logger"

	"github.com/livekit/client-sdk-go/pkg/config"
	"github.com/livekit/client-sdk-go/version"
)

var baseFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "config",
		Usage: "path to client config file",
	},
	&cli.StringFlag{
		Name:    "config-body",
		Usage:   "client config in YAML, typically passed in as an environment var in a container",
		EnvVars: []string{"LIVEKIT_CLIENT_CONFIG"},
	},
	&cli.StringFlag{
		Name:    "url",
		Usage:   "server url, ws(s):// or http(s)://",
		EnvVars: []string{"LIVEKIT_URL"},
	},
	&cli.StringFlag{
		Name:    "api-key",
		Usage:   "api key used to generate a token",
		EnvVars: []string{"LIVEKIT_API_KEY"},
	},
	&cli.StringFlag{
		Name:    "api-secret",
		Usage:   "api secret used to generate a token",
		EnvVars: []string{"LIVEKIT_API_SECRET"},
	},
	&cli.StringFlag{
		Name:    "token",
		Usage:   "access token, overrides --api-key and --api-secret",
		EnvVars: []string{"LIVEKIT_TOKEN"},
	},
	&cli.StringFlag{
		Name:  "room",
		Usage: "name of the room to join",
	},
	&cli.StringFlag{
		Name:  "identity",
		Usage: "identity of the participant",
	},
	&cli.StringSliceFlag{
		Name:  "ice-server",
		Usage: "STUN/TURN url, use flag multiple times to specify multiple servers",
	},
	&cli.BoolFlag{
		Name:  "dev",
		Usage: "sets log-level to debug and console formatter",
	},
	&cli.BoolFlag{
		Name:   "disable-strict-config",
		Usage:  "disables strict config parsing",
		Hidden: true,
	},
}

func main() {
	generatedFlags, err := config.GenerateCLIFlags(baseFlags, true)
	if err != nil {
		fmt.Println(err)
	}

	app := &cli.App{
		Name:        "livekit-client",
		Usage:       "Join a room and follow its participants",
		Description: "run without subcommands to join a room",
		Flags:       append(baseFlags, generatedFlags...),
		Action:      joinRoom,
		Commands: []*cli.Command{
			{
				Name:   "create-token",
				Usage:  "create a room join token from the configured api key and secret",
				Action: createToken,
			},
			{
				Name:   "help-verbose",
				Usage:  "prints app help, including all generated configuration flags",
				Action: helpVerbose,
			},
		},
		Version: version.Version,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getConfig(c *cli.Context) (*config.Config, error) {
	confString, err := getConfigString(c.String("config"), c.String("config-body"))
	if err != nil {
		return nil, err
	}

	strictMode := true
	if c.Bool("disable-strict-config") {
		strictMode = false
	}

	conf, err := config.NewConfig(confString, strictMode, c, baseFlags)
	if err != nil {
		return nil, err
	}
	config.InitLoggerFromConfig(&conf.Logging)

	if conf.Development && conf.Token == "" && conf.TokenFile == "" && conf.APIKey == "" {
		logger.Infow("no credentials provided, using placeholder keys",
			"API Key", "devkey",
			"API Secret", "secret",
		)
		conf.APIKey = "devkey"
		conf.APISecret = "secret"
	}
	return conf, nil
}

func getConfigString(configFile string, inConfigBody string) (string, error) {
	if inConfigBody != "" || configFile == "" {
		return inConfigBody, nil
	}

	outConfigBody, err := os.ReadFile(configFile)
	if err != nil {
		return "", err
	}

	return string(outConfigBody), nil
}
