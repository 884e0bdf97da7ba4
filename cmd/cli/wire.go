//go:build wireinject
// +build wireinject

package main

import (
	"io"

	"github.com/google/wire"

	"github.com/livekit/client-sdk-go/pkg/config"
)

func InitializeClient(conf *config.Config, out io.Writer) (*Client, error) {
	wire.Build(ClientSet)
	return &Client{}, nil
}
