package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/livekit/client-sdk-go/pkg/config/configtest"
)

func testContext(set *flag.FlagSet) *cli.Context {
	app := cli.NewApp()
	app.Name = "test"
	return cli.NewContext(app, set, nil)
}

func TestConfig_Defaults(t *testing.T) {
	conf, err := NewConfig("", true, nil, nil)
	require.NoError(t, err)

	require.Equal(t, "ws://localhost:7880", conf.URL)
	require.True(t, conf.RTC.AutoSubscribe)
	require.Equal(t, 9, conf.RTC.ProtocolVersion)
	require.Equal(t, 15*time.Second, conf.ConnectTimeout)
	require.Equal(t, "error", conf.Logging.ComponentLevels["pion"])

	// defaults are copied, not shared
	conf.RTC.ICEServers[0].URLs[0] = "stun:changed"
	require.Equal(t, "stun:stun.l.google.com:19302", DefaultConfig.RTC.ICEServers[0].URLs[0])
}

func TestConfig_DefaultsKept(t *testing.T) {
	const content = `room: test
rtc:
  auto_subscribe: false
output:
  speaker_debounce: 1s`
	conf, err := NewConfig(content, true, nil, nil)
	require.NoError(t, err)

	require.Equal(t, "test", conf.Room)
	require.False(t, conf.RTC.AutoSubscribe)
	require.Equal(t, time.Second, conf.Output.SpeakerDebounce)
	require.Equal(t, 9, conf.RTC.ProtocolVersion)
	require.Equal(t, 30*time.Second, conf.Output.SummaryInterval)
}

func TestConfig_UnknownKeys(t *testing.T) {
	const content = `unknown: 10
room: test`
	_, err := NewConfig(content, true, nil, nil)
	require.Error(t, err)

	conf, err := NewConfig(content, false, nil, nil)
	require.NoError(t, err)
	require.Equal(t, "test", conf.Room)
}

func TestConfig_Development(t *testing.T) {
	conf, err := NewConfig("development: true", true, nil, nil)
	require.NoError(t, err)
	require.Equal(t, "debug", conf.Logging.Level)
}

func TestConfig_Validate(t *testing.T) {
	conf, err := NewConfig("", true, nil, nil)
	require.NoError(t, err)
	require.ErrorIs(t, conf.Validate(), ErrCredentialsNotSet)

	conf.APIKey = "key"
	require.ErrorIs(t, conf.Validate(), ErrCredentialsNotSet)
	conf.APISecret = "secret"
	require.NoError(t, conf.Validate())

	conf.URL = ""
	require.ErrorIs(t, conf.Validate(), ErrURLNotSet)
}

func TestConfig_TokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("jwt-token\n"), 0o600))

	t.Setenv("TOKEN_DIR", filepath.Dir(path))
	conf, err := NewConfig("token_file: $TOKEN_DIR/token", true, nil, nil)
	require.NoError(t, err)
	require.Equal(t, path, conf.TokenFile)
	require.NoError(t, conf.Validate())

	require.NoError(t, conf.ReadTokenFile())
	require.Equal(t, "jwt-token", conf.Token)

	conf.TokenFile = filepath.Join(t.TempDir(), "missing")
	require.NoError(t, conf.ReadTokenFile())

	conf.Token = ""
	require.Error(t, conf.ReadTokenFile())
}

func TestConfig_WebRTCConfiguration(t *testing.T) {
	const content = `rtc:
  ice_servers:
    - urls: ["turn:turn.example.com:3478"]
      username: user
      credential: pass`
	conf, err := NewConfig(content, true, nil, nil)
	require.NoError(t, err)

	rtcConf := conf.WebRTCConfiguration()
	require.Len(t, rtcConf.ICEServers, 1)
	require.Equal(t, "user", rtcConf.ICEServers[0].Username)
	require.Equal(t, "pass", rtcConf.ICEServers[0].Credential)
}

func TestGeneratedFlags(t *testing.T) {
	generatedFlags, err := GenerateCLIFlags(nil, false)
	require.NoError(t, err)

	set := flag.NewFlagSet("test", 0)
	set.Bool("rtc.auto_subscribe", false, "")        // bool
	set.String("room", "cli-room", "")                // string
	set.Uint("prometheus_port", 9999, "")             // uint32
	set.Int64("rtc.protocol_version", 8, "")          // int
	set.Duration("connect_timeout", time.Minute, "") // duration

	c := testContext(set)
	c.App.Flags = append(c.App.Flags, generatedFlags...)
	conf, err := NewConfig("", true, c, nil)
	require.NoError(t, err)

	require.False(t, conf.RTC.AutoSubscribe)
	require.Equal(t, "cli-room", conf.Room)
	require.Equal(t, uint32(9999), conf.PrometheusPort)
	require.Equal(t, 8, conf.RTC.ProtocolVersion)
	require.Equal(t, time.Minute, conf.ConnectTimeout)
}

func TestYAMLTags(t *testing.T) {
	require.NoError(t, configtest.CheckYAMLTags(Config{}))
}
