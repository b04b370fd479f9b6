package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestConfigureLevelAndFields(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, Service: "test"})
	t.Cleanup(func() { Configure(Config{}) })

	require.Equal(t, zerolog.DebugLevel, Base().GetLevel())

	l := WithComponent("codec")
	l.Debug().Int("radix", 62).Msg("resolved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "test", entry["service"])
	require.Equal(t, "codec", entry["component"])
	require.Equal(t, "resolved", entry["message"])
	require.EqualValues(t, 62, entry["radix"])
}

func TestConfigureDefaultsToWarn(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	Configure(Config{Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	l := Base()
	l.Info().Msg("hidden")
	require.Zero(t, buf.Len())

	l = Base()
	l.Warn().Msg("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestConfigureLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	var buf bytes.Buffer
	Configure(Config{Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	require.Equal(t, zerolog.ErrorLevel, Base().GetLevel())
}

func TestConfigureConsole(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "info", Output: &buf, Console: true})
	t.Cleanup(func() { Configure(Config{}) })

	l := Base()
	l.Info().Msg("readable")
	require.True(t, strings.Contains(buf.String(), "readable"))
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
