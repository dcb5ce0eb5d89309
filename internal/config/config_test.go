package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Fills defaults for missing keys", func(t *testing.T) {
		// Given: a config file that only sets the channel url
		path := writeConfig(t, "channel:\n  url: ws://game.example/ws\n")

		// When: loading it
		conf := MustLoad(path)

		// Then: everything else falls back to defaults
		assert.Equal(t, "ws://game.example/ws", conf.Channel.URL)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, RendererLog, conf.Renderer)
		assert.Equal(t, 30*time.Second, conf.Channel.MaxReconnectInterval)
		assert.Equal(t, 24*time.Hour, conf.Redis.AssetTTL)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.InDelta(t, 5.0, conf.Board.CellSize, 0.0001)
	})

	t.Run("Reads every section", func(t *testing.T) {
		path := writeConfig(t, `
log-level: debug
renderer: terminal
channel:
  player-id: alice
  max-reconnect-interval: 5s
redis:
  host: cache
  port: "6380"
board:
  origin-x: 10
  origin-y: 20
  cell-size: 100
`)

		conf := MustLoad(path)

		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, RendererTerminal, conf.Renderer)
		assert.Equal(t, "alice", conf.Channel.PlayerID)
		assert.Equal(t, 5*time.Second, conf.Channel.MaxReconnectInterval)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.InDelta(t, 10.0, conf.Board.OriginX, 0.0001)
		assert.InDelta(t, 100.0, conf.Board.CellSize, 0.0001)
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
