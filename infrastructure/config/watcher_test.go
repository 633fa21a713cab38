package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWatcher_RequiresFile(t *testing.T) {
	_, err := NewWatcher(Default(), zap.NewNop())

	assert.Error(t, err)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "log_level: info\n")
	cfg := Default()
	require.NoError(t, cfg.mergeFile(path))

	watcher, err := NewWatcher(cfg, zap.NewNop())
	require.NoError(t, err)
	defer watcher.Stop()

	changes := make(chan *Config, 4)
	watcher.OnChange(func(c *Config) { changes <- c })
	watcher.Start()

	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))

	select {
	case next := <-changes:
		assert.Equal(t, "debug", next.LogLevel)
		assert.Equal(t, "debug", watcher.Current().LogLevel)
	case <-time.After(5 * time.Second):
		t.Fatal("configuration change was not observed")
	}
}

func TestWatcher_KeepsCurrentOnInvalidFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "log_level: info\n")
	cfg := Default()
	require.NoError(t, cfg.mergeFile(path))

	watcher, err := NewWatcher(cfg, zap.NewNop())
	require.NoError(t, err)
	defer watcher.Stop()

	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0o644))
	watcher.reload()

	assert.Same(t, cfg, watcher.Current())
}
