package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Run("console only", func(t *testing.T) {
		l, err := New("pingbot", Options{Level: "debug"})
		require.NoError(t, err)
		assert.True(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("info hides debug", func(t *testing.T) {
		l, err := New("pingbot", Options{Level: "info"})
		require.NoError(t, err)
		assert.False(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
		assert.True(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := New("pingbot", Options{Level: "loud"})
		assert.Error(t, err)
	})

	t.Run("file output", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs")
		l, err := New("pingbot", Options{Level: "info", Dir: dir})
		require.NoError(t, err)

		l.Infow("hello", "k", "v")
		_ = l.Sync()

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"msg":"hello"`)
	})
}

func TestWrap(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := Wrap(zap.New(core))

	l.Infof("Registered command: %s", "ping")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Registered command: ping", logs.All()[0].Message)
}
