package options

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/cs2kit/cs2/pkg/config"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
	"go.uber.org/zap/zapcore"
)

func newContext(t *testing.T, args ...string) *cli.Context {
	set := flag.NewFlagSet("flagSet", flag.ContinueOnError)
	set.String("config-file", "", "")
	set.Bool("strict", false, "")
	set.String("switches", "", "")
	set.String("addressing", "", "")
	set.Int("max-instructions", 0, "")
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestGetConfigFromContext(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		cfg, err := GetConfigFromContext(newContext(t))
		require.NoError(t, err)
		require.False(t, cfg.Decoder.Strict)
		require.Equal(t, "", cfg.Decoder.Switches)
	})

	t.Run("overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cs2.yml")
		require.NoError(t, os.WriteFile(path, []byte("Decoder:\n  Addressing: offset\n  MaxInstructions: 10\n"), 0o644))
		cfg, err := GetConfigFromContext(newContext(t,
			"--config-file", path, "--strict", "--switches", "indexed", "--max-instructions", "0"))
		require.NoError(t, err)
		require.True(t, cfg.Decoder.Strict)
		require.Equal(t, "indexed", cfg.Decoder.Switches)
		require.Equal(t, "offset", cfg.Decoder.Addressing)
		require.Equal(t, 0, cfg.Decoder.MaxInstructions)
	})

	t.Run("invalid override", func(t *testing.T) {
		_, err := GetConfigFromContext(newContext(t, "--addressing", "label"))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := GetConfigFromContext(newContext(t, "--config-file", filepath.Join(t.TempDir(), "no.yml")))
		require.Error(t, err)
	})
}

func TestHandleLoggingParams(t *testing.T) {
	d := t.TempDir()
	testLog := filepath.Join(d, "file.log")

	t.Run("logdir is a file", func(t *testing.T) {
		logfile := filepath.Join(d, "logdir")
		require.NoError(t, os.WriteFile(logfile, []byte{1, 2, 3}, os.ModePerm))
		cfg := config.Logger{LogPath: filepath.Join(logfile, "file.log")}
		_, _, err := HandleLoggingParams(false, cfg)
		require.Error(t, err)
	})

	t.Run("broken level", func(t *testing.T) {
		cfg := config.Logger{LogPath: testLog, LogLevel: "qwerty"}
		_, _, err := HandleLoggingParams(false, cfg)
		require.Error(t, err)
	})

	t.Run("default", func(t *testing.T) {
		cfg := config.Logger{LogPath: testLog}
		logger, lvl, err := HandleLoggingParams(false, cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = logger.Sync() })
		require.Equal(t, zapcore.InfoLevel, lvl.Level())
	})

	t.Run("warn", func(t *testing.T) {
		cfg := config.Logger{LogPath: testLog, LogLevel: "warn"}
		logger, lvl, err := HandleLoggingParams(false, cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = logger.Sync() })
		require.Equal(t, zapcore.WarnLevel, lvl.Level())
	})

	t.Run("debug", func(t *testing.T) {
		cfg := config.Logger{LogPath: testLog, LogLevel: "warn"}
		logger, lvl, err := HandleLoggingParams(true, cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = logger.Sync() })
		require.Equal(t, zapcore.DebugLevel, lvl.Level())
	})
}
