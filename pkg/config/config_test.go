package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/cs2kit/cs2/pkg/decoder"
	"github.com/cs2kit/cs2/pkg/flow"
	"github.com/stretchr/testify/require"
)

const testConfigPath = "./testdata/cs2.yml"

func TestLoad(t *testing.T) {
	cfg, err := Load(testConfigPath)
	require.NoError(t, err)

	require.Equal(t, "indexed", cfg.Decoder.Switches)
	require.True(t, cfg.Decoder.Strict)
	require.Equal(t, 65536, cfg.Decoder.MaxInstructions)
	require.Equal(t, flow.DefaultMaxSwitchRange, cfg.Decoder.MaxSwitchRange)
	require.Equal(t, 8, cfg.Batch.Workers)
	require.Equal(t, 250*time.Millisecond, cfg.Batch.Timeout)
	require.Equal(t, DefaultSignatureCacheSize, cfg.Batch.SignatureCacheSize)
	require.Equal(t, DefaultExt, cfg.Batch.Ext)
	require.Equal(t, "debug", cfg.Logger.LogLevel)

	d, err := cfg.Decoder.NewDecoder()
	require.NoError(t, err)
	require.Equal(t, decoder.SwitchIndexed, d.Switches)
	require.True(t, d.Strict)
	require.Equal(t, 65536, d.MaxInstructions)

	opts, err := cfg.Decoder.FlowOptions()
	require.NoError(t, err)
	require.Equal(t, flow.Options{Addressing: flow.ByOffset, MaxSwitchRange: flow.DefaultMaxSwitchRange}, opts)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"unknown field":    "Decoder:\n  Foo: 1\n",
		"switch encoding":  "Decoder:\n  Switches: table\n",
		"addressing":       "Decoder:\n  Addressing: label\n",
		"instructions":     "Decoder:\n  MaxInstructions: -1\n",
		"switch range":     "Decoder:\n  MaxSwitchRange: -1\n",
		"workers":          "Batch:\n  Workers: 0\n",
		"timeout":          "Batch:\n  Timeout: -1s\n",
		"cache":            "Batch:\n  ProgramCacheSize: 0\n",
		"timeout not time": "Batch:\n  Timeout: soon\n",
		"not yaml":         "Decoder: [\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			require.Error(t, err)
		})
	}
}
