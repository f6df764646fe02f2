/*
Package config contains the YAML configuration of the decoding tools.
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cs2kit/cs2/pkg/decoder"
	"github.com/cs2kit/cs2/pkg/flow"
	"gopkg.in/yaml.v3"
)

// Default values used for missing settings.
const (
	DefaultWorkers            = 4
	DefaultTimeout            = 5 * time.Second
	DefaultSignatureCacheSize = 4096
	DefaultProgramCacheSize   = 1024
	DefaultExt                = ".cs2"
)

// Version is the version of the tools, set at build time.
var Version string

// Config is the top level configuration.
type Config struct {
	Decoder Decoder `yaml:"Decoder"`
	Batch   Batch   `yaml:"Batch"`
	Logger  Logger  `yaml:"Logger"`
}

// Decoder configures instruction decoding and control flow resolution.
type Decoder struct {
	// Switches is "inline" or "indexed".
	Switches string `yaml:"Switches"`
	// Addressing is "index" or "offset".
	Addressing      string `yaml:"Addressing"`
	Strict          bool   `yaml:"Strict"`
	MaxInstructions int    `yaml:"MaxInstructions"`
	MaxSwitchRange  int    `yaml:"MaxSwitchRange"`
}

// Batch configures concurrent decoding of script directories.
type Batch struct {
	Workers            int           `yaml:"Workers"`
	Timeout            time.Duration `yaml:"Timeout"`
	SignatureCacheSize int           `yaml:"SignatureCacheSize"`
	ProgramCacheSize   int           `yaml:"ProgramCacheSize"`
	Dir                string        `yaml:"Dir"`
	Ext                string        `yaml:"Ext"`
}

// Logger contains logging settings.
type Logger struct {
	LogLevel string `yaml:"LogLevel"`
	LogPath  string `yaml:"LogPath"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Decoder: Decoder{
			MaxSwitchRange: flow.DefaultMaxSwitchRange,
		},
		Batch: Batch{
			Workers:            DefaultWorkers,
			Timeout:            DefaultTimeout,
			SignatureCacheSize: DefaultSignatureCacheSize,
			ProgramCacheSize:   DefaultProgramCacheSize,
			Ext:                DefaultExt,
		},
	}
}

// Load reads the configuration from the given file, settings missing from
// it keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration. Unknown fields are errors.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if _, err := decoder.ParseSwitchEncoding(c.Decoder.Switches); err != nil {
		return fmt.Errorf("invalid Decoder: %w", err)
	}
	if _, err := flow.ParseAddressing(c.Decoder.Addressing); err != nil {
		return fmt.Errorf("invalid Decoder: %w", err)
	}
	switch {
	case c.Decoder.MaxInstructions < 0:
		return fmt.Errorf("invalid Decoder: negative MaxInstructions %d", c.Decoder.MaxInstructions)
	case c.Decoder.MaxSwitchRange < 0:
		return fmt.Errorf("invalid Decoder: negative MaxSwitchRange %d", c.Decoder.MaxSwitchRange)
	case c.Batch.Workers < 1:
		return fmt.Errorf("invalid Batch: Workers must be positive, got %d", c.Batch.Workers)
	case c.Batch.Timeout < 0:
		return fmt.Errorf("invalid Batch: negative Timeout %s", c.Batch.Timeout)
	case c.Batch.SignatureCacheSize < 1 || c.Batch.ProgramCacheSize < 1:
		return errors.New("invalid Batch: cache sizes must be positive")
	}
	return nil
}

// NewDecoder returns a decoder configured by d.
func (d Decoder) NewDecoder() (*decoder.Decoder, error) {
	sw, err := decoder.ParseSwitchEncoding(d.Switches)
	if err != nil {
		return nil, err
	}
	return &decoder.Decoder{
		Switches:        sw,
		MaxInstructions: d.MaxInstructions,
		Strict:          d.Strict,
	}, nil
}

// FlowOptions returns resolver options configured by d.
func (d Decoder) FlowOptions() (flow.Options, error) {
	a, err := flow.ParseAddressing(d.Addressing)
	if err != nil {
		return flow.Options{}, err
	}
	return flow.Options{Addressing: a, MaxSwitchRange: d.MaxSwitchRange}, nil
}
