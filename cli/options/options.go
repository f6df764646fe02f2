/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"fmt"

	"github.com/cs2kit/cs2/pkg/config"
	"github.com/cs2kit/cs2/pkg/io"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ConfigFile is a flag for commands that use the configuration file.
var ConfigFile = cli.StringFlag{
	Name:  "config-file",
	Usage: "path to the YAML configuration file (defaults are used if not set)",
}

// Debug is a flag for commands that allow debug logging.
var Debug = cli.BoolFlag{
	Name:  "debug, d",
	Usage: "enable debug logging (LOTS of output, overrides configuration)",
}

// Decoder is a set of flags overriding the Decoder section of the
// configuration.
var Decoder = []cli.Flag{
	cli.BoolFlag{
		Name:  "strict",
		Usage: "fail on stack underflows and values left at block ends",
	},
	cli.StringFlag{
		Name:  "switches",
		Usage: "SWITCH operand encoding for bare code: inline or indexed",
	},
	cli.StringFlag{
		Name:  "addressing",
		Usage: "branch displacement addressing: index or offset",
	},
	cli.IntFlag{
		Name:  "max-instructions",
		Usage: "stop decoding after this many instructions (0 means no limit)",
	},
}

// GetConfigFromContext loads the configuration file given in the context
// and applies Decoder flag overrides to it.
func GetConfigFromContext(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := ctx.String("config-file"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
	}
	if ctx.Bool("strict") {
		cfg.Decoder.Strict = true
	}
	if s := ctx.String("switches"); s != "" {
		cfg.Decoder.Switches = s
	}
	if s := ctx.String("addressing"); s != "" {
		cfg.Decoder.Addressing = s
	}
	if ctx.IsSet("max-instructions") {
		cfg.Decoder.MaxInstructions = ctx.Int("max-instructions")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// HandleLoggingParams reads logging parameters.
// If a user selected debug level -- function enables it.
// If logPath is configured -- function creates a dir and a file for logging.
func HandleLoggingParams(debug bool, cfg config.Logger) (*zap.Logger, *zap.AtomicLevel, error) {
	var (
		level = zapcore.InfoLevel
		err   error
	)
	if len(cfg.LogLevel) > 0 {
		level, err = zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil
	cc.OutputPaths = []string{"stderr"}

	if logPath := cfg.LogPath; logPath != "" {
		if err := io.MakeDirForFile(logPath, "logger"); err != nil {
			return nil, nil, err
		}
		cc.OutputPaths = []string{logPath}
	}

	log, err := cc.Build()
	return log, &cc.Level, err
}
