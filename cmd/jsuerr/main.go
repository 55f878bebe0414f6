package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xgx-io/jsu-error/internal/cli"
	"github.com/xgx-io/jsu-error/jsuzap"
)

var (
	version = "dev"
	debug   = false
)

func main() {
	// Flags are parsed inside Execute, so peek at os.Args for the logger level.
	debug = debugRequested(os.Args[1:])

	logger, err := newConsoleLogger(debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	jsuzap.SetLogger(logger)

	initCommands(logger)

	if err := rootCmd.Execute(); err != nil {
		if debug {
			fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "jsuerr",
	Short:         "Inspect and render JSU error kinds",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging and verbose errors")
}

func initCommands(logger *zap.Logger) {
	m := cli.NewKindManager(logger)
	rootCmd.AddCommand(cli.NewKindsCmd(m))
	rootCmd.AddCommand(cli.NewRenderCmd(m))
	rootCmd.AddCommand(cli.NewProbeCmd(logger))
}

// debugRequested reports the value of the last --debug flag in args, accepting
// the same spellings as the bool flag cobra parses later (--debug,
// --debug=true, --debug=0, ...). Arguments after "--" are not flags.
func debugRequested(args []string) bool {
	on := false
	for _, a := range args {
		if a == "--" {
			break
		}
		if a == "--debug" {
			on = true
			continue
		}
		if v, ok := strings.CutPrefix(a, "--debug="); ok {
			if b, err := strconv.ParseBool(v); err == nil {
				on = b
			}
		}
	}
	return on
}

// newConsoleLogger returns a human-friendly console logger on stderr.
// Debug enables all levels; otherwise only warnings and above are shown.
func newConsoleLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	level := zap.WarnLevel
	if debug {
		level = zap.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}
