// Package main is the entry point for the inkwell editor preview.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/dshills/inkwell/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		pluginDir   = flag.String("plugins", "", "Plugin directory (overrides config)")
		initialText = flag.String("text", "", "Initial document text")
		logFile     = flag.String("log-file", "", "Write logs to this file")
		logLevel    = flag.String("log-level", "", "Log level (overrides config)")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Inkwell - rich-text extension core preview\n\n")
		fmt.Fprintf(os.Stderr, "Usage: inkwell [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("inkwell %s (%s)\n", version, commit)
		return 0
	}

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if *pluginDir != "" {
		cfg.Plugins.Dir = *pluginDir
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log, closeLog, err := newLogger(cfg.Log, *logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	app, err := newApp(cfg, path, *initialText, log)
	if err != nil {
		log.Error().Err(err).Msg("initialization failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer app.Shutdown()

	if err := app.Run(); err != nil {
		log.Error().Err(err).Msg("app exited with error")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newLogger builds the process logger. Without a log file the terminal UI
// owns the screen, so output is discarded.
func newLogger(cfg config.LogConfig, path string) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var w io.Writer = io.Discard
	closeLog := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
		if cfg.Pretty {
			w = zerolog.ConsoleWriter{Out: f, NoColor: true}
		}
	}

	log := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return log, closeLog, nil
}
