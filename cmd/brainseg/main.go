package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"brainseg/internal/config"
	"brainseg/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags before flag parsing so they win
	// over everything else.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("brainseg %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	configPath := flag.String("config", "brainseg.yaml", "Path to YAML configuration file")
	inputPath := flag.String("input", "", "Grayscale slice to segment (overrides config)")
	outputPath := flag.String("output", "", "Destination for the mask JSON document (overrides config)")
	overlayPath := flag.String("overlay", "", "Write a color QA overlay PNG to this path (overrides config)")
	logLevel := flag.String("log-level", "", "Log level: trace, debug, info, warn, error (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "brainseg: %v\n", err)
		os.Exit(1)
	}
	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}
	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}
	if *overlayPath != "" {
		cfg.Output.OverlayPath = *overlayPath
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	if err := pipeline.New(cfg, logger).Run(); err != nil {
		// Error() already carries the stage prefix (input error /
		// encoding error / output error).
		logger.Fatal().Msg(err.Error())
	}
}
