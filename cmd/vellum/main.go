// Package main is the entry point for the vellum editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dshills/vellum/internal/app"
	"github.com/dshills/vellum/internal/config"
	"github.com/dshills/vellum/internal/render/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		app.SetLogger(app.NewLogger(app.LoggerConfig{
			Level:  app.ParseLogLevel(opts.logLevel),
			Output: f,
			Prefix: "vellum",
		}))
	} else {
		// the terminal belongs to the editor; without a log file, log nowhere
		app.SetLogger(app.NullLogger)
	}

	cfgPath := opts.configPath
	if cfgPath == "" {
		cfgPath = defaultConfigPath()
	}
	cfg, err := config.NewLoader(cfgPath).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	application, err := app.New(app.Options{
		Backend:    backend.NewTerminal(),
		Config:     cfg,
		ConfigPath: cfgPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if opts.file != "" {
		// a failed open surfaces as a status message once the screen is up
		_ = application.OpenFile(opts.file)
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Stop()
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type cliOptions struct {
	configPath string
	logPath    string
	logLevel   string
	file       string
}

func parseFlags() cliOptions {
	var opts cliOptions
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logPath, "log", "", "Write logs to this file (default: logging off)")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Vellum - a small terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: vellum [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vellum                      Open with an empty buffer\n")
		fmt.Fprintf(os.Stderr, "  vellum notes.txt            Open a file\n")
		fmt.Fprintf(os.Stderr, "  vellum -c my.toml notes.txt Open with a custom configuration\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if showVersion {
		fmt.Printf("Vellum %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.logLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	if args := flag.Args(); len(args) > 0 {
		opts.file = args[0]
	}
	return opts
}

// defaultConfigPath returns the user config file when one exists, so
// running without -config still picks it up.
func defaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(base, "vellum", "config.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
