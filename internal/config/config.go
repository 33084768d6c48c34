package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jiangshengdev/lis-explorer/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envInput   = "LIS_EXPLORER_INPUT"
	envSpeed   = "LIS_EXPLORER_SPEED_MS"
	envWidth   = "LIS_EXPLORER_WIDTH"
	envHeight  = "LIS_EXPLORER_HEIGHT"
	envFooter  = "LIS_EXPLORER_FOOTER"
	envVerbose = "LIS_EXPLORER_VERBOSE"
	envDump    = "LIS_EXPLORER_DUMP"
	envTrace   = "LIS_EXPLORER_TRACE"
	envLogFile = "LIS_EXPLORER_LOG_FILE"
)

const defaultInput = "2,1,3,0,4,8,6,7"

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("lis-explorer", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	input := fs.String("input", envOrDefault(env, envInput, defaultInput), "comma-separated input sequence (-1 marks a placeholder)")
	speed := fs.Int("speed-ms", envOrInt(env, envSpeed, 800), "auto-play interval in milliseconds")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, true), "show key-hint footer row")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show informational messages for every action")
	dump := fs.Bool("dump", envOrBool(env, envDump, false), "print the full step table to stdout and exit")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *speed <= 0 {
		return Config{}, fmt.Errorf("speed-ms must be > 0 (got %d)", *speed)
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Input:      *input,
			Speed:      time.Duration(*speed) * time.Millisecond,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			Dump:       *dump,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"input":   *input,
			"speedMS": strconv.Itoa(*speed),
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"verbose": strconv.FormatBool(*verbose),
			"dump":    strconv.FormatBool(*dump),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
