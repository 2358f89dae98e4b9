package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/outline-popup-control/internal/app"
	"github.com/atomicstack/outline-popup-control/internal/tree"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Keymap  Keymap
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// Keymap maps key names to navigate-mode action names. It overlays the
// built-in bindings; keys absent here keep their defaults.
type Keymap map[string]string

const (
	envWidth      = "OUTLINE_POPUP_CONTROL_WIDTH"
	envHeight     = "OUTLINE_POPUP_CONTROL_HEIGHT"
	envShowFooter = "OUTLINE_POPUP_CONTROL_FOOTER"
	envTrace      = "OUTLINE_POPUP_CONTROL_TRACE"
	envLogFile    = "OUTLINE_POPUP_CONTROL_LOG_FILE"
	envKeymapFile = "OUTLINE_POPUP_CONTROL_KEYMAP_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("outline-popup-control", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	keymapFile := fs.String("keymap-file", envOrDefault(env, envKeymapFile, ""), "path to a YAML keymap override file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	keymap, err := LoadKeymap(*keymapFile)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Keymap:     keymap,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Keymap: keymap,
		Flags: map[string]string{
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"footer":     strconv.FormatBool(*footer),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
			"keymapFile": *keymapFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// LoadKeymap reads a key-to-action mapping from a YAML file. An empty path
// yields an empty map.
func LoadKeymap(path string) (Keymap, error) {
	if strings.TrimSpace(path) == "" {
		return Keymap{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap file: %w", err)
	}
	keymap := Keymap{}
	if err := yaml.Unmarshal(data, &keymap); err != nil {
		return nil, fmt.Errorf("parse keymap file %s: %w", path, err)
	}
	known := make(map[string]struct{})
	for _, action := range tree.KnownActions() {
		known[action] = struct{}{}
	}
	for key, action := range keymap {
		if _, ok := known[action]; !ok {
			return nil, fmt.Errorf("keymap binds %q to unknown action %q", key, action)
		}
	}
	return keymap, nil
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
