package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/typeflow/font-picker/internal/app"
	"github.com/typeflow/font-picker/internal/picker"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envPickerID      = "FONT_PICKER_ID"
	envFamilies      = "FONT_PICKER_FAMILIES"
	envCategories    = "FONT_PICKER_CATEGORIES"
	envScripts       = "FONT_PICKER_SCRIPTS"
	envVariants      = "FONT_PICKER_VARIANTS"
	envLimit         = "FONT_PICKER_LIMIT"
	envSort          = "FONT_PICKER_SORT"
	envDefaultFamily = "FONT_PICKER_DEFAULT_FAMILY"
	envWidth         = "FONT_PICKER_WIDTH"
	envHeight        = "FONT_PICKER_HEIGHT"
	envShowFooter    = "FONT_PICKER_FOOTER"
	envVerbose       = "FONT_PICKER_VERBOSE"
	envTrace         = "FONT_PICKER_TRACE"
	envLogFile       = "FONT_PICKER_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("font-picker", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	pickerID := fs.String("picker-id", envOrDefault(env, envPickerID, ""), "selector suffix distinguishing multiple pickers (empty for the default)")
	families := fs.String("families", envOrDefault(env, envFamilies, ""), "comma-separated allow-list of font families")
	categories := fs.String("categories", envOrDefault(env, envCategories, ""), "comma-separated allow-list of font categories")
	scripts := fs.String("scripts", envOrDefault(env, envScripts, ""), "comma-separated allow-list of supported scripts")
	variants := fs.String("variants", envOrDefault(env, envVariants, ""), "comma-separated allow-list of font variants")
	limit := fs.Int("limit", envOrInt(env, envLimit, 0), "maximum number of catalog fonts (0 for no limit)")
	sortOrder := fs.String("sort", envOrDefault(env, envSort, ""), "catalog sort order: alphabet (default) or catalog")
	defaultFamily := fs.String("default-family", envOrDefault(env, envDefaultFamily, ""), "family selected before the user picks one")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *limit < 0 {
		return Config{}, fmt.Errorf("limit must be >= 0 (got %d)", *limit)
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			PickerID:      *pickerID,
			Families:      splitList(*families),
			Categories:    splitList(*categories),
			Scripts:       splitList(*scripts),
			Variants:      splitList(*variants),
			Limit:         *limit,
			Sort:          picker.SortOrder(*sortOrder),
			DefaultFamily: *defaultFamily,
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			Verbose:       *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"pickerId":      *pickerID,
			"families":      *families,
			"categories":    *categories,
			"scripts":       *scripts,
			"variants":      *variants,
			"limit":         strconv.Itoa(*limit),
			"sort":          *sortOrder,
			"defaultFamily": *defaultFamily,
			"width":         strconv.Itoa(*width),
			"height":        strconv.Itoa(*height),
			"footer":        strconv.FormatBool(*footer),
			"trace":         strconv.FormatBool(*trace),
			"verbose":       strconv.FormatBool(*verbose),
			"logFile":       *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// splitList parses a comma-separated flag value into trimmed entries.
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
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

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if !cfg.App.Sort.Valid() {
		return fmt.Errorf("unknown sort order %q", cfg.App.Sort)
	}
	return nil
}
