package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/typeflow/font-picker/internal/app"
	"github.com/typeflow/font-picker/internal/catalog"
	"github.com/typeflow/font-picker/internal/config"
	"github.com/typeflow/font-picker/internal/logging"
	"github.com/typeflow/font-picker/internal/logging/events"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles the parsed invocation, the dropdown the
// configuration asks for, and the terminal it will render on.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"picker":   pickerSummary(cfg.App),
		"terminal": probeTerminal(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

// pickerSummary describes the configured dropdown before any catalog fetch
// has run.
func pickerSummary(cfg app.Config) map[string]interface{} {
	summary := map[string]interface{}{
		"container":    "font-picker" + catalog.SelectorSuffix(cfg.PickerID),
		"sort":         string(cfg.Sort),
		"seedFonts":    len(catalog.BuiltinFonts()),
		"allowedFonts": len(cfg.Families),
		"filters":      len(cfg.Categories) + len(cfg.Scripts) + len(cfg.Variants),
		"limit":        cfg.Limit,
	}
	if cfg.DefaultFamily != "" {
		summary["defaultFamily"] = cfg.DefaultFamily
	}
	if cfg.Width > 0 || cfg.Height > 0 {
		summary["geometry"] = fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)
	}
	return summary
}

// terminalReport records which standard streams are terminals and the size of
// the first stream that reports one.
type terminalReport struct {
	Width   int             `json:"width,omitempty"`
	Height  int             `json:"height,omitempty"`
	Source  string          `json:"source,omitempty"`
	Streams map[string]bool `json:"streams"`
}

// probeTerminal checks the standard streams, preferring stdout for geometry
// since the dropdown renders there.
func probeTerminal() terminalReport {
	streams := []struct {
		name string
		file *os.File
	}{
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
		{"stdin", os.Stdin},
	}
	report := terminalReport{Streams: make(map[string]bool, len(streams))}
	for _, s := range streams {
		fd := int(s.file.Fd())
		tty := term.IsTerminal(fd)
		report.Streams[s.name] = tty
		if !tty || report.Source != "" {
			continue
		}
		if w, h, err := term.GetSize(fd); err == nil {
			report.Width = w
			report.Height = h
			report.Source = s.name
		}
	}
	return report
}
