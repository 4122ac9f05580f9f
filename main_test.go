package main

import (
	"testing"

	"github.com/typeflow/font-picker/internal/app"
	"github.com/typeflow/font-picker/internal/config"
	"github.com/typeflow/font-picker/internal/picker"
)

func TestProbeTerminalCoversStandardStreams(t *testing.T) {
	report := probeTerminal()
	for _, name := range []string{"stdin", "stdout", "stderr"} {
		if _, ok := report.Streams[name]; !ok {
			t.Fatalf("expected a probe entry for %s", name)
		}
	}
	if report.Source != "" && (report.Width <= 0 || report.Height <= 0) {
		t.Fatalf("expected a sized terminal when a source is reported, got %+v", report)
	}
}

func TestPickerSummaryDescribesConfiguredDropdown(t *testing.T) {
	summary := pickerSummary(app.Config{
		PickerID:      "preview",
		Families:      []string{"Roboto", "Lato"},
		Categories:    []string{"sans-serif"},
		Sort:          picker.SortAlphabet,
		DefaultFamily: "Lato",
		Limit:         5,
		Width:         80,
		Height:        24,
	})
	if summary["container"] != "font-picker-preview" {
		t.Fatalf("expected suffixed container id, got %v", summary["container"])
	}
	if summary["sort"] != "alphabet" {
		t.Fatalf("expected alphabet sort, got %v", summary["sort"])
	}
	if summary["allowedFonts"] != 2 || summary["filters"] != 1 || summary["limit"] != 5 {
		t.Fatalf("unexpected catalog constraints: %+v", summary)
	}
	if summary["defaultFamily"] != "Lato" {
		t.Fatalf("expected default family Lato, got %v", summary["defaultFamily"])
	}
	if summary["geometry"] != "80x24" {
		t.Fatalf("expected 80x24 geometry, got %v", summary["geometry"])
	}
	if summary["seedFonts"].(int) == 0 {
		t.Fatalf("expected seed table size in summary")
	}
}

func TestPickerSummarySkipsUnsetOptionals(t *testing.T) {
	summary := pickerSummary(app.Config{})
	if summary["container"] != "font-picker" {
		t.Fatalf("expected bare container id, got %v", summary["container"])
	}
	if _, ok := summary["defaultFamily"]; ok {
		t.Fatalf("expected no default family entry, got %v", summary["defaultFamily"])
	}
	if _, ok := summary["geometry"]; ok {
		t.Fatalf("expected no geometry entry, got %v", summary["geometry"])
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{PickerID: "preview"},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{"pickerId": "preview"},
		Args:  []string{"--picker-id", "preview"},
	}

	payload := startupTracePayload(cfg)

	flags, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flags["pickerId"] != "preview" {
		t.Fatalf("expected pickerId flag preview, got %v", flags["pickerId"])
	}
	if flags["trace"] != true || flags["logFile"] != "trace.log" {
		t.Fatalf("expected logging flags in payload, got %v", flags)
	}
	picked, ok := payload["picker"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected picker summary in payload")
	}
	if picked["container"] != "font-picker-preview" {
		t.Fatalf("expected configured container in summary, got %v", picked["container"])
	}
	if _, ok := payload["terminal"].(terminalReport); !ok {
		t.Fatalf("expected terminal report in payload")
	}
}
