// Package app bootstraps the rendered tree, the catalog service, and the
// Bubble Tea program.
package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/typeflow/font-picker/internal/backend"
	"github.com/typeflow/font-picker/internal/catalog"
	"github.com/typeflow/font-picker/internal/dom"
	"github.com/typeflow/font-picker/internal/picker"
	"github.com/typeflow/font-picker/internal/state"
	"github.com/typeflow/font-picker/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	PickerID      string
	Families      []string
	Categories    []string
	Scripts       []string
	Variants      []string
	Limit         int
	Sort          picker.SortOrder
	DefaultFamily string
	Width         int
	Height        int
	ShowFooter    bool
	Verbose       bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	doc := dom.NewDocument()
	container := doc.CreateElement("font-picker" + catalog.SelectorSuffix(cfg.PickerID))
	doc.Root().AppendChild(container)

	store := state.NewFontStore()
	svc := catalog.NewLibrary(store, catalog.Options{
		PickerID:      cfg.PickerID,
		Families:      cfg.Families,
		Categories:    cfg.Categories,
		Scripts:       cfg.Scripts,
		Variants:      cfg.Variants,
		Limit:         cfg.Limit,
		DefaultFamily: cfg.DefaultFamily,
		Downloader:    backend.NewThrottledDownloader(nil, 250*time.Millisecond),
	})

	p, err := picker.New(doc, picker.Config{Sort: cfg.Sort}, svc)
	if err != nil {
		return fmt.Errorf("mount picker: %w", err)
	}

	fetcher := backend.NewFetcher(svc)
	defer fetcher.Stop()

	model := ui.NewModel(doc, p, svc, fetcher, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
