// Package command funnels picker mutations through a single traced
// execution point.
package command

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/typeflow/font-picker/internal/logging/events"
)

// Request encapsulates one picker mutation.
type Request struct {
	ID    string
	Label string
	Run   func() error
	Info  string // success message, shown when verbose
}

// ActionResult communicates the outcome of executing a request.
type ActionResult struct {
	Info string
	Err  error
}

// Bus coordinates the execution of picker mutations.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute runs the mutation synchronously on the update loop (the rendered
// tree is not goroutine-safe) and returns a command that only delivers the
// traced result message.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	var err error
	if req.Run != nil {
		err = req.Run()
	}
	events.Command.Result(req.ID, req.Label, err)
	result := ActionResult{Info: req.Info}
	if err != nil {
		result = ActionResult{Err: err}
	}
	return func() tea.Msg {
		return result
	}
}
