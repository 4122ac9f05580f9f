// Package dispatcher routes backend fetch events into the picker facade.
package dispatcher

import (
	"github.com/typeflow/font-picker/internal/backend"
	"github.com/typeflow/font-picker/internal/picker"
)

// Result reports what a handled event changed.
type Result struct {
	ListRendered bool
	FetchErr     error
}

type Dispatcher struct {
	picker *picker.Picker
}

func New(p *picker.Picker) *Dispatcher {
	return &Dispatcher{picker: p}
}

// Handle applies a fetch outcome to the picker. The view must refresh when
// ListRendered is set; a fetch error is already absorbed by the picker and
// reported here for the status line only.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	d.picker.ApplyFetch(evt.List, evt.Err)
	return Result{ListRendered: evt.Err == nil, FetchErr: evt.Err}
}
