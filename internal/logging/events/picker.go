package events

import "github.com/typeflow/font-picker/internal/logging"

type PickerTracer struct{}

type FilterTracer struct{}

var (
	Picker = PickerTracer{}
	Filter = FilterTracer{}
)

func (PickerTracer) Cursor(pos int) {
	logging.Trace("picker.cursor", map[string]interface{}{"cursor": pos})
}

func (PickerTracer) Activate(family string) {
	logging.Trace("picker.activate", map[string]interface{}{"family": family})
}

func (PickerTracer) Highlight(family string) {
	logging.Trace("picker.highlight", map[string]interface{}{"family": family})
}

func (PickerTracer) EntryInserted(family string, index int) {
	logging.Trace("picker.entry-inserted", map[string]interface{}{"family": family, "index": index})
}

func (PickerTracer) EntryRemoved(family string) {
	logging.Trace("picker.entry-removed", map[string]interface{}{"family": family})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) WordBackspace(filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) CursorWord(pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"cursor": pos})
}
