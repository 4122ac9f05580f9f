package events

import "github.com/typeflow/font-picker/internal/logging"

type DismissTracer struct{}

type CommandTracer struct{}

var (
	Dismiss = DismissTracer{}
	Command = CommandTracer{}
)

func (DismissTracer) Expand() {
	logging.Trace("dismiss.expand", nil)
}

func (DismissTracer) Collapse() {
	logging.Trace("dismiss.collapse", nil)
}

func (DismissTracer) OutsideActivation(targetID string) {
	logging.Trace("dismiss.outside", map[string]interface{}{"target": targetID})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string, err error) {
	payload := map[string]interface{}{"id": id, "label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
