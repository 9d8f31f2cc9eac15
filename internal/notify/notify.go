// Package notify renders user-facing messages. There is no browser toast in
// front of the service, so notifications land in the structured log where the
// local UI can tail them.
package notify

import (
	"github.com/rs/zerolog"

	"github.com/hsvanberg/offert-service/internal/service"
)

type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(title, description string, severity service.Severity) {
	event := n.log.Info()
	if severity == service.SeverityError {
		event = n.log.Warn()
	}
	event.
		Str("severity", string(severity)).
		Str("title", title).
		Msg(description)
}
