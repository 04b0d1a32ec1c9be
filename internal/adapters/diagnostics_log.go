package adapters

import (
	"github.com/rs/zerolog"

	"logcatalog/internal/ports"
	"logcatalog/internal/types"
)

// DiagnosticsLogAdapter writes diagnostics to a zerolog logger.
type DiagnosticsLogAdapter struct {
	Logger zerolog.Logger
}

func NewDiagnosticsLogAdapter(logger zerolog.Logger) DiagnosticsLogAdapter {
	return DiagnosticsLogAdapter{Logger: logger}
}

func (a DiagnosticsLogAdapter) Report(d types.Diagnostic) {
	event := a.event(d.Severity)
	if d.Kind != types.DiagnosticKindNone {
		event = event.Str("kind", string(d.Kind))
	}
	if d.Source.File != "" {
		event = event.Str("file", d.Source.File)
	}
	if d.Source.Line > 0 {
		event = event.Int("line", d.Source.Line)
	}
	event.Msg(d.Message)
}

func (a DiagnosticsLogAdapter) event(severity types.Severity) *zerolog.Event {
	switch severity {
	case types.SeverityDebug:
		return a.Logger.Debug()
	case types.SeverityWarning:
		return a.Logger.Warn()
	case types.SeverityError:
		return a.Logger.Error()
	default:
		return a.Logger.Info()
	}
}

// DiagnosticsCollector keeps every reported diagnostic and forwards it to
// Next when set.
type DiagnosticsCollector struct {
	Next  ports.DiagnosticsPort
	Items types.Diagnostics
}

func (c *DiagnosticsCollector) Report(d types.Diagnostic) {
	c.Items = append(c.Items, d)
	if c.Next != nil {
		c.Next.Report(d)
	}
}

var (
	_ ports.DiagnosticsPort = DiagnosticsLogAdapter{}
	_ ports.DiagnosticsPort = (*DiagnosticsCollector)(nil)
)
