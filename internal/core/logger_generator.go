package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"logcatalog/internal/policies"
	"logcatalog/internal/ports"
	"logcatalog/internal/shared"
	"logcatalog/internal/types"
)

const (
	loggerDescriptionSuffix = ".description"
	loggerSubsystemSuffix   = ".subsystem"
	loggerPublishSuffix     = ".publish"
)

// LoggerMetadataGenerator merges logger declarations into the logger
// metadata catalog.
type LoggerMetadataGenerator struct {
	Resources ports.ResourcePort
	Reporter  ports.DiagnosticsPort
	Header    string
	Policy    policies.LoggerPolicy
	Failure   policies.FailurePolicy
}

func NewLoggerMetadataGenerator(resources ports.ResourcePort, reporter ports.DiagnosticsPort, header string, failure policies.FailurePolicy) LoggerMetadataGenerator {
	return LoggerMetadataGenerator{
		Resources: resources,
		Reporter:  reporter,
		Header:    header,
		Policy:    policies.NewLoggerPolicy(),
		Failure:   failure,
	}
}

func (g LoggerMetadataGenerator) Generate(ctx context.Context, decls types.Declarations) (types.RoundResult, error) {
	r := newRound(g.Resources, g.Reporter, g.Header, g.Failure)
	logger := log.Ctx(ctx)
	logger.Debug().Int("loggers", len(decls.Loggers)).Msg("logger metadata generator invoked")

	if len(decls.Loggers) == 0 {
		return r.result(false, ""), nil
	}

	metadata := NewOrderedStore()
	r.load(ctx, LoggerMetadataID, metadata)

	accepted := map[string]types.LoggerRecord{}
	for _, rec := range decls.Loggers {
		if !rec.Element.Kind.IsVariable() || rec.Element.Computed {
			return r.fatal(configurationError(
				"logger name must be a constant string literal value, it cannot be a compile time computed expression; "+
					"check that the logger declaration is on the logger name constant"), rec.Source)
		}
		logger.Debug().Str("logger", rec.Name).Str("element", rec.Element.Name).Msg("processing logger")
		for _, problem := range g.Policy.Check(rec) {
			r.report(types.SeverityError, types.DiagnosticKindValidation, rec.Source, problem)
		}
		if prev, ok := accepted[rec.Name]; ok {
			if g.Policy.Same(prev, rec) {
				continue
			}
			r.report(types.SeverityWarning, types.DiagnosticKindOverwrite, rec.Source,
				fmt.Sprintf("overwriting entry for logger %s", rec.Name))
		}
		accepted[rec.Name] = rec
	}

	names := make([]string, 0, len(accepted))
	for name := range accepted {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		renderLogger(metadata, accepted[name])
	}
	logger.Debug().Int("entries", metadata.Len()).Msg("loggers found so far")

	r.report(types.SeverityInfo, types.DiagnosticKindNone, types.Source{}, "generating logger metadata")
	r.store(ctx, LoggerMetadataID, metadata)
	return r.result(true, ""), nil
}

func renderLogger(metadata *OrderedStore, rec types.LoggerRecord) {
	metadata.Put(rec.Name+loggerDescriptionSuffix, rec.Description)
	metadata.Put(rec.Name+loggerSubsystemSuffix, rec.Subsystem)
	metadata.Put(rec.Name+loggerPublishSuffix, shared.FormatBool(rec.Published()))
}
