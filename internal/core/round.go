package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"logcatalog/internal/policies"
	"logcatalog/internal/ports"
	"logcatalog/internal/types"
)

const ResourceBundleKey = "resourceBundle"

var (
	// MessagesMetadataID records the bundle name chosen by earlier rounds.
	MessagesMetadataID = ResolveResourceID("META-INF/logmessages/LogMessagesMetadata")
	// LoggerMetadataID holds description, subsystem and publish per logger.
	LoggerMetadataID = ResolveResourceID("META-INF/loggerinfo/LoggerInfoMetadata")
)

// aborter is implemented by writers that can discard staged output.
type aborter interface {
	Abort() error
}

// round carries the diagnostics and written resources of one generator run.
type round struct {
	resources   ports.ResourcePort
	reporter    ports.DiagnosticsPort
	header      string
	failure     policies.FailurePolicy
	diagnostics types.Diagnostics
	written     []types.ResourceID
}

func newRound(resources ports.ResourcePort, reporter ports.DiagnosticsPort, header string, failure policies.FailurePolicy) *round {
	return &round{
		resources: resources,
		reporter:  reporter,
		header:    header,
		failure:   failure,
	}
}

func (r *round) report(severity types.Severity, kind types.DiagnosticKind, source types.Source, msg string) {
	d := types.Diagnostic{Severity: severity, Kind: kind, Message: msg, Source: source}
	r.diagnostics = append(r.diagnostics, d)
	if r.reporter != nil {
		r.reporter.Report(d)
	}
}

// fatal reports err as a configuration error and ends the round unclaimed.
func (r *round) fatal(err error, source types.Source) (types.RoundResult, error) {
	r.report(types.SeverityError, types.DiagnosticKindConfiguration, source, errorText(err))
	return r.result(false, ""), err
}

func (r *round) result(claimed bool, bundle string) types.RoundResult {
	return types.RoundResult{
		Claimed:     claimed,
		Succeeded:   r.failure.Succeeded(claimed, r.diagnostics),
		BundleName:  bundle,
		Written:     r.written,
		Diagnostics: r.diagnostics,
	}
}

// load fills store from id. A resource that does not exist yet is the
// normal first-run case and is not reported.
func (r *round) load(ctx context.Context, id types.ResourceID, store *OrderedStore) {
	reader, err := r.resources.OpenResource(id)
	if err != nil {
		if errbuilder.CodeOf(err) == errbuilder.CodeNotFound {
			log.Ctx(ctx).Debug().Str("resource", id.LogicalName()).Msg("no persisted resource")
			return
		}
		r.report(types.SeverityWarning, types.DiagnosticKindIO, types.Source{},
			fmt.Sprintf("unable to load resource bundle %s: %s", id, errorText(err)))
		return
	}
	defer func() {
		if err := reader.Close(); err != nil {
			r.report(types.SeverityWarning, types.DiagnosticKindIO, types.Source{},
				fmt.Sprintf("unable to close reader for resource bundle %s: %s", id, err))
		}
	}()
	if err := LoadStore(reader, store); err != nil {
		r.report(types.SeverityWarning, types.DiagnosticKindIO, types.Source{},
			fmt.Sprintf("unable to load resource bundle %s: %s", id, causeText(err)))
	}
}

// store writes store to id. Failures are reported and do not stop the
// writes that follow.
func (r *round) store(ctx context.Context, id types.ResourceID, store *OrderedStore) {
	if store.Len() == 0 {
		log.Ctx(ctx).Debug().Str("resource", id.LogicalName()).Msg("nothing to store")
		return
	}
	writer, err := r.resources.CreateResource(id)
	if err != nil {
		r.storeFailed(id, errorText(err))
		return
	}
	written, err := WriteStore(writer, store, r.header)
	if err != nil {
		if a, ok := writer.(aborter); ok {
			_ = a.Abort()
		} else {
			_ = writer.Close()
		}
		r.storeFailed(id, causeText(err))
		return
	}
	if err := writer.Close(); err != nil {
		r.storeFailed(id, err.Error())
		return
	}
	if written {
		r.written = append(r.written, id)
		log.Ctx(ctx).Debug().Str("resource", id.LogicalName()).Int("entries", store.Len()).Msg("resource stored")
	}
}

func (r *round) storeFailed(id types.ResourceID, reason string) {
	r.report(types.SeverityError, types.DiagnosticKindIO, types.Source{},
		fmt.Sprintf("unable to store resource bundle %s: %s", id, reason))
}

func configurationError(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg)
}

func errorText(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}

// causeText includes the underlying cause of an errbuilder error.
func causeText(err error) string {
	text := errorText(err)
	if cause := errors.Unwrap(err); cause != nil {
		return text + ": " + cause.Error()
	}
	return text
}
