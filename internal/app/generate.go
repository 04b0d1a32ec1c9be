package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"logcatalog/internal/adapters"
	"logcatalog/internal/core"
	"logcatalog/internal/policies"
	"logcatalog/internal/ports"
	"logcatalog/internal/shared"
	"logcatalog/internal/types"
)

// Generate runs one round against the catalogs in the output directory and
// persists the merged result.
func (s Service) Generate(ctx context.Context, req GenerateRequest) (RoundSummary, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return RoundSummary{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	failure, err := policies.ParseFailurePolicy(req.FailurePolicy)
	if err != nil {
		return RoundSummary{}, err
	}
	header, err := s.renderHeader(req.CopyrightHolder, req.HeaderFile, req.BuildDate)
	if err != nil {
		return RoundSummary{}, err
	}
	decls, err := s.Declarations.LoadDeclarations(shared.TrimAll(req.DeclarationPaths))
	if err != nil {
		return RoundSummary{}, err
	}
	resources := adapters.NewFsResourceAdapter(s.OutputFs(outputDir))
	return s.runRound(ctx, decls, resources, header, failure)
}

// runRound runs both generators. They are independent: a fatal error in
// the message round does not stop the logger round. The first fatal error
// is returned.
func (s Service) runRound(ctx context.Context, decls types.Declarations, resources ports.ResourcePort, header string, failure policies.FailurePolicy) (RoundSummary, error) {
	summary := RoundSummary{}
	var firstErr error
	if decls.Empty() {
		log.Ctx(ctx).Debug().Msg("no declarations in this round")
	}

	messages, err := core.NewMessageCatalogGenerator(resources, s.Reporter, header, failure).Generate(ctx, decls)
	summary.Messages = messages
	if err != nil {
		firstErr = err
	}
	loggers, err := core.NewLoggerMetadataGenerator(resources, s.Reporter, header, failure).Generate(ctx, decls)
	summary.Loggers = loggers
	if err != nil && firstErr == nil {
		firstErr = err
	}

	log.Ctx(ctx).Debug().
		Bool("messages_claimed", messages.Claimed).
		Bool("loggers_claimed", loggers.Claimed).
		Int("written", len(summary.Written())).
		Msg("round finished")
	return summary, firstErr
}

func (s Service) renderHeader(holder string, headerFile string, buildDate string) (string, error) {
	header := core.Header{Holder: holder}
	if path := strings.TrimSpace(headerFile); path != "" {
		data, err := afero.ReadFile(s.Files, path)
		if err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("header file not found").
				WithCause(err)
		}
		header.Template = string(data)
	}
	year := s.Clock().Year()
	if pinned := adapters.ParseBuildDate(buildDate); !pinned.IsZero() {
		year = pinned.Year()
	} else if strings.TrimSpace(buildDate) != "" {
		log.Warn().Str("build_date", buildDate).Msg("ignoring unparseable build date")
	}
	return header.Render(year), nil
}
