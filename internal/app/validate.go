package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/afero"

	"logcatalog/internal/adapters"
	"logcatalog/internal/policies"
	"logcatalog/internal/shared"
)

// Validate runs a full round against the existing catalogs without
// persisting anything. Writes land in an in-memory layer over the output
// directory that is discarded afterwards.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (RoundSummary, error) {
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
	decls, err := s.Declarations.LoadDeclarations(shared.TrimAll(req.DeclarationPaths))
	if err != nil {
		return RoundSummary{}, err
	}
	base := afero.NewReadOnlyFs(s.OutputFs(outputDir))
	overlay := afero.NewCopyOnWriteFs(base, afero.NewMemMapFs())
	resources := adapters.NewFsResourceAdapter(overlay)
	header, err := s.renderHeader("", "", "")
	if err != nil {
		return RoundSummary{}, err
	}
	return s.runRound(ctx, decls, resources, header, failure)
}
