package app

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"logcatalog/internal/adapters"
	"logcatalog/internal/core"
)

// Inspect reads the generated catalogs back as a consumer would see them.
func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	reader := adapters.NewPropertiesCatalogReader(adapters.NewFsResourceAdapter(s.OutputFs(outputDir)))

	bundle := strings.TrimSpace(req.BundleName)
	if bundle == "" {
		metadata, err := reader.ReadCatalog(core.MessagesMetadataID)
		if err != nil && !isNotFound(err) {
			return InspectResult{}, err
		}
		bundle = strings.TrimSpace(metadata.Entries[core.ResourceBundleKey])
	}

	result := InspectResult{BundleName: bundle}
	if bundle != "" {
		catalog, err := reader.ReadCatalog(core.ResolveResourceID(bundle))
		if err != nil {
			return InspectResult{}, err
		}
		details, err := reader.ReadCatalog(core.ResolveResourceID(core.DetailsBundleName(bundle)))
		if err != nil && !isNotFound(err) {
			return InspectResult{}, err
		}
		result.Messages = core.JoinMessageDetails(catalog.Entries, details.Entries)
	}

	loggers, err := reader.ReadCatalog(core.LoggerMetadataID)
	if err != nil && !isNotFound(err) {
		return InspectResult{}, err
	}
	result.Loggers = core.ParseLoggerMetadata(loggers.Entries)

	if result.BundleName == "" && len(result.Loggers) == 0 {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no generated catalogs found in output directory")
	}
	return result, nil
}

func isNotFound(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeNotFound
}
