package adapters

import (
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/magiconair/properties"

	"logcatalog/internal/ports"
	"logcatalog/internal/types"
)

// PropertiesCatalogReader parses persisted catalogs with a standard
// .properties parser, which is how generated bundles are consumed.
type PropertiesCatalogReader struct {
	Resources ports.ResourcePort
}

func NewPropertiesCatalogReader(resources ports.ResourcePort) PropertiesCatalogReader {
	return PropertiesCatalogReader{Resources: resources}
}

func (a PropertiesCatalogReader) ReadCatalog(id types.ResourceID) (types.CatalogView, error) {
	reader, err := a.Resources.OpenResource(id)
	if err != nil {
		return types.CatalogView{}, err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return types.CatalogView{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to read catalog %s", id)).
			WithCause(err)
	}
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadBytes(data)
	if err != nil {
		return types.CatalogView{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("catalog %s is not a valid properties file", id)).
			WithCause(err)
	}
	return types.CatalogView{Resource: id, Entries: props.Map()}, nil
}

var _ ports.CatalogReaderPort = PropertiesCatalogReader{}
