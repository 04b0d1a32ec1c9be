package app

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"logcatalog/internal/adapters"
	"logcatalog/internal/ports"
)

type Service struct {
	Declarations ports.DeclarationSourcePort
	Reporter     ports.DiagnosticsPort
	// Files reads inputs such as header templates.
	Files afero.Fs
	// OutputFs returns the filesystem rooted at an output directory.
	OutputFs func(dir string) afero.Fs
	Clock    func() time.Time
}

func NewService() Service {
	osFs := afero.NewOsFs()
	return Service{
		Declarations: adapters.NewDeclarationFileAdapter(),
		Reporter:     adapters.NewDiagnosticsLogAdapter(log.Logger),
		Files:        osFs,
		OutputFs: func(dir string) afero.Fs {
			return afero.NewBasePathFs(osFs, dir)
		},
		Clock: time.Now,
	}
}
