package app

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"logcatalog/internal/adapters"
)

const teaYAML = `bundles:
  - name: com.foo.bar.LogMessages
    element:
      name: RB
      kind: field
messages:
  - id: AS-EJB-00001
    message: "Some error occurred: {0}"
    comment: Parameter 0 is the error.
    cause: The bean failed.
    action: Check the log.
    level: SEVERE
  - id: AS-EJB-00002
    message: |-
      Initialized.
      Ready.
loggers:
  - name: javax.enterprise.ejb
    description: Main EJB Logger
    subsystem: EJB
`

const outputDir = "/out"

func newTestService(t *testing.T, files map[string]string) (Service, afero.Fs, *adapters.DiagnosticsCollector) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
	}
	collector := &adapters.DiagnosticsCollector{}
	service := Service{
		Declarations: adapters.DeclarationFileAdapter{Fs: fsys},
		Reporter:     collector,
		Files:        fsys,
		OutputFs: func(dir string) afero.Fs {
			return afero.NewBasePathFs(fsys, dir)
		},
		Clock: func() time.Time {
			return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
		},
	}
	return service, fsys, collector
}

func readFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	return string(data)
}
