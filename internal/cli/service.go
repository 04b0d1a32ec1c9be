package cli

import "logcatalog/internal/app"

// newAppService is a variable so tests can swap in in-memory adapters.
var newAppService = func() app.Service {
	return app.NewService()
}
