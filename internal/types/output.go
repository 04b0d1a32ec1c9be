package types

// RoundResult is the outcome of one generator over one round.
// Claimed is false when there was nothing to process or a fatal
// configuration error stopped the round.
type RoundResult struct {
	Claimed     bool
	Succeeded   bool
	BundleName  string
	Written     []ResourceID
	Diagnostics Diagnostics
}

// CatalogView is a catalog as a consumer reads it back: values unescaped.
type CatalogView struct {
	Resource ResourceID
	Entries  map[string]string
}

// MessageDetails joins a catalog message with its details entries.
type MessageDetails struct {
	ID      string
	Message string
	Comment string
	Cause   string
	Action  string
	Level   string
}

type LoggerSummary struct {
	Name        string
	Description string
	Subsystem   string
	Publish     bool
}
