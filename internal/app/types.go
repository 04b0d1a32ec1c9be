package app

import "logcatalog/internal/types"

type GenerateRequest struct {
	DeclarationPaths []string
	OutputDir        string
	FailurePolicy    string
	CopyrightHolder  string
	HeaderFile       string
	// BuildDate pins the header year, e.g. from SOURCE_DATE_EPOCH.
	BuildDate string
}

type ValidateRequest struct {
	DeclarationPaths []string
	OutputDir        string
	FailurePolicy    string
}

// RoundSummary holds the results of the message and logger generators of
// one round.
type RoundSummary struct {
	Messages types.RoundResult
	Loggers  types.RoundResult
}

// Claimed reports whether either generator produced output.
func (s RoundSummary) Claimed() bool {
	return s.Messages.Claimed || s.Loggers.Claimed
}

// Failed reports whether a claimed generator was rejected by the failure
// policy.
func (s RoundSummary) Failed() bool {
	return (s.Messages.Claimed && !s.Messages.Succeeded) ||
		(s.Loggers.Claimed && !s.Loggers.Succeeded)
}

func (s RoundSummary) Diagnostics() types.Diagnostics {
	out := append(types.Diagnostics(nil), s.Messages.Diagnostics...)
	return append(out, s.Loggers.Diagnostics...)
}

func (s RoundSummary) Written() []types.ResourceID {
	out := append([]types.ResourceID(nil), s.Messages.Written...)
	return append(out, s.Loggers.Written...)
}

type InspectRequest struct {
	OutputDir  string
	BundleName string
}

type InspectResult struct {
	BundleName string
	Messages   []types.MessageDetails
	Loggers    []types.LoggerSummary
}
