package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"logcatalog/internal/policies"
	"logcatalog/internal/ports"
	"logcatalog/internal/shared"
	"logcatalog/internal/types"
)

const (
	detailCommentSuffix = ".comment"
	detailCauseSuffix   = ".cause"
	detailActionSuffix  = ".action"
	detailLevelSuffix   = ".level"
)

// MessageCatalogGenerator merges log message declarations into the message
// catalog, its details catalog and the bundle metadata record.
type MessageCatalogGenerator struct {
	Resources ports.ResourcePort
	Reporter  ports.DiagnosticsPort
	Header    string
	Policy    policies.MessagePolicy
	Failure   policies.FailurePolicy
}

func NewMessageCatalogGenerator(resources ports.ResourcePort, reporter ports.DiagnosticsPort, header string, failure policies.FailurePolicy) MessageCatalogGenerator {
	return MessageCatalogGenerator{
		Resources: resources,
		Reporter:  reporter,
		Header:    header,
		Policy:    policies.NewMessagePolicy(),
		Failure:   failure,
	}
}

func (g MessageCatalogGenerator) Generate(ctx context.Context, decls types.Declarations) (types.RoundResult, error) {
	r := newRound(g.Resources, g.Reporter, g.Header, g.Failure)
	logger := log.Ctx(ctx)
	logger.Debug().Int("messages", len(decls.Messages)).Int("bundles", len(decls.Bundles)).Msg("message catalog generator invoked")

	if len(decls.Messages) == 0 {
		r.report(types.SeverityWarning, types.DiagnosticKindNone, types.Source{},
			"skipping LogMessages resource bundle generation, no log message is declared in the current round")
		return r.result(false, ""), nil
	}

	metadata := NewOrderedStore()
	r.load(ctx, MessagesMetadataID, metadata)

	name, ok, err := g.resolveBundleName(r, decls.Bundles, metadata)
	if err != nil || !ok {
		return r.result(false, ""), err
	}
	assert.NotEmpty(ctx, name, "resource bundle name must be resolved")

	catalogID := ResolveResourceID(name)
	detailsID := ResolveResourceID(DetailsBundleName(name))
	catalog := NewOrderedStore()
	details := NewOrderedStore()
	r.load(ctx, catalogID, catalog)
	r.load(ctx, detailsID, details)
	logger.Debug().Str("bundle", name).Int("messages", catalog.Len()).Msg("initial messages loaded")

	seen := map[string]struct{}{}
	for _, msg := range decls.Messages {
		if !msg.Element.Kind.IsVariable() {
			return r.fatal(configurationError(fmt.Sprintf(
				"the log message declaration %s is applied on an invalid element of kind %s", msg.ID, msg.Element.Kind)), msg.Source)
		}
		if msg.Element.Computed {
			return r.fatal(configurationError(
				"the log message declaration is not applied on a string constant field"), msg.Source)
		}
		logger.Debug().Str("id", msg.ID).Msg("processing message")
		if _, dup := seen[msg.ID]; dup {
			r.report(types.SeverityError, types.DiagnosticKindDuplicateID, msg.Source,
				fmt.Sprintf("duplicate use of message-id %s", msg.ID))
			continue
		}
		for _, problem := range g.Policy.Check(msg) {
			r.report(types.SeverityError, types.DiagnosticKindValidation, msg.Source, problem)
		}
		foldMessage(catalog, details, g.Policy.Normalize(msg))
		seen[msg.ID] = struct{}{}
	}
	logger.Debug().Int("messages", catalog.Len()).Msg("total messages including persisted ones")

	r.store(ctx, catalogID, catalog)
	r.store(ctx, detailsID, details)
	metadata.Put(ResourceBundleKey, name)
	r.store(ctx, MessagesMetadataID, metadata)

	r.report(types.SeverityInfo, types.DiagnosticKindNone, types.Source{},
		"log message catalog generation finished successfully")
	return r.result(true, name), nil
}

// resolveBundleName returns the bundle name for the round. ok is false
// when there is nothing to generate into.
func (g MessageCatalogGenerator) resolveBundleName(r *round, bundles []types.BundleDeclaration, metadata *OrderedStore) (string, bool, error) {
	tracker := NewBundleNameTracker()
	for _, decl := range bundles {
		if !decl.Element.Kind.IsVariable() {
			_, err := r.fatal(configurationError(fmt.Sprintf(
				"the resource bundle name declaration is applied on an invalid element of kind %s", decl.Element.Kind)), decl.Source)
			return "", false, err
		}
		if decl.Element.Computed {
			_, err := r.fatal(configurationError(
				"the resource bundle name value could not be computed, declare it only on a compile time constant string literal"), decl.Source)
			return "", false, err
		}
		tracker.Add(decl.Name, decl.Source)
	}

	if tracker.Len() == 0 {
		persisted, _ := metadata.Get(ResourceBundleKey)
		if shared.IsBlank(persisted) {
			r.report(types.SeverityWarning, types.DiagnosticKindNone, types.Source{},
				"skipping LogMessages resource bundle generation, no resource bundle name is declared in the current round or recorded by an earlier one")
			return "", false, nil
		}
		return strings.TrimSpace(persisted), true, nil
	}

	name, err := tracker.Resolve()
	if err != nil {
		_, err = r.fatal(err, types.Source{})
		return "", false, err
	}
	if err := ValidateBundleName(name); err != nil {
		_, err = r.fatal(err, tracker.Source(name))
		return "", false, err
	}
	return name, true, nil
}

func foldMessage(catalog *OrderedStore, details *OrderedStore, msg types.MessageRecord) {
	catalog.Put(msg.ID, msg.Message)
	if !shared.IsBlank(msg.Comment) {
		catalog.PutComment(msg.ID, msg.Comment)
		details.Put(msg.ID+detailCommentSuffix, msg.Comment)
	}
	details.Put(msg.ID+detailCauseSuffix, msg.Cause)
	details.Put(msg.ID+detailActionSuffix, msg.Action)
	details.Put(msg.ID+detailLevelSuffix, msg.Level)
}
