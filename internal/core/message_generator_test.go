package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logcatalog/internal/policies"
	"logcatalog/internal/types"
)

const (
	testHeader      = "# h\n\n"
	teaCatalog      = "com/foo/bar/LogMessages.properties"
	teaDetails      = "com/foo/bar/LogMessages_details.properties"
	messageMetadata = "META-INF/logmessages/LogMessagesMetadata.properties"
)

func teaDeclarations() types.Declarations {
	return types.Declarations{
		Bundles: []types.BundleDeclaration{
			{Name: "com.foo.bar.LogMessages", Element: types.Element{Name: "RB", Kind: types.ElementKindField}},
		},
		Messages: []types.MessageRecord{
			{
				ID:      "AS-EJB-00001",
				Message: "Some error occurred: {0}",
				Comment: "Parameter 0 is the error.",
				Cause:   "c",
				Action:  "a",
				Level:   types.LevelSevere,
				Element: types.Element{Name: "ERROR_MSG", Kind: types.ElementKindField},
			},
			{ID: "AS-EJB-00002", Message: "Initialized."},
		},
	}
}

func newTestMessageGenerator(resources *memResources, reporter *recordingReporter, failure policies.FailurePolicy) MessageCatalogGenerator {
	return NewMessageCatalogGenerator(resources, reporter, testHeader, failure)
}

func TestMessageGeneratorFreshRound(t *testing.T) {
	resources := newMemResources()
	reporter := &recordingReporter{}

	result, err := newTestMessageGenerator(resources, reporter, policies.FailureLenient).Generate(t.Context(), teaDeclarations())
	require.NoError(t, err)
	assert.True(t, result.Claimed)
	assert.True(t, result.Succeeded)
	assert.Equal(t, "com.foo.bar.LogMessages", result.BundleName)
	assert.False(t, result.Diagnostics.HasErrors())

	want := map[string]string{
		teaCatalog: testHeader +
			"# Parameter 0 is the error.\nAS-EJB-00001=Some error occurred: {0}\n\n" +
			"AS-EJB-00002=Initialized.\n\n",
		teaDetails: testHeader +
			"AS-EJB-00001.action=a\n\n" +
			"AS-EJB-00001.cause=c\n\n" +
			"AS-EJB-00001.comment=Parameter 0 is the error.\n\n" +
			"AS-EJB-00001.level=SEVERE\n\n" +
			"AS-EJB-00002.action=\n\n" +
			"AS-EJB-00002.cause=\n\n" +
			"AS-EJB-00002.level=INFO\n\n",
		messageMetadata: testHeader + "resourceBundle=com.foo.bar.LogMessages\n\n",
	}
	if diff := cmp.Diff(want, resources.files); diff != "" {
		t.Fatalf("unexpected resources (-want +got):\n%s", diff)
	}

	written := make([]string, 0, len(result.Written))
	for _, id := range result.Written {
		written = append(written, id.LogicalName())
	}
	if diff := cmp.Diff([]string{teaCatalog, teaDetails, messageMetadata}, written); diff != "" {
		t.Fatalf("unexpected written resources (-want +got):\n%s", diff)
	}
}

func TestMessageGeneratorIdempotent(t *testing.T) {
	resources := newMemResources()
	gen := newTestMessageGenerator(resources, &recordingReporter{}, policies.FailureLenient)

	_, err := gen.Generate(t.Context(), teaDeclarations())
	require.NoError(t, err)
	first := map[string]string{}
	for name, content := range resources.files {
		first[name] = content
	}

	_, err = gen.Generate(t.Context(), teaDeclarations())
	require.NoError(t, err)
	if diff := cmp.Diff(first, resources.files); diff != "" {
		t.Fatalf("second round changed resources (-want +got):\n%s", diff)
	}
}

func TestMessageGeneratorMergesPersistedEntries(t *testing.T) {
	resources := newMemResources()
	resources.files[teaCatalog] = "#\n# old header\n#\n\n# kept comment\nAS-EJB-00099=Old message\n\nAS-EJB-00002=Stale text\n"

	_, err := newTestMessageGenerator(resources, &recordingReporter{}, policies.FailureLenient).Generate(t.Context(), teaDeclarations())
	require.NoError(t, err)

	want := testHeader +
		"# Parameter 0 is the error.\nAS-EJB-00001=Some error occurred: {0}\n\n" +
		"AS-EJB-00002=Initialized.\n\n" +
		"# kept comment\nAS-EJB-00099=Old message\n\n"
	if diff := cmp.Diff(want, resources.files[teaCatalog]); diff != "" {
		t.Fatalf("unexpected catalog (-want +got):\n%s", diff)
	}
}

func TestMessageGeneratorBundleFromMetadata(t *testing.T) {
	resources := newMemResources()
	resources.files[messageMetadata] = "resourceBundle = com.foo.bar.LogMessages\n"

	decls := teaDeclarations()
	decls.Bundles = nil
	result, err := newTestMessageGenerator(resources, &recordingReporter{}, policies.FailureLenient).Generate(t.Context(), decls)
	require.NoError(t, err)
	assert.True(t, result.Claimed)
	assert.Equal(t, "com.foo.bar.LogMessages", result.BundleName)
	assert.Contains(t, resources.files, teaCatalog)
}

func TestMessageGeneratorSkips(t *testing.T) {
	tests := []struct {
		name  string
		decls types.Declarations
	}{
		{
			name:  "no messages",
			decls: types.Declarations{Bundles: teaDeclarations().Bundles},
		},
		{
			name:  "no bundle name anywhere",
			decls: types.Declarations{Messages: teaDeclarations().Messages},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resources := newMemResources()
			reporter := &recordingReporter{}
			result, err := newTestMessageGenerator(resources, reporter, policies.FailureLenient).Generate(t.Context(), tt.decls)
			require.NoError(t, err)
			assert.False(t, result.Claimed)
			assert.False(t, result.Succeeded)
			assert.Empty(t, resources.created)
			require.Len(t, reporter.items, 1)
			assert.Equal(t, types.SeverityWarning, reporter.items[0].Severity)
			assert.Contains(t, reporter.items[0].Message, "skipping LogMessages resource bundle generation")
		})
	}
}

func TestMessageGeneratorConfigurationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.Declarations)
		wantMsg string
	}{
		{
			name: "bundle name without suffix",
			mutate: func(d *types.Declarations) {
				d.Bundles[0].Name = "com.foo.bar.EJBLogMessagesCatalog"
			},
			wantMsg: "the resource bundle name 'com.foo.bar.EJBLogMessagesCatalog' does not end with 'LogMessages'",
		},
		{
			name: "two bundle names",
			mutate: func(d *types.Declarations) {
				d.Bundles = append(d.Bundles, types.BundleDeclaration{Name: "com.foo.bar.JavaBeanLogMessages"})
			},
			wantMsg: "more than one resource bundle name specified, found com.foo.bar.JavaBeanLogMessages, com.foo.bar.LogMessages; specify only one resource bundle name per module",
		},
		{
			name: "computed bundle name",
			mutate: func(d *types.Declarations) {
				d.Bundles[0].Element.Computed = true
			},
			wantMsg: "the resource bundle name value could not be computed, declare it only on a compile time constant string literal",
		},
		{
			name: "bundle name on a method",
			mutate: func(d *types.Declarations) {
				d.Bundles[0].Element.Kind = types.ElementKindMethod
			},
			wantMsg: "the resource bundle name declaration is applied on an invalid element of kind method",
		},
		{
			name: "computed message",
			mutate: func(d *types.Declarations) {
				d.Messages[1].Element.Computed = true
			},
			wantMsg: "the log message declaration is not applied on a string constant field",
		},
		{
			name: "message on a class",
			mutate: func(d *types.Declarations) {
				d.Messages[0].Element.Kind = types.ElementKindClass
			},
			wantMsg: "the log message declaration AS-EJB-00001 is applied on an invalid element of kind class",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resources := newMemResources()
			reporter := &recordingReporter{}
			decls := teaDeclarations()
			tt.mutate(&decls)

			result, err := newTestMessageGenerator(resources, reporter, policies.FailureLenient).Generate(t.Context(), decls)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
			assert.Equal(t, tt.wantMsg, errorText(err))
			assert.False(t, result.Claimed)
			assert.Empty(t, resources.created)
			assert.Empty(t, resources.files)

			configuration := reporter.items.OfKind(types.DiagnosticKindConfiguration)
			require.Len(t, configuration, 1)
			assert.Equal(t, types.SeverityError, configuration[0].Severity)
		})
	}
}

func TestMessageGeneratorDuplicateID(t *testing.T) {
	decls := teaDeclarations()
	decls.Messages = append(decls.Messages, types.MessageRecord{
		ID:      "AS-EJB-00002",
		Message: "Replacement.",
		Source:  types.Source{File: "Other.java", Line: 3},
	})

	tests := []struct {
		name          string
		failure       policies.FailurePolicy
		wantSucceeded bool
	}{
		{name: "lenient", failure: policies.FailureLenient, wantSucceeded: true},
		{name: "strict", failure: policies.FailureStrict, wantSucceeded: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resources := newMemResources()
			reporter := &recordingReporter{}
			result, err := newTestMessageGenerator(resources, reporter, tt.failure).Generate(t.Context(), decls)
			require.NoError(t, err)
			assert.True(t, result.Claimed)
			assert.Equal(t, tt.wantSucceeded, result.Succeeded)

			duplicates := reporter.items.OfKind(types.DiagnosticKindDuplicateID)
			require.Len(t, duplicates, 1)
			assert.Equal(t, "duplicate use of message-id AS-EJB-00002", duplicates[0].Message)
			assert.Equal(t, "Other.java", duplicates[0].Source.File)

			assert.Contains(t, resources.files[teaCatalog], "AS-EJB-00002=Initialized.\n")
			assert.NotContains(t, resources.files[teaCatalog], "Replacement.")
		})
	}
}

func TestMessageGeneratorSevereWithoutDetails(t *testing.T) {
	decls := teaDeclarations()
	decls.Messages[0].Cause = ""
	decls.Messages[0].Action = " "

	resources := newMemResources()
	reporter := &recordingReporter{}
	result, err := newTestMessageGenerator(resources, reporter, policies.FailureLenient).Generate(t.Context(), decls)
	require.NoError(t, err)
	assert.True(t, result.Claimed)

	var messages []string
	for _, d := range reporter.items.OfKind(types.DiagnosticKindValidation) {
		messages = append(messages, d.Message)
	}
	want := []string{
		"missing cause for message id 'AS-EJB-00001' for levels SEVERE and above",
		"missing action for message id 'AS-EJB-00001' for levels SEVERE and above",
	}
	if diff := cmp.Diff(want, messages); diff != "" {
		t.Fatalf("unexpected validation diagnostics (-want +got):\n%s", diff)
	}
	assert.Contains(t, resources.files[teaCatalog], "AS-EJB-00001=Some error occurred: {0}")
}

func TestMessageGeneratorStoreFailureContinues(t *testing.T) {
	resources := newMemResources()
	resources.failWrite[teaDetails] = true
	reporter := &recordingReporter{}

	result, err := newTestMessageGenerator(resources, reporter, policies.FailureLenient).Generate(t.Context(), teaDeclarations())
	require.NoError(t, err)
	assert.True(t, result.Claimed)

	assert.Contains(t, resources.files, teaCatalog)
	assert.Contains(t, resources.files, messageMetadata)
	assert.NotContains(t, resources.files, teaDetails)

	io := reporter.items.OfKind(types.DiagnosticKindIO)
	require.Len(t, io, 1)
	assert.Equal(t, types.SeverityError, io[0].Severity)
	assert.Contains(t, io[0].Message, "unable to store resource bundle "+teaDetails)
}

func TestMessageGeneratorLoadFailureWarns(t *testing.T) {
	resources := newMemResources()
	resources.failOpen[teaCatalog] = true
	reporter := &recordingReporter{}

	result, err := newTestMessageGenerator(resources, reporter, policies.FailureStrict).Generate(t.Context(), teaDeclarations())
	require.NoError(t, err)
	assert.True(t, result.Succeeded)

	io := reporter.items.OfKind(types.DiagnosticKindIO)
	require.Len(t, io, 1)
	assert.Equal(t, types.SeverityWarning, io[0].Severity)
	assert.Equal(t, "unable to load resource bundle "+teaCatalog+": open denied", io[0].Message)
}
