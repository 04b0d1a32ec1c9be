package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logcatalog/internal/types"
)

func TestResolveResourceID(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        types.ResourceID
		wantLogical string
	}{
		{
			name:        "dotted name",
			input:       "com.foo.bar.LogMessages",
			want:        types.ResourceID{Package: "com.foo.bar", Name: "LogMessages.properties"},
			wantLogical: "com/foo/bar/LogMessages.properties",
		},
		{
			name:        "slashed metadata name",
			input:       "META-INF/logmessages/LogMessagesMetadata",
			want:        types.ResourceID{Name: "META-INF/logmessages/LogMessagesMetadata.properties"},
			wantLogical: "META-INF/logmessages/LogMessagesMetadata.properties",
		},
		{
			name:        "no package",
			input:       "LogMessages",
			want:        types.ResourceID{Name: "LogMessages.properties"},
			wantLogical: "LogMessages.properties",
		},
		{
			name:        "leading dot only",
			input:       ".LogMessages",
			want:        types.ResourceID{Name: ".LogMessages.properties"},
			wantLogical: ".LogMessages.properties",
		},
		{
			name:        "details bundle",
			input:       DetailsBundleName("a.b.LogMessages"),
			want:        types.ResourceID{Package: "a.b", Name: "LogMessages_details.properties"},
			wantLogical: "a/b/LogMessages_details.properties",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveResourceID(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected resource id (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.wantLogical, got.LogicalName())
		})
	}
}

func TestBundleNameTrackerResolve(t *testing.T) {
	tracker := NewBundleNameTracker()
	_, err := tracker.Resolve()
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	tracker.Add("a.LogMessages", types.Source{File: "A.java"})
	tracker.Add("a.LogMessages", types.Source{File: "B.java"})
	name, err := tracker.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "a.LogMessages", name)
	assert.Equal(t, "A.java", tracker.Source(name).File)

	tracker.Add("b.LogMessages", types.Source{})
	_, err = tracker.Resolve()
	require.Error(t, err)
	assert.Contains(t, errorText(err), "found a.LogMessages, b.LogMessages")
}

func TestValidateBundleName(t *testing.T) {
	require.NoError(t, ValidateBundleName("com.foo.bar.LogMessages"))
	require.NoError(t, ValidateBundleName("com.foo.bar.EJBLogMessages"))

	err := ValidateBundleName("com.foo.bar.EJBLogMessagesCatalog")
	require.Error(t, err)
	assert.Equal(t, "the resource bundle name 'com.foo.bar.EJBLogMessagesCatalog' does not end with 'LogMessages'", errorText(err))
}
