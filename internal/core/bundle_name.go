package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"logcatalog/internal/types"
)

const (
	bundleNameSuffix  = "LogMessages"
	propertiesSuffix  = ".properties"
	detailsNameSuffix = "_details"
)

// ResolveResourceID maps a dotted bundle name such as a.b.MyLogMessages to
// package a.b and file MyLogMessages.properties. A name without a dot past
// its first character has no package.
func ResolveResourceID(name string) types.ResourceID {
	idx := strings.LastIndex(name, ".")
	if idx > 0 {
		return types.ResourceID{
			Package: name[:idx],
			Name:    name[idx+1:] + propertiesSuffix,
		}
	}
	return types.ResourceID{Name: name + propertiesSuffix}
}

// DetailsBundleName returns the bundle name of the details catalog that
// accompanies name.
func DetailsBundleName(name string) string {
	return name + detailsNameSuffix
}

// BundleNameTracker collects the bundle names declared in one round and
// resolves the single legal one.
type BundleNameTracker struct {
	names   map[string]types.Source
	ordered []string
}

func NewBundleNameTracker() *BundleNameTracker {
	return &BundleNameTracker{names: map[string]types.Source{}}
}

// Add records name. The first source seen for a name is kept.
func (t *BundleNameTracker) Add(name string, source types.Source) {
	if _, ok := t.names[name]; ok {
		return
	}
	t.names[name] = source
	t.ordered = append(t.ordered, name)
}

func (t *BundleNameTracker) Len() int {
	return len(t.ordered)
}

// Names returns the distinct names in ascending order.
func (t *BundleNameTracker) Names() []string {
	names := append([]string(nil), t.ordered...)
	sort.Strings(names)
	return names
}

func (t *BundleNameTracker) Source(name string) types.Source {
	return t.names[name]
}

// Resolve returns the only tracked name.
func (t *BundleNameTracker) Resolve() (string, error) {
	switch len(t.ordered) {
	case 0:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no resource bundle name found, at least one string literal constant must be declared as the resource bundle name")
	case 1:
		return t.ordered[0], nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf(
				"more than one resource bundle name specified, found %s; specify only one resource bundle name per module",
				strings.Join(t.Names(), ", ")))
	}
}

// ValidateBundleName checks the LogMessages suffix on a declared name.
func ValidateBundleName(name string) error {
	if !strings.HasSuffix(name, bundleNameSuffix) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("the resource bundle name '%s' does not end with '%s'", name, bundleNameSuffix))
	}
	return nil
}
