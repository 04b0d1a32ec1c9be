package types

import "strings"

// CatalogEntry is one key/value pair of a persisted catalog. Comment holds
// the literal comment line, including its leading '#', or "" when absent.
type CatalogEntry struct {
	Key     string
	Value   string
	Comment string
}

// ResourceID identifies a persisted resource relative to the output root.
type ResourceID struct {
	Package string
	Name    string
}

// LogicalName returns the slash-separated path of the resource.
func (r ResourceID) LogicalName() string {
	if r.Package == "" {
		return r.Name
	}
	return strings.ReplaceAll(r.Package, ".", "/") + "/" + r.Name
}

func (r ResourceID) String() string {
	return r.LogicalName()
}
