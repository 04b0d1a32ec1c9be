package core

import (
	"sort"
	"strings"

	"logcatalog/internal/types"
)

// OrderedStore is a key/value catalog whose entries may carry a comment.
// Iteration is in ascending key order regardless of insertion order.
// A comment attached to a key without a value is kept but never
// serialized until the key gets one.
type OrderedStore struct {
	values   map[string]string
	comments map[string]string
}

func NewOrderedStore() *OrderedStore {
	return &OrderedStore{
		values:   map[string]string{},
		comments: map[string]string{},
	}
}

// Put sets the value of key, keeping any comment already attached.
func (s *OrderedStore) Put(key string, value string) {
	s.values[key] = value
}

// PutComment attaches text to key as a "# "-prefixed comment line.
// Line breaks in text are folded to spaces so the comment stays on the
// line directly above its entry.
func (s *OrderedStore) PutComment(key string, text string) {
	s.comments[key] = "# " + foldLines(text)
}

// SetCommentLine attaches a literal comment line to key.
func (s *OrderedStore) SetCommentLine(key string, line string) {
	s.comments[key] = line
}

func (s *OrderedStore) Get(key string) (string, bool) {
	value, ok := s.values[key]
	return value, ok
}

func (s *OrderedStore) Comment(key string) string {
	return s.comments[key]
}

func (s *OrderedStore) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

func (s *OrderedStore) Len() int {
	return len(s.values)
}

// Keys returns the keys that have a value, in ascending order.
func (s *OrderedStore) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns all valued entries in key order.
func (s *OrderedStore) Entries() []types.CatalogEntry {
	keys := s.Keys()
	out := make([]types.CatalogEntry, 0, len(keys))
	for _, key := range keys {
		out = append(out, types.CatalogEntry{
			Key:     key,
			Value:   s.values[key],
			Comment: s.comments[key],
		})
	}
	return out
}

func foldLines(text string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(text)
}
