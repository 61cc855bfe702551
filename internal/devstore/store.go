// Package devstore is an in-memory stand-in for the remote record store:
// a json-server-compatible collection API with server-assigned ids,
// equality filters, full-text search, and single-key sorting. Like the
// real thing it performs no validation and no authentication; it exists
// for local development and as the test harness for the record access
// layer.
package devstore

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Record is one schemaless stored object.
type Record map[string]any

// Store holds named collections of records. All methods are safe for
// concurrent use.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]Record
}

func NewStore() *Store {
	return &Store{collections: map[string][]Record{}}
}

// Seed inserts records as-is, keeping any ids they carry. Intended for
// tests and local fixtures.
func (s *Store) Seed(collection string, recs ...Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range recs {
		s.collections[collection] = append(s.collections[collection], cloneRecord(r))
	}
}

// Query describes a list request against one collection.
type Query struct {
	// Filters are field=value equality matches, compared as strings.
	Filters map[string]string
	// FullText is the q parameter: case-insensitive substring match
	// against every string field of the record.
	FullText string
	// SortKey and Order select single-key sorting; empty SortKey keeps
	// insertion order.
	SortKey string
	Order   string
}

// List returns the matching records.
func (s *Store) List(collection string, q Query) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0)
	for _, rec := range s.collections[collection] {
		if matches(rec, q) {
			out = append(out, cloneRecord(rec))
		}
	}

	if q.SortKey != "" {
		desc := q.Order == "desc"
		sortRecords(out, q.SortKey, desc)
	}
	return out
}

// Get returns the record with the given id.
func (s *Store) Get(collection, id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.collections[collection] {
		if fieldString(rec, "id") == id {
			return cloneRecord(rec), true
		}
	}
	return nil, false
}

// Create stores rec under a fresh server-assigned id and returns the
// saved record.
func (s *Store) Create(collection string, rec Record) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := cloneRecord(rec)
	saved["id"] = uuid.NewString()
	s.collections[collection] = append(s.collections[collection], saved)
	return cloneRecord(saved)
}

// Replace swaps the record with the given id for rec (full replacement,
// id preserved).
func (s *Store) Replace(collection, id string, rec Record) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.collections[collection] {
		if fieldString(existing, "id") == id {
			saved := cloneRecord(rec)
			saved["id"] = existing["id"]
			s.collections[collection][i] = saved
			return cloneRecord(saved), true
		}
	}
	return nil, false
}

// Delete removes the record with the given id.
func (s *Store) Delete(collection, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := s.collections[collection]
	for i, rec := range recs {
		if fieldString(rec, "id") == id {
			s.collections[collection] = append(recs[:i:i], recs[i+1:]...)
			return true
		}
	}
	return false
}

func matches(rec Record, q Query) bool {
	for field, want := range q.Filters {
		if fieldString(rec, field) != want {
			return false
		}
	}
	if q.FullText != "" {
		needle := strings.ToLower(q.FullText)
		found := false
		for _, v := range rec {
			if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// sortRecords orders records by the string form of one field. An
// insertion sort keeps it simple and stable for the small data sets the
// dev store holds.
func sortRecords(recs []Record, key string, desc bool) {
	for i := 1; i < len(recs); i++ {
		for j := i; j > 0; j-- {
			a := fieldString(recs[j-1], key)
			b := fieldString(recs[j], key)
			swap := a > b
			if desc {
				swap = a < b
			}
			if !swap {
				break
			}
			recs[j-1], recs[j] = recs[j], recs[j-1]
		}
	}
}

func fieldString(rec Record, field string) string {
	v, ok := rec[field]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func cloneRecord(r Record) Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}
