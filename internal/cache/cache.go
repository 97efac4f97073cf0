// Package cache keeps fetched records for the lifetime of one session.
package cache

import (
	"strconv"
	"strings"
	"sync"

	"github.com/jbgaribay/PokeTerminal/internal/pokeapi"
)

// Store is a keyed record container with process lifetime and no eviction.
// Bounded in practice by how many lookups one session performs.
type Store struct {
	mu      sync.Mutex
	records map[string]*pokeapi.Record
}

func New() *Store {
	return &Store{records: map[string]*pokeapi.Record{}}
}

// Get returns the record previously stored under the normalized key.
func (s *Store) Get(key string) (*pokeapi.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[normalize(key)]
	return rec, ok
}

// Put stores the record under the search key and additionally under its
// canonical name and numeric id, so "25" and "pikachu" hit the same entry.
func (s *Store) Put(key string, rec *pokeapi.Record) {
	if rec == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[normalize(key)] = rec
	s.records[normalize(rec.Name)] = rec
	s.records[strconv.Itoa(rec.ID)] = rec
}

// Len reports how many distinct keys are stored.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
