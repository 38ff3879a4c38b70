package values

import (
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-formtag/pkg/attrs"
)

// ErrInvalidDefault is returned when a default is neither a scalar nor a
// container.
var ErrInvalidDefault = errors.New("values: default must be a scalar or a container")

// Store keeps the default values used to prefill controls when nothing was
// submitted. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string]any)}
}

// Set registers the default for name. Invalid values leave the store
// unchanged.
func (s *Store) Set(name string, value any) error {
	if err := validateDefault(name, value); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[name] = value
	return nil
}

// SetAll replaces the defaults with values, or merges them key by key when
// merge is true. Nothing changes if any value is invalid.
func (s *Store) SetAll(values map[string]any, merge bool) error {
	for name, value := range values {
		if err := validateDefault(name, value); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !merge || s.values == nil {
		s.values = make(map[string]any, len(values))
	}
	for name, value := range values {
		s.values[name] = value
	}
	return nil
}

// All returns a copy of the registered defaults.
func (s *Store) All() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]any, len(s.values))
	for name, value := range s.values {
		out[name] = value
	}
	return out
}

// Lookup resolves name, bracketed paths included, against the defaults.
func (s *Store) Lookup(name string) any {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Resolve(name, s.values)
}

// Len reports the number of top-level defaults.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

func validateDefault(name string, value any) error {
	if attrs.IsScalar(value) || attrs.IsContainer(value) {
		return nil
	}
	return fmt.Errorf("%w: %q has type %T", ErrInvalidDefault, name, value)
}
