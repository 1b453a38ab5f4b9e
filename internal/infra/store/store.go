// Package store implements the keyed record store: one namespace per record
// type, one JSON document per username. Services read and write their
// per-user state through Scoped instead of touching the backend directly.
package store

import (
	"encoding/json"
	"fmt"
)

// Backend is the raw persistence surface: opaque bytes addressed by
// (namespace, username). Implementations: sqlite.DB and Memory.
type Backend interface {
	Get(namespace, username string) ([]byte, bool, error)
	Set(namespace, username string, value []byte) error
}

// Scoped reads and writes one user's record of type T under a fixed
// namespace. Absent records materialize from the initial func, so first
// read lazily creates a zeroed record without a separate init path.
type Scoped[T any] struct {
	backend Backend
	ns      string
	initial func() T
}

// New creates a scoped store. initial may be nil, in which case absent
// records materialize as T's zero value.
func New[T any](backend Backend, namespace string, initial func() T) *Scoped[T] {
	if initial == nil {
		initial = func() T { var zero T; return zero }
	}
	return &Scoped[T]{backend: backend, ns: namespace, initial: initial}
}

// Namespace returns the record-type key this store is scoped to.
func (s *Scoped[T]) Namespace() string { return s.ns }

// Load returns username's record, or a fresh initial record when absent.
func (s *Scoped[T]) Load(username string) (T, error) {
	raw, ok, err := s.backend.Get(s.ns, username)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("load %s/%s: %w", s.ns, username, err)
	}
	if !ok {
		return s.initial(), nil
	}
	v := s.initial()
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, fmt.Errorf("decode %s/%s: %w", s.ns, username, err)
	}
	return v, nil
}

// Save persists username's record, replacing any previous value.
func (s *Scoped[T]) Save(username string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", s.ns, username, err)
	}
	if err := s.backend.Set(s.ns, username, raw); err != nil {
		return fmt.Errorf("save %s/%s: %w", s.ns, username, err)
	}
	return nil
}

// Update runs fn on username's record and writes the result back.
// The whole call is one synchronous read-modify-write; fn returning an
// error abandons the write.
func (s *Scoped[T]) Update(username string, fn func(*T) error) (T, error) {
	v, err := s.Load(username)
	if err != nil {
		return v, err
	}
	if err := fn(&v); err != nil {
		return v, err
	}
	if err := s.Save(username, v); err != nil {
		return v, err
	}
	return v, nil
}
