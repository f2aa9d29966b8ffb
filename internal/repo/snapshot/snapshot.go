// Package snapshot implements the flat-file store backing all market state.
// Each snapshot kind is a single self-contained JSON document that must
// round-trip exactly through repeated load/save cycles. Writes go through a
// temp file rename, so a crashed write never truncates the previous snapshot.
package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// S is a single-kind snapshot store. The mutex serializes writers within this
// process; cross-process coordination is out of scope (single-instance
// deployment assumed).
type S[T any] struct {
	mu   sync.Mutex
	path string
}

func New[T any](dir, name string) *S[T] {
	return &S[T]{
		path: filepath.Join(dir, name+".json"),
	}
}

// Load returns the persisted snapshot. When no snapshot has been written yet
// the error wraps os.ErrNotExist.
func (s *S[T]) Load(ctx context.Context) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// LoadOrSeed returns the persisted snapshot, atomically writing and returning
// seed() when none exists yet.
func (s *S[T]) LoadOrSeed(ctx context.Context, seed func() *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.load()
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	v = seed()
	if err := s.save(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Save overwrites the snapshot in place. Failures are reported, not retried.
func (s *S[T]) Save(ctx context.Context, v *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(v)
}

func (s *S[T]) load() (*T, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read snapshot")
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal snapshot")
	}
	return &v, nil
}

func (s *S[T]) save(v *T) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create snapshot directory")
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal snapshot")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return errors.Wrap(err, "failed to write snapshot")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "failed to replace snapshot")
	}
	return nil
}
