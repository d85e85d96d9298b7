package checkpoint

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/procclock/itimer-go/pkg/itimer"
)

// Store manages persistence of one timer snapshot to a file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store writing to the given path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save writes the timer's current snapshot to the store file, replacing any
// previous record. The parent directory is created if missing.
func (s *Store) Save(t *itimer.Timer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if err := t.WriteSnapshot(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("saving checkpoint: %w", err)
	}
	return f.Close()
}

// Load restores the stored snapshot into the timer, which must be stopped.
// Returns an error satisfying os.IsNotExist if no checkpoint was saved.
func (s *Store) Load(t *itimer.Timer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := t.ReadSnapshot(f); err != nil {
		return fmt.Errorf("loading checkpoint: %w", err)
	}
	return nil
}

// Clear removes the checkpoint file. Clearing a missing file is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
