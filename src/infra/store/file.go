// Package store contains the StateStore adapters: a file-backed JSON
// document store (the default) and a Postgres-backed document store.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"worldofml/src/core/domain"
	"worldofml/src/core/ports"
)

// FileStore persists the program state as a single JSON document on disk.
//
// A process-wide mutex is held across every read-modify-write cycle, so
// concurrent mutations within one process serialize instead of clobbering
// each other. Multi-process deployments should use the postgres driver.
type FileStore struct {
	path string
	seed domain.ProgramConfig
	log  *slog.Logger
	mu   sync.Mutex
}

var _ ports.StateStore = (*FileStore)(nil)

// NewFileStore creates a file store. The seed config is written into the
// document on first access; an existing document keeps its own config.
func NewFileStore(path string, seed domain.ProgramConfig, log *slog.Logger) *FileStore {
	return &FileStore{path: path, seed: seed, log: log}
}

// Health checks that the backing file exists or can be created.
func (f *FileStore) Health(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ensureFile()
}

// ReadState returns the full document, creating it with defaults when the
// file does not exist yet.
func (f *FileStore) ReadState(ctx context.Context) (*domain.ProgramState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.readLocked()
}

// WriteState stamps the updated-at timestamp and overwrites the document.
func (f *FileStore) WriteState(ctx context.Context, state *domain.ProgramState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writeLocked(state)
}

// UpdateState runs the mutator under the store mutex. When the mutator
// fails, the on-disk document is left untouched.
func (f *FileStore) UpdateState(ctx context.Context, mutate ports.Mutator) (*domain.ProgramState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.readLocked()
	if err != nil {
		return nil, err
	}
	if err := mutate(state); err != nil {
		return nil, err
	}
	if err := f.writeLocked(state); err != nil {
		return nil, err
	}
	return state, nil
}

func (f *FileStore) ensureFile() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return domain.NewStorageError("create state directory", err)
	}
	if _, err := os.Stat(f.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return domain.NewStorageError("stat state file", err)
	}

	state := domain.NewDefaultState(f.seed)
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return domain.NewStorageError("encode default state", err)
	}
	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		return domain.NewStorageError("write default state", err)
	}
	f.log.Info("state file created", "path", f.path)
	return nil
}

func (f *FileStore) readLocked() (*domain.ProgramState, error) {
	if err := f.ensureFile(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, domain.NewStorageError("read state file", err)
	}

	var state domain.ProgramState
	if err := json.Unmarshal(raw, &state); err != nil {
		// Corruption is surfaced, never repaired.
		return nil, domain.NewStorageError("parse state file", err)
	}
	if state.Version == "" || state.Users == nil {
		return nil, domain.NewStorageError("state file does not match the expected shape", nil)
	}
	return &state, nil
}

func (f *FileStore) writeLocked(state *domain.ProgramState) error {
	state.UpdatedAt = time.Now().UTC()

	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return domain.NewStorageError("encode state", err)
	}
	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		return domain.NewStorageError("write state file", err)
	}
	return nil
}
