// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/store. This ensures the core has no dependency on
// infrastructure.
package ports

import (
	"context"

	"worldofml/src/core/domain"
)

// Mutator applies one domain change to the full state document. Returning
// an error abandons the update and leaves the persisted document untouched.
type Mutator func(state *domain.ProgramState) error

// StateStore is durable storage for the single program state document.
//
// Every operation works on the whole document: there are no partial writes
// and no merges. ReadState lazily creates a default document when none
// exists yet; a document that exists but cannot be parsed surfaces as a
// storage error, never silent recovery.
type StateStore interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error

	// ReadState returns the full document, creating it with defaults on
	// first access.
	ReadState(ctx context.Context) (*domain.ProgramState, error)

	// WriteState stamps the document's updated-at timestamp and overwrites
	// the stored document.
	WriteState(ctx context.Context, state *domain.ProgramState) error

	// UpdateState runs the mutator inside the store's write-exclusion
	// (process mutex for the file store, row lock for Postgres) so a
	// read-modify-write cycle cannot interleave with another writer.
	UpdateState(ctx context.Context, mutate Mutator) (*domain.ProgramState, error)
}
