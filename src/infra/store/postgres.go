package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"worldofml/src/core/domain"
	"worldofml/src/core/ports"
	"worldofml/src/infra/db"
)

// PostgresStore keeps the program state document in a single jsonb row.
//
// UpdateState runs the mutator inside a transaction holding a row lock, so
// concurrent writers queue instead of overwriting each other's changes, even
// across processes. This is the document store to use when more than one
// learner hits the service at once.
type PostgresStore struct {
	db   *db.Postgres
	seed domain.ProgramConfig
	log  *slog.Logger
}

var _ ports.StateStore = (*PostgresStore)(nil)

const createStateTable = `
CREATE TABLE IF NOT EXISTS program_state (
    id         smallint PRIMARY KEY DEFAULT 1 CHECK (id = 1),
    doc        jsonb NOT NULL,
    updated_at timestamptz NOT NULL
)`

// NewPostgresStore creates the postgres store and its single-row table.
func NewPostgresStore(ctx context.Context, pg *db.Postgres, seed domain.ProgramConfig, log *slog.Logger) (*PostgresStore, error) {
	if _, err := pg.Pool.Exec(ctx, createStateTable); err != nil {
		return nil, domain.NewStorageError("create program_state table", err)
	}
	return &PostgresStore{db: pg, seed: seed, log: log}, nil
}

// Health checks if the database is reachable.
func (p *PostgresStore) Health(ctx context.Context) error {
	return p.db.Health(ctx)
}

// ReadState returns the full document, seeding a default one when the row
// does not exist yet.
func (p *PostgresStore) ReadState(ctx context.Context) (*domain.ProgramState, error) {
	var raw []byte
	err := p.db.Pool.QueryRow(ctx, `SELECT doc FROM program_state WHERE id = 1`).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		state := domain.NewDefaultState(p.seed)
		if err := p.WriteState(ctx, state); err != nil {
			return nil, err
		}
		return state, nil
	}
	if err != nil {
		return nil, domain.NewStorageError("read state row", err)
	}
	return decodeState(raw)
}

// WriteState stamps the updated-at timestamp and overwrites the document row.
func (p *PostgresStore) WriteState(ctx context.Context, state *domain.ProgramState) error {
	state.UpdatedAt = time.Now().UTC()

	raw, err := json.Marshal(state)
	if err != nil {
		return domain.NewStorageError("encode state", err)
	}
	_, err = p.db.Pool.Exec(ctx, `
		INSERT INTO program_state (id, doc, updated_at) VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at`,
		raw, state.UpdatedAt,
	)
	if err != nil {
		return domain.NewStorageError("write state row", err)
	}
	return nil
}

// UpdateState locks the document row for the duration of the mutator.
func (p *PostgresStore) UpdateState(ctx context.Context, mutate ports.Mutator) (*domain.ProgramState, error) {
	tx, err := p.db.Pool.Begin(ctx)
	if err != nil {
		return nil, domain.NewStorageError("begin state update", err)
	}
	defer tx.Rollback(ctx)

	var state *domain.ProgramState
	var raw []byte
	err = tx.QueryRow(ctx, `SELECT doc FROM program_state WHERE id = 1 FOR UPDATE`).Scan(&raw)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		state = domain.NewDefaultState(p.seed)
	case err != nil:
		return nil, domain.NewStorageError("read state row", err)
	default:
		if state, err = decodeState(raw); err != nil {
			return nil, err
		}
	}

	if err := mutate(state); err != nil {
		return nil, err
	}

	state.UpdatedAt = time.Now().UTC()
	updated, err := json.Marshal(state)
	if err != nil {
		return nil, domain.NewStorageError("encode state", err)
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO program_state (id, doc, updated_at) VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at`,
		updated, state.UpdatedAt,
	)
	if err != nil {
		return nil, domain.NewStorageError("write state row", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.NewStorageError("commit state update", err)
	}
	return state, nil
}

func decodeState(raw []byte) (*domain.ProgramState, error) {
	var state domain.ProgramState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, domain.NewStorageError("parse state document", err)
	}
	if state.Version == "" || state.Users == nil {
		return nil, domain.NewStorageError("state document does not match the expected shape", nil)
	}
	return &state, nil
}
