package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps each collection as one JSONB document row in
// record_collections.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore returns a store over pool. RunMigrations must have created
// the record_collections table.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Load(ctx context.Context, collection string) ([]json.RawMessage, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	const query = `SELECT body FROM record_collections WHERE name=$1`

	var body []byte
	if err := s.pool.QueryRow(ctx, query, collection).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}
	records, err := decodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}
	return records, nil
}

func (s *PostgresStore) Save(ctx context.Context, collection string, records []json.RawMessage) error {
	if err := validateCollection(collection); err != nil {
		return err
	}
	body, err := encodeRecords(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	const query = `
        INSERT INTO record_collections (name, body, updated_at)
        VALUES ($1, $2::jsonb, NOW())
        ON CONFLICT (name) DO UPDATE SET body=EXCLUDED.body, updated_at=NOW()`

	if _, err := s.pool.Exec(ctx, query, collection, string(body)); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	if s.pool == nil {
		return errors.New("postgres pool not configured")
	}
	return s.pool.Ping(ctx)
}
