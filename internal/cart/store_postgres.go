package cart

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists the snapshot in a single keyed row.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the snapshot table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS cart_snapshots (
			storage_key TEXT PRIMARY KEY,
			snapshot    BYTEA NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

func (s *PostgresStore) Save(ctx context.Context, snapshot []byte) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO cart_snapshots (storage_key, snapshot, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (storage_key)
		DO UPDATE SET snapshot = EXCLUDED.snapshot, updated_at = now()
	`, StorageKey, snapshot)
	return err
}

func (s *PostgresStore) Load(ctx context.Context) ([]byte, error) {
	var snapshot []byte
	err := s.db.QueryRow(ctx, `
		SELECT snapshot
		FROM cart_snapshots
		WHERE storage_key = $1
	`, StorageKey).Scan(&snapshot)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return snapshot, nil
}
