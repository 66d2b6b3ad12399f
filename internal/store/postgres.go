package store

import (
	"context"
	_ "embed"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"casamento/internal/models"
)

// schemaSQL is embedded so the service can self-bootstrap its database schema.
//
//go:embed schema.sql
var schemaSQL string

// opTimeout bounds every persistence round trip so a stalled database
// surfaces as a server error instead of a hung request.
const opTimeout = 5 * time.Second

// PostgresStore is the durable persistence layer for confirmations.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a connection pool and fails fast if DB is unreachable.
func NewPostgresStore(dbURL string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema applies schema.sql. Safe to run multiple times.
func (p *PostgresStore) EnsureSchema() error {
	_, err := p.pool.Exec(context.Background(), schemaSQL)
	return err
}

// Ping is used by readiness endpoint to validate DB connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (p *PostgresStore) Close() {
	p.pool.Close()
}

// InsertConfirmation persists one confirmation. Duplicate submissions are
// intentionally allowed; each insert is a distinct record under a fresh ID.
func (p *PostgresStore) InsertConfirmation(ctx context.Context, rec models.Confirmation) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := p.pool.Exec(ctx, `
		INSERT INTO confirmations(id, name, email, message, attending, guests, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, rec.ID, rec.Name, rec.Email, rec.Message, string(rec.Attending), rec.Guests, rec.CreatedAt)

	return err
}

// ListConfirmations returns every confirmation ordered by created_at descending.
func (p *PostgresStore) ListConfirmations(ctx context.Context) ([]models.Confirmation, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := p.pool.Query(ctx, `
		SELECT id, name, email, message, attending, guests, created_at
		FROM confirmations
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.Confirmation{}
	for rows.Next() {
		var rec models.Confirmation
		var attending string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Message, &attending, &rec.Guests, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Attending = models.Attendance(attending)
		rec.CreatedAt = rec.CreatedAt.UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// DeleteConfirmation removes one record by ID. A delete that matches no
// row reports ErrNotFound so the handler can answer 404 instead of 500.
func (p *PostgresStore) DeleteConfirmation(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	tag, err := p.pool.Exec(ctx, `DELETE FROM confirmations WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
