package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"immo-map/models"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect postgres: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	sql := `
	CREATE TABLE IF NOT EXISTS markers (
		id TEXT PRIMARY KEY,
		price TEXT NOT NULL DEFAULT '',
		rooms TEXT NOT NULL DEFAULT '',
		surface TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_markers_created_at ON markers(created_at);
	`

	if _, err := s.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

func (s *PostgresStore) Create(ctx context.Context, m models.Marker) error {
	_, err := s.pool.Exec(ctx, `
	INSERT INTO markers (id, price, rooms, surface, description, type, latitude, longitude)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		string(m.ID),
		m.Price,
		m.Rooms,
		m.Surface,
		m.Description,
		string(m.Type),
		m.Coordinate.Latitude,
		m.Coordinate.Longitude,
	)
	if err != nil {
		return fmt.Errorf("insert marker: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]models.Marker, error) {
	rows, err := s.pool.Query(ctx, `
	SELECT id, price, rooms, surface, description, type, latitude, longitude
	FROM markers
	ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query markers: %w", err)
	}
	defer rows.Close()

	markers := []models.Marker{}
	for rows.Next() {
		var (
			m        models.Marker
			id, kind string
		)
		if err := rows.Scan(&id, &m.Price, &m.Rooms, &m.Surface, &m.Description, &kind,
			&m.Coordinate.Latitude, &m.Coordinate.Longitude); err != nil {
			return nil, fmt.Errorf("scan marker: %w", err)
		}
		m.ID = models.MarkerID(id)
		m.Type = models.ListingType(kind)
		markers = append(markers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate markers: %w", err)
	}
	return markers, nil
}
