package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"svw.info/phitinh/internal/domain"
	"svw.info/phitinh/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS charts (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL DEFAULT '',
	notes      TEXT NOT NULL DEFAULT '',
	year       INTEGER NOT NULL,
	facing     REAL NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_charts_created ON charts(created_at);
`

// SQLite stores charts in a single table.
type SQLite struct{ db *sql.DB }

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Save(ctx context.Context, c *domain.Chart) error {
	if c == nil || !validID(c.ID) {
		return errors.New("invalid chart: missing ID")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO charts (id, name, notes, year, facing, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			notes = excluded.notes,
			year = excluded.year,
			facing = excluded.facing,
			created_at = excluded.created_at`,
		c.ID, c.Name, c.Notes, c.Year, c.Facing, c.CreatedAt)
	return err
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Chart, error) {
	var c domain.Chart
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, notes, year, facing, created_at FROM charts WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Notes, &c.Year, &c.Facing, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.ChartMeta, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, year, facing, created_at FROM charts ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ChartMeta
	for rows.Next() {
		var m domain.ChartMeta
		if err := rows.Scan(&m.ID, &m.Name, &m.Year, &m.Facing, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *SQLite) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM charts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return nil
}
