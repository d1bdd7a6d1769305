package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"nyxshell/internal/domain"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is required")
	}
	db, err := sql.Open("sqlite", filepath.Clean(dbPath))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Migrate(ctx context.Context) error {
	schema := `
CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS shortcuts (
	accelerator TEXT PRIMARY KEY,
	created_unix INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS launches (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	path TEXT NOT NULL,
	name TEXT NOT NULL DEFAULT '',
	launched_unix INTEGER NOT NULL DEFAULT 0,
	ok INTEGER NOT NULL DEFAULT 0,
	error TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_launches_time ON launches(launched_unix DESC);
`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings(key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

func (s *Store) GetSetting(ctx context.Context, key, defaultValue string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return defaultValue, nil
	}
	if err != nil {
		return defaultValue, err
	}
	return value, nil
}

func (s *Store) GetSettingInt(ctx context.Context, key string, defaultValue int) (int, error) {
	raw, err := s.GetSetting(ctx, key, strconv.Itoa(defaultValue))
	if err != nil {
		return defaultValue, err
	}
	parsed, convErr := strconv.Atoi(strings.TrimSpace(raw))
	if convErr != nil {
		return defaultValue, nil
	}
	return parsed, nil
}

func (s *Store) GetSettingBool(ctx context.Context, key string, defaultValue bool) (bool, error) {
	fallback := "0"
	if defaultValue {
		fallback = "1"
	}
	raw, err := s.GetSetting(ctx, key, fallback)
	if err != nil {
		return defaultValue, err
	}
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off", "":
		return false, nil
	default:
		return defaultValue, nil
	}
}

func (s *Store) ListSettings(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		out[key] = value
	}
	return out, rows.Err()
}

func (s *Store) AddShortcut(ctx context.Context, accelerator string, createdUnix int64) error {
	if strings.TrimSpace(accelerator) == "" {
		return errors.New("accelerator is required")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO shortcuts(accelerator, created_unix) VALUES (?, ?)
		 ON CONFLICT(accelerator) DO NOTHING`, accelerator, createdUnix)
	return err
}

func (s *Store) RemoveShortcut(ctx context.Context, accelerator string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM shortcuts WHERE accelerator = ?`, accelerator)
	return err
}

func (s *Store) ListShortcuts(ctx context.Context) ([]domain.ShortcutBinding, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT accelerator, created_unix FROM shortcuts ORDER BY created_unix, accelerator`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ShortcutBinding
	for rows.Next() {
		var binding domain.ShortcutBinding
		if err := rows.Scan(&binding.Accelerator, &binding.CreatedUnix); err != nil {
			return nil, err
		}
		out = append(out, binding)
	}
	return out, rows.Err()
}

func (s *Store) RecordLaunch(ctx context.Context, record domain.LaunchRecord) error {
	if strings.TrimSpace(record.Path) == "" {
		return errors.New("launch path is required")
	}
	ok := 0
	if record.OK {
		ok = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO launches(path, name, launched_unix, ok, error) VALUES (?, ?, ?, ?, ?)`,
		record.Path, record.Name, record.LaunchedUnix, ok, record.Error)
	return err
}

func (s *Store) ListLaunches(ctx context.Context, limit int) ([]domain.LaunchRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, path, name, launched_unix, ok, error FROM launches
		 ORDER BY launched_unix DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.LaunchRecord
	for rows.Next() {
		var record domain.LaunchRecord
		var ok int
		if err := rows.Scan(&record.ID, &record.Path, &record.Name, &record.LaunchedUnix, &ok, &record.Error); err != nil {
			return nil, err
		}
		record.OK = ok != 0
		out = append(out, record)
	}
	return out, rows.Err()
}

func (s *Store) PruneLaunches(ctx context.Context, keep int) error {
	if keep <= 0 {
		keep = 500
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM launches WHERE id NOT IN (
			SELECT id FROM launches ORDER BY launched_unix DESC, id DESC LIMIT ?
		)`, keep)
	return err
}
