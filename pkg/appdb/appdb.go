package appdb

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"itunes-scraper/lib/scrapers/appstore"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var Schema string

func wrapOpenDB(err error) error {
	return fmt.Errorf("open db: %w", err)
}

// OpenDB opens (and creates, if needed) a result database at the given
// path. ":memory:" is accepted for tests.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		os.MkdirAll(filepath.Dir(path), 0777)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, wrapOpenDB(err)
	}

	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		return nil, wrapOpenDB(err)
	}

	_, err = db.Exec(Schema)
	if err != nil {
		return nil, wrapOpenDB(err)
	}

	return db, nil
}

// Store writes fetched app detail records to a result database. This is
// export output, not a response cache, nothing is ever read back before a
// fetch.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) Store {
	return Store{db: db}
}

type SavedApp struct {
	TrackID     int64
	BundleID    string
	Name        string
	DeveloperID int64
	Developer   string
	Country     string
	FetchedAt   time.Time
	Record      appstore.AppRecord
}

func (s Store) SaveApps(ctx context.Context, country string, records []appstore.AppRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	for _, record := range records {
		raw, err := json.Marshal(record)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO apps
				(track_id, bundle_id, name, developer_id, developer, country, fetched_at, record)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (track_id) DO UPDATE SET
				bundle_id = excluded.bundle_id,
				name = excluded.name,
				developer_id = excluded.developer_id,
				developer = excluded.developer,
				country = excluded.country,
				fetched_at = excluded.fetched_at,
				record = excluded.record`,
			record.ID(),
			record.BundleID(),
			record.Name(),
			record.DeveloperID(),
			record.DeveloperName(),
			country,
			now,
			string(raw),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s Store) GetApp(ctx context.Context, trackID int64) (SavedApp, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT track_id, bundle_id, name, developer_id, developer, country, fetched_at, record
		FROM apps WHERE track_id = ?`,
		trackID,
	)
	return scanApp(row)
}

func (s Store) ListApps(ctx context.Context) ([]SavedApp, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT track_id, bundle_id, name, developer_id, developer, country, fetched_at, record
		FROM apps ORDER BY track_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedApp
	for rows.Next() {
		app, err := scanApp(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanApp(row scannable) (SavedApp, error) {
	var app SavedApp
	var fetchedAt int64
	var raw string
	err := row.Scan(
		&app.TrackID,
		&app.BundleID,
		&app.Name,
		&app.DeveloperID,
		&app.Developer,
		&app.Country,
		&fetchedAt,
		&raw,
	)
	if err != nil {
		return SavedApp{}, err
	}
	app.FetchedAt = time.Unix(fetchedAt, 0)
	err = json.Unmarshal([]byte(raw), &app.Record)
	if err != nil {
		return SavedApp{}, err
	}
	return app, nil
}
