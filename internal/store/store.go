// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store keeps a SQLite journal of normalized restaurant records
// produced by the lookup and batch commands, and exports it to YAML or JSON.
// Lookups never read from the journal.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mmcloughlin/geohash"

	"github.com/pdiddy/restaurant-lookup/pkg/types"
)

// DefaultDBPath is used when StoreConfig.DBPath is empty.
const DefaultDBPath = "data/restaurants.db"

// geohashPrecision is the stored geohash length (about 150 m cells).
const geohashPrecision = 7

const defaultListLimit = 50

// Store manages the records journal database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the journal at cfg.DBPath and creates the schema if
// it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	path := cfg.DBPath
	if path == "" {
		path = DefaultDBPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			query TEXT NOT NULL,
			place_id TEXT NOT NULL,
			formatted_address TEXT,
			name TEXT,
			address TEXT,
			city TEXT,
			state TEXT,
			zip TEXT,
			county TEXT,
			phone TEXT,
			website_url TEXT,
			hours TEXT,
			yelp_rating TEXT,
			google_rating REAL,
			total_ratings INTEGER,
			latitude REAL,
			longitude REAL,
			geohash TEXT,
			looked_up_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_place_id ON records(place_id)`,
		`CREATE INDEX IF NOT EXISTS idx_records_geohash ON records(geohash)`,
		`CREATE INDEX IF NOT EXISTS idx_records_run_id ON records(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save appends a lookup result under runID and returns the stored row.
func (s *Store) Save(ctx context.Context, runID string, res *types.LookupResult) (*types.SavedRecord, error) {
	r := res.Restaurant
	rec := &types.SavedRecord{
		RunID:        runID,
		LookedUpAt:   s.now().UTC(),
		LookupResult: *res,
	}
	if r.HasCoordinates() {
		rec.Geohash = geohash.EncodeWithPrecision(*r.Latitude, *r.Longitude, geohashPrecision)
	}

	out, err := s.db.ExecContext(ctx,
		`INSERT INTO records (run_id, query, place_id, formatted_address, name, address, city, state,
			zip, county, phone, website_url, hours, yelp_rating, google_rating, total_ratings,
			latitude, longitude, geohash, looked_up_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, res.Query, res.PlaceID, res.FormattedAddress, r.Name, r.Address, r.City, r.State,
		r.Zip, r.County, r.Phone, r.WebsiteURL, r.HoursOfOperation, r.YelpRating,
		nullFloat(r.GoogleRating), nullInt(r.TotalRatings),
		nullFloat(r.Latitude), nullFloat(r.Longitude), rec.Geohash,
		rec.LookedUpAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting record for %s: %w", res.PlaceID, err)
	}
	rec.ID, err = out.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading record id: %w", err)
	}
	return rec, nil
}

// ListOptions filters List. Zero values mean no filter.
type ListOptions struct {
	// GeohashPrefix keeps records whose geohash starts with the prefix.
	GeohashPrefix string
	RunID         string
	PlaceID       string
	// Limit caps the number of rows (default 50, negative means no limit).
	Limit int
}

// List returns stored records, newest first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]types.SavedRecord, error) {
	q := `SELECT id, run_id, query, place_id, formatted_address, name, address, city, state, zip,
			county, phone, website_url, hours, yelp_rating, google_rating, total_ratings,
			latitude, longitude, geohash, looked_up_at
		  FROM records WHERE 1=1`
	var args []any
	if opts.GeohashPrefix != "" {
		q += ` AND geohash LIKE ? || '%'`
		args = append(args, opts.GeohashPrefix)
	}
	if opts.RunID != "" {
		q += ` AND run_id = ?`
		args = append(args, opts.RunID)
	}
	if opts.PlaceID != "" {
		q += ` AND place_id = ?`
		args = append(args, opts.PlaceID)
	}
	q += ` ORDER BY id DESC`

	limit := opts.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []types.SavedRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanRecord(rows *sql.Rows) (types.SavedRecord, error) {
	var (
		rec                        types.SavedRecord
		formatted, geo, lookedUpAt sql.NullString
		rating, lat, lng           sql.NullFloat64
		total                      sql.NullInt64
	)
	r := &rec.Restaurant
	err := rows.Scan(
		&rec.ID, &rec.RunID, &rec.Query, &rec.PlaceID, &formatted,
		&r.Name, &r.Address, &r.City, &r.State, &r.Zip, &r.County, &r.Phone,
		&r.WebsiteURL, &r.HoursOfOperation, &r.YelpRating,
		&rating, &total, &lat, &lng, &geo, &lookedUpAt,
	)
	if err != nil {
		return rec, fmt.Errorf("scanning record: %w", err)
	}

	rec.FormattedAddress = formatted.String
	rec.Geohash = geo.String
	if t, perr := time.Parse(time.RFC3339Nano, lookedUpAt.String); perr == nil {
		rec.LookedUpAt = t
	}
	if rating.Valid {
		r.GoogleRating = &rating.Float64
	}
	if total.Valid {
		n := int(total.Int64)
		r.TotalRatings = &n
	}
	if lat.Valid {
		r.Latitude = &lat.Float64
	}
	if lng.Valid {
		r.Longitude = &lng.Float64
	}
	return rec, nil
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
