package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/InhwanCho/penta-works-api/internal/metrics"
	"github.com/InhwanCho/penta-works-api/internal/site"
)

// Store wraps database access helpers.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store backed by a pgx pool.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Site is one row of the site directory.
type Site struct {
	SiteDB string  `json:"siteDb"`
	Name   *string `json:"name"`
}

const listSitesSQL = `
    SELECT site, name
    FROM site
    ORDER BY site ASC
`

// ListSites returns all known sites ordered by key.
func (s *Store) ListSites(ctx context.Context) ([]Site, error) {
	rows, err := s.pool.Query(ctx, listSitesSQL)
	if err != nil {
		return nil, queryErr("list_sites", err)
	}
	defer rows.Close()

	sites := make([]Site, 0)
	for rows.Next() {
		var st Site
		if err := rows.Scan(&st.SiteDB, &st.Name); err != nil {
			return nil, queryErr("list_sites", err)
		}
		sites = append(sites, st)
	}
	return sites, rows.Err()
}

const lastSeenSQL = `
    SELECT siteid, MAX(date)
    FROM mrtb
    WHERE siteid IS NOT NULL AND date IS NOT NULL
    GROUP BY siteid
`

// LastSeenBySite returns the newest reading timestamp per site.
func (s *Store) LastSeenBySite(ctx context.Context) (map[string]time.Time, error) {
	rows, err := s.pool.Query(ctx, lastSeenSQL)
	if err != nil {
		return nil, queryErr("last_seen", err)
	}
	defer rows.Close()

	out := make(map[string]time.Time)
	for rows.Next() {
		var siteID string
		var last time.Time
		if err := rows.Scan(&siteID, &last); err != nil {
			return nil, queryErr("last_seen", err)
		}
		out[siteID] = last
	}
	return out, rows.Err()
}

const countSinceSQL = `
    SELECT siteid, COUNT(*)
    FROM mrtb
    WHERE siteid IS NOT NULL AND date IS NOT NULL AND date >= $1
    GROUP BY siteid
`

// CountBySiteSince returns, per site, the number of readings at or after since.
func (s *Store) CountBySiteSince(ctx context.Context, since time.Time) (map[string]int, error) {
	rows, err := s.pool.Query(ctx, countSinceSQL, since)
	if err != nil {
		return nil, queryErr("count_since", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var siteID string
		var count int
		if err := rows.Scan(&siteID, &count); err != nil {
			return nil, queryErr("count_since", err)
		}
		out[siteID] = count
	}
	return out, rows.Err()
}

// LatestReading carries the raw sensor text of a site's newest reading.
type LatestReading struct {
	Hepres *string
	Heleve *string
}

// DISTINCT ON is the native "latest per group" here; ordering by
// (siteid ASC, date DESC) keeps the first-match semantics the consumers rely
// on when several readings share the newest timestamp.
const latestReadingSQL = `
    SELECT DISTINCT ON (siteid) siteid, hepres, heleve
    FROM mrtb
    WHERE siteid IS NOT NULL AND date IS NOT NULL
    ORDER BY siteid ASC, date DESC
`

// LatestReadingBySite returns each site's most recent pressure/level text.
func (s *Store) LatestReadingBySite(ctx context.Context) (map[string]LatestReading, error) {
	rows, err := s.pool.Query(ctx, latestReadingSQL)
	if err != nil {
		return nil, queryErr("latest_reading", err)
	}
	defer rows.Close()

	out := make(map[string]LatestReading)
	for rows.Next() {
		var siteID string
		var r LatestReading
		if err := rows.Scan(&siteID, &r.Hepres, &r.Heleve); err != nil {
			return nil, queryErr("latest_reading", err)
		}
		out[siteID] = r
	}
	return out, rows.Err()
}

// CtrlRow is one raw threshold row; bounds are loose text like the readings.
type CtrlRow struct {
	Site   string
	Mrplel *string
	Mrpleh *string
	Mrlevl *string
	Mrlevh *string
}

const listCtrlSQL = `
    SELECT site, mrplel, mrpleh, mrlevl, mrlevh
    FROM ctrl
`

// ListCtrlRows returns every configured threshold row.
func (s *Store) ListCtrlRows(ctx context.Context) ([]CtrlRow, error) {
	rows, err := s.pool.Query(ctx, listCtrlSQL)
	if err != nil {
		return nil, queryErr("list_ctrl", err)
	}
	defer rows.Close()

	out := make([]CtrlRow, 0)
	for rows.Next() {
		var r CtrlRow
		if err := rows.Scan(&r.Site, &r.Mrplel, &r.Mrpleh, &r.Mrlevl, &r.Mrlevh); err != nil {
			return nil, queryErr("list_ctrl", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

const findSiteSQL = `
    SELECT site, name
    FROM site
    WHERE site = $1
    LIMIT 1
`

// FindSiteByKey returns the site with the exact stored key, or nil when no
// such row exists.
func (s *Store) FindSiteByKey(ctx context.Context, key string) (*Site, error) {
	row := s.pool.QueryRow(ctx, findSiteSQL, key)

	var st Site
	if err := row.Scan(&st.SiteDB, &st.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, queryErr("find_site", err)
	}
	return &st, nil
}

// FindSiteBySlug resolves a user-facing slug to a site row. Candidates are
// tried in order (literal, then zero-padded for numeric slugs) so a literal
// "7" row shadows the legacy "007" one.
func (s *Store) FindSiteBySlug(ctx context.Context, slug string) (*Site, error) {
	for _, key := range site.SlugCandidates(slug) {
		st, err := s.FindSiteByKey(ctx, key)
		if err != nil {
			return nil, err
		}
		if st != nil {
			return st, nil
		}
	}
	return nil, nil
}

// ReadingRow is one reading on the site detail page, raw from the store.
type ReadingRow struct {
	Index  int64
	Date   *time.Time
	Hepres *string
	Heleve *string
	Actemp *string
	Achumi *string
}

const siteReadingsSQL = `
    SELECT "index", date, hepres, heleve, actemp, achumi
    FROM mrtb
    WHERE siteid = $1 AND date IS NOT NULL
    ORDER BY date DESC
    LIMIT $2
`

// SiteReadings returns a site's most recent readings, newest first.
func (s *Store) SiteReadings(ctx context.Context, siteKey string, take int) ([]ReadingRow, error) {
	rows, err := s.pool.Query(ctx, siteReadingsSQL, siteKey, take)
	if err != nil {
		return nil, queryErr("site_readings", err)
	}
	defer rows.Close()

	out := make([]ReadingRow, 0, take)
	for rows.Next() {
		var r ReadingRow
		if err := rows.Scan(&r.Index, &r.Date, &r.Hepres, &r.Heleve, &r.Actemp, &r.Achumi); err != nil {
			return nil, queryErr("site_readings", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func queryErr(query string, err error) error {
	metrics.IncStoreError(query)
	return err
}
