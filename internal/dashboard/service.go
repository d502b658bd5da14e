package dashboard

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/InhwanCho/penta-works-api/internal/db"
	"github.com/InhwanCho/penta-works-api/internal/site"
)

// isoMillis matches the timestamp format existing dashboard consumers parse.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Querier is the slice of the store the dashboard snapshot needs.
type Querier interface {
	ListSites(ctx context.Context) ([]db.Site, error)
	LastSeenBySite(ctx context.Context) (map[string]time.Time, error)
	CountBySiteSince(ctx context.Context, since time.Time) (map[string]int, error)
	LatestReadingBySite(ctx context.Context) (map[string]db.LatestReading, error)
	ListCtrlRows(ctx context.Context) ([]db.CtrlRow, error)
}

// Row is one dashboard line per site.
type Row struct {
	SiteDB   string   `json:"siteDb"`
	SiteSlug string   `json:"siteSlug"`
	Name     *string  `json:"name"`
	LastAt   *string  `json:"lastAt"` // ISO string or null
	LagMin   *int64   `json:"lagMin"`
	Count1h  int      `json:"count1h"`
	Count24h int      `json:"count24h"`
	HePsi    *float64 `json:"hePsi"`
	HePct    *float64 `json:"hePct"`
}

// Meta carries the request-time window instants, computed once and reused for
// every site.
type Meta struct {
	NowMs      int64 `json:"nowMs"`
	Since1hMs  int64 `json:"since1hMs"`
	Since24hMs int64 `json:"since24hMs"`
}

// Stats summarizes the fleet for the header cards.
type Stats struct {
	TotalSites      int `json:"totalSites"`
	Active1h        int `json:"active1h"`
	Stale24h        int `json:"stale24h"`
	Total24hRecords int `json:"total24hRecords"`
}

// Snapshot is the full dashboard response body.
type Snapshot struct {
	Meta        Meta                      `json:"meta"`
	Stats       Stats                     `json:"stats"`
	Rows        []Row                     `json:"rows"`
	Ctrl        map[string]site.CtrlRange `json:"ctrl"`
	CtrlDefault *site.CtrlRange           `json:"ctrlDefault"`
}

// RangeFor resolves the threshold range applying to a site, falling back to
// the fleet default when the site has no row of its own.
func (s *Snapshot) RangeFor(siteKey string) *site.CtrlRange {
	return site.ResolveCtrl(s.Ctrl, s.CtrlDefault, siteKey)
}

// Service computes dashboard snapshots. Stateless; every snapshot is
// recomputed from the store so the fleet view is always fresh.
type Service struct {
	store Querier
}

// New constructs the dashboard service.
func New(store Querier) *Service {
	return &Service{store: store}
}

// Snapshot produces one row per known site with its latest-reading metadata,
// trailing 1h/24h activity counts and threshold config, plus summary stats.
// The independent store fetches run concurrently and are joined only after
// all complete. Rows are sorted by last-reading time descending; sites that
// never reported sort last.
func (s *Service) Snapshot(ctx context.Context, now time.Time) (*Snapshot, error) {
	since1h := now.Add(-1 * time.Hour)
	since24h := now.Add(-24 * time.Hour)

	var (
		sites    []db.Site
		lastSeen map[string]time.Time
		count1h  map[string]int
		count24h map[string]int
		latest   map[string]db.LatestReading
		ctrlRows []db.CtrlRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sites, err = s.store.ListSites(gctx)
		return err
	})
	g.Go(func() (err error) {
		lastSeen, err = s.store.LastSeenBySite(gctx)
		return err
	})
	g.Go(func() (err error) {
		count1h, err = s.store.CountBySiteSince(gctx, since1h)
		return err
	})
	g.Go(func() (err error) {
		count24h, err = s.store.CountBySiteSince(gctx, since24h)
		return err
	})
	g.Go(func() (err error) {
		latest, err = s.store.LatestReadingBySite(gctx)
		return err
	})
	g.Go(func() (err error) {
		ctrlRows, err = s.store.ListCtrlRows(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ctrl := make(map[string]site.CtrlRange, len(ctrlRows))
	for _, r := range ctrlRows {
		ctrl[r.Site] = site.CtrlRange{
			Mrplel: site.ParseNumberLoose(r.Mrplel),
			Mrpleh: site.ParseNumberLoose(r.Mrpleh),
			Mrlevl: site.ParseNumberLoose(r.Mrlevl),
			Mrlevh: site.ParseNumberLoose(r.Mrlevh),
		}
	}
	var ctrlDefault *site.CtrlRange
	if def, ok := ctrl[site.DefaultCtrlKey]; ok {
		ctrlDefault = &def
	}

	rows := make([]Row, 0, len(sites))
	lastMs := make(map[string]int64, len(sites)) // siteDb -> epoch ms, 0 when never seen
	for _, st := range sites {
		row := Row{
			SiteDB:   st.SiteDB,
			SiteSlug: site.DisplaySlug(st.SiteDB),
			Name:     st.Name,
			Count1h:  count1h[st.SiteDB],
			Count24h: count24h[st.SiteDB],
		}

		if last, ok := lastSeen[st.SiteDB]; ok {
			iso := last.UTC().Format(isoMillis)
			row.LastAt = &iso
			lag := int64(now.Sub(last) / time.Minute)
			if lag < 0 {
				lag = 0
			}
			row.LagMin = &lag
			lastMs[st.SiteDB] = last.UnixMilli()
		}

		if he, ok := latest[st.SiteDB]; ok {
			row.HePsi = site.ParseNumberLoose(he.Hepres)
			row.HePct = site.ParseNumberLoose(he.Heleve)
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return lastMs[rows[i].SiteDB] > lastMs[rows[j].SiteDB]
	})

	stats := Stats{TotalSites: len(rows)}
	active24h := 0
	for _, row := range rows {
		ms := lastMs[row.SiteDB]
		if row.LastAt != nil && ms >= since1h.UnixMilli() {
			stats.Active1h++
		}
		if row.LastAt != nil && ms >= since24h.UnixMilli() {
			active24h++
		}
		stats.Total24hRecords += row.Count24h
	}
	stats.Stale24h = stats.TotalSites - active24h

	return &Snapshot{
		Meta: Meta{
			NowMs:      now.UnixMilli(),
			Since1hMs:  since1h.UnixMilli(),
			Since24hMs: since24h.UnixMilli(),
		},
		Stats:       stats,
		Rows:        rows,
		Ctrl:        ctrl,
		CtrlDefault: ctrlDefault,
	}, nil
}
