package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/InhwanCho/penta-works-api/internal/site"
)

// The detail page timestamps use the same millisecond ISO form as the
// dashboard rows.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// handleDashboard returns the full fleet snapshot.
// GET /api/dashboard
func (s *Server) handleDashboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	snap, err := s.dash.Snapshot(ctx, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, snap)
}

// handleListSites returns the site directory ordered by key.
// GET /api/sites
func (s *Server) handleListSites(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	sites, err := s.store.ListSites(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sites)
}

// detailRow is one reading on the detail page, sensors coerced to
// numeric-or-null.
type detailRow struct {
	Index  int64    `json:"index"`
	Date   *string  `json:"date"`
	Hepres *float64 `json:"hepres"`
	Heleve *float64 `json:"heleve"`
	Actemp *float64 `json:"actemp"`
	Achumi *float64 `json:"achumi"`
}

// handleSiteDetail returns one site's metadata and recent readings.
// GET /api/sites/:slug?take=N
func (s *Server) handleSiteDetail(c *gin.Context) {
	slug := c.Param("slug")
	take := s.clampTake(c.Query("take"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	found, err := s.store.FindSiteBySlug(ctx, slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if found == nil {
		c.Header("Cache-Control", "no-store")
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
		return
	}

	readings, err := s.store.SiteReadings(ctx, found.SiteDB, take)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var lastAt *string
	rows := make([]detailRow, 0, len(readings))
	for _, r := range readings {
		row := detailRow{
			Index:  r.Index,
			Hepres: site.ToNumber(r.Hepres),
			Heleve: site.ToNumber(r.Heleve),
			Actemp: site.ToNumber(r.Actemp),
			Achumi: site.ToNumber(r.Achumi),
		}
		if r.Date != nil {
			iso := r.Date.UTC().Format(isoMillis)
			row.Date = &iso
			if lastAt == nil {
				lastAt = &iso
			}
		}
		rows = append(rows, row)
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{
		"slug":   slug,
		"site":   found,
		"take":   take,
		"lastAt": lastAt,
		"rows":   rows,
	})
}

// clampTake resolves the requested row count: missing or unparsable input
// falls back to the configured default, then the result is clamped into the
// configured inclusive bounds.
func (s *Server) clampTake(raw string) int {
	take := s.cfg.TakeDefault
	if raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			take = v
		}
	}
	if take < s.cfg.TakeMin {
		take = s.cfg.TakeMin
	}
	if take > s.cfg.TakeMax {
		take = s.cfg.TakeMax
	}
	return take
}
