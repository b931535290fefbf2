package cibil

import (
	"time"

	domain "cibil-mock-backend/internal/domain/cibil"
	"cibil-mock-backend/pkg/id"
)

// Status cut-offs for a single uniform draw in [0,1).
const (
	reportedCutoff = 0.6
	resolvedCutoff = 0.9
)

// pastDate is now minus [1, maxMonthsAgo] months minus [0, 29] days.
func (g *Generator) pastDate(maxMonthsAgo int) time.Time {
	if maxMonthsAgo < 1 {
		maxMonthsAgo = domain.DefaultMaxMonthsAgo
	}
	months := g.f.Number(1, maxMonthsAgo)
	days := g.f.Number(0, domain.MaxExtraDays)
	return g.now().UTC().AddDate(0, -months, -days)
}

func (g *Generator) syntheticID() string { return id.Synthetic(g.f) }

func (g *Generator) referenceCode() string { return id.Reference(g.f) }

func (g *Generator) amount(min, max int) int { return g.f.Number(min, max) }

func (g *Generator) status() domain.Status { return statusFromDraw(g.f.Float64Range(0, 1)) }

func (g *Generator) blockNumber() int {
	return g.f.Number(domain.MinBlockNumber, domain.MaxBlockNumber)
}

// resolutionOffset is a whole number of seconds in (0, MaxResolutionDays].
func (g *Generator) resolutionOffset() time.Duration {
	maxSecs := domain.MaxResolutionDays * 24 * 60 * 60
	return time.Duration(g.f.Number(1, maxSecs)) * time.Second
}

// statusFromDraw maps u in [0,1): <0.6 REPORTED, <0.9 RESOLVED, else PENDING.
func statusFromDraw(u float64) domain.Status {
	switch {
	case u < reportedCutoff:
		return domain.StatusReported
	case u < resolvedCutoff:
		return domain.StatusResolved
	default:
		return domain.StatusPending
	}
}
