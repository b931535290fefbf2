package cibil

import (
	"fmt"
	"slices"
	"time"

	domain "cibil-mock-backend/internal/domain/cibil"

	"github.com/brianvoe/gofakeit/v6"
)

// Generator synthesizes report records. Safe for concurrent use as long as
// the faker uses a locked source (gofakeit.New does).
type Generator struct {
	f   *gofakeit.Faker
	now func() time.Time
}

// NewGenerator: nil faker → randomly seeded locked faker; nil clock → time.Now.
func NewGenerator(f *gofakeit.Faker, now func() time.Time) *Generator {
	if f == nil {
		f = gofakeit.New(0)
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{f: f, now: now}
}

// Report builds one record for borrowerID at sequence position index.
func (g *Generator) Report(index int, borrowerID string) domain.Report {
	reportedAt := g.pastDate(domain.DefaultMaxMonthsAgo)
	status := g.status()

	r := domain.Report{
		ID:               fmt.Sprintf("cibil_%s_%d", borrowerID, index),
		LoanReference:    domain.LoanReference{ID: g.syntheticID()},
		BorrowerID:       borrowerID,
		BlockNumber:      g.blockNumber(),
		AmountReported:   g.amount(domain.MinAmount, domain.MaxAmount),
		ReportedAt:       reportedAt,
		Status:           status,
		CIBILReferenceID: g.referenceCode(),
		Reason:           domain.DefaultReason,
		Description:      domain.DefaultDescription,
	}
	if status == domain.StatusResolved {
		resolvedAt := reportedAt.Add(g.resolutionOffset())
		r.ResolvedAt = &resolvedAt
	}
	return r
}

// Reports builds the full newest-first record set for borrowerID.
func (g *Generator) Reports(borrowerID string) []domain.Report {
	n := reportCount(g.f.Number(0, domain.MaxReports), borrowerID)

	out := make([]domain.Report, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Report(i, borrowerID))
	}
	slices.SortStableFunc(out, func(a, b domain.Report) int {
		return b.ReportedAt.Compare(a.ReportedAt)
	})
	return out
}

// reportCount applies the history floor for the designated demo borrower.
func reportCount(candidate int, borrowerID string) int {
	if borrowerID == domain.AlwaysHasHistoryBorrowerID {
		return max(candidate, domain.MinHistoryReports)
	}
	return candidate
}
