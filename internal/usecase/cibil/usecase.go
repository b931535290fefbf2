package cibil

import (
	"context"

	domain "cibil-mock-backend/internal/domain/cibil"
)

// Kinds label which entry point produced a report set.
const (
	KindReports = "reports"
	KindSummary = "summary"
)

// Recorder observes every generated set (metrics).
type Recorder interface {
	ObserveReportSet(kind string, reports []domain.Report)
}

// Usecase serves report sets and summaries, synthesizing afresh on every call.
type Usecase struct {
	gen *Generator
	rec Recorder
}

// NewUsecase falls back to a randomly seeded generator when gen is nil.
func NewUsecase(gen *Generator, rec Recorder) *Usecase {
	if gen == nil {
		gen = NewGenerator(nil, nil)
	}
	return &Usecase{gen: gen, rec: rec}
}

// GetReports always succeeds; the set may be empty.
func (u *Usecase) GetReports(_ context.Context, borrowerID string) []domain.Report {
	reports := u.gen.Reports(borrowerID)
	u.observe(KindReports, reports)
	return reports
}

// GetSummary synthesizes a fresh set and reduces it. It shares nothing
// with a previous GetReports call for the same borrower.
func (u *Usecase) GetSummary(_ context.Context, borrowerID string) domain.Summary {
	reports := u.gen.Reports(borrowerID)
	u.observe(KindSummary, reports)
	return Summarize(reports)
}

func (u *Usecase) observe(kind string, reports []domain.Report) {
	if u.rec != nil {
		u.rec.ObserveReportSet(kind, reports)
	}
}
