package cibil

import domain "cibil-mock-backend/internal/domain/cibil"

// Summarize reduces a newest-first record set. It does not re-sort: an
// unsorted input yields a wrong LastReportDate.
func Summarize(reports []domain.Report) domain.Summary {
	s := domain.Summary{TotalReports: len(reports)}
	for _, r := range reports {
		switch r.Status {
		case domain.StatusReported:
			s.ActiveReports++
		case domain.StatusResolved:
			s.ResolvedReports++
		}
	}
	if len(reports) > 0 {
		last := reports[0].ReportedAt
		s.LastReportDate = &last
	}
	return s
}
