package cibil

import "time"

// Status is the bureau state of one reported delinquency.
type Status string

const (
	StatusReported Status = "REPORTED"
	StatusResolved Status = "RESOLVED"
	StatusPending  Status = "PENDING"
)

// Generation policy. Internal constants, not configuration.
const (
	// AlwaysHasHistoryBorrowerID is the demo borrower that always gets at least MinHistoryReports.
	AlwaysHasHistoryBorrowerID = "user_001"
	MinHistoryReports          = 2
	MaxReports                 = 5

	DefaultMaxMonthsAgo = 6
	MaxExtraDays        = 29
	MaxResolutionDays   = 30

	MinAmount = 1000
	MaxAmount = 50000

	MinBlockNumber = 1
	MaxBlockNumber = 4

	DefaultReason      = "Payment default"
	DefaultDescription = "Loan repayment overdue, reported to the credit bureau by the lender"
)

// LoanReference wraps the synthetic loan identifier the report refers to.
type LoanReference struct {
	ID string `json:"id"`
}

// Report is one synthetic adverse-event entry for a borrower.
type Report struct {
	ID               string        `json:"id"`
	LoanReference    LoanReference `json:"loanReference"`
	BorrowerID       string        `json:"borrowerId"`
	BlockNumber      int           `json:"blockNumber"`
	AmountReported   int           `json:"amountReported"`
	ReportedAt       time.Time     `json:"reportedAt"`
	Status           Status        `json:"status"`
	ResolvedAt       *time.Time    `json:"resolvedAt"` // nil unless Status == RESOLVED
	CIBILReferenceID string        `json:"cibilReferenceId"`
	Reason           string        `json:"reason"`
	Description      string        `json:"description"`
}

// Summary is derived from a newest-first report set; never stored.
type Summary struct {
	TotalReports    int        `json:"totalReports"`
	ActiveReports   int        `json:"activeReports"`
	ResolvedReports int        `json:"resolvedReports"`
	LastReportDate  *time.Time `json:"lastReportDate"`
}
