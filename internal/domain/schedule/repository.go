package schedule

import "context"

type Repository interface {
	// BulkCreate inserts a freshly generated schedule.
	BulkCreate(ctx context.Context, rows []*Installment) error
	// DeleteByLoanID clears an existing schedule (re-approval regeneration).
	DeleteByLoanID(ctx context.Context, loanID uint64) error
	// ListByLoanID returns the full ledger ordered by due date ascending.
	ListByLoanID(ctx context.Context, loanID uint64) ([]*Installment, error)
	Save(ctx context.Context, row *Installment) error
}
