package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *LoanAccount) error
	GetByLoanID(ctx context.Context, loanID string) (*LoanAccount, error)
	// GetByLoanIDForUpdate locks the loan row for the rest of the transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*LoanAccount, error)
	GetPendingLoanByCustomerID(ctx context.Context, customerID string) (*LoanAccount, error)
	ListByStatus(ctx context.Context, statuses ...Status) ([]*LoanAccount, error)
	// Save persists the aggregate with an optimistic version check and
	// returns ErrConflict when the row changed underneath the caller.
	Save(ctx context.Context, l *LoanAccount) error
}
