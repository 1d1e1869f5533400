package payment

import "context"

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	// ListByLoanID returns the payment history, newest first.
	ListByLoanID(ctx context.Context, loanID uint64) ([]*Transaction, error)
}
