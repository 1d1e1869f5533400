package uow

import (
	"context"

	"credwise-backend/internal/domain/loan"
	"credwise-backend/internal/domain/payment"
	"credwise-backend/internal/domain/schedule"
)

// Repos bundles the repositories bound to one transaction.
type Repos struct {
	Loans        loan.Repository
	Installments schedule.Repository
	Payments     payment.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn inside a single all-or-nothing transaction.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, then passes it in. Keeps a
	// live payment and a sweep pass from touching the same loan at once.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.LoanAccount) error) error
}
