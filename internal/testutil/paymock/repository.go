package paymock

import (
	"context"

	domain "credwise-backend/internal/domain/payment"
)

// Repo is a function-backed mock that satisfies payment.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, t *domain.Transaction) error
	ListByLoanIDFn func(ctx context.Context, loanID uint64) ([]*domain.Transaction, error)
}

func (m *Repo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]*domain.Transaction, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}
