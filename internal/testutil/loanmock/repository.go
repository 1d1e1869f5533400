package loanmock

import (
	"context"

	domain "credwise-backend/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies loan.Repository. Only the
// hooks a test sets are live; everything else falls back to a sane default.
type Repo struct {
	CreateFn                     func(ctx context.Context, l *domain.LoanAccount) error
	GetByLoanIDFn                func(ctx context.Context, loanID string) (*domain.LoanAccount, error)
	GetByLoanIDForUpdateFn       func(ctx context.Context, loanID string) (*domain.LoanAccount, error)
	GetPendingLoanByCustomerIDFn func(ctx context.Context, customerID string) (*domain.LoanAccount, error)
	ListByStatusFn               func(ctx context.Context, statuses ...domain.Status) ([]*domain.LoanAccount, error)
	SaveFn                       func(ctx context.Context, l *domain.LoanAccount) error
}

func (m *Repo) Create(ctx context.Context, l *domain.LoanAccount) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.LoanAccount, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.LoanAccount, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetPendingLoanByCustomerID(ctx context.Context, customerID string) (*domain.LoanAccount, error) {
	if m.GetPendingLoanByCustomerIDFn != nil {
		return m.GetPendingLoanByCustomerIDFn(ctx, customerID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByStatus(ctx context.Context, statuses ...domain.Status) ([]*domain.LoanAccount, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, statuses...)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, l *domain.LoanAccount) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
