package uowmock

import (
	"context"

	domain "credwise-backend/internal/domain/loan"
	"credwise-backend/internal/domain/uow"
)

// UoW is an in-memory UnitOfWork: it hands the configured Repos straight
// to fn with no real transaction underneath. WithinLoanTx resolves the
// loan through the Loans repo exactly like the real implementation.
type UoW struct {
	Repos uow.Repos

	// Optional overrides for failure-path tests.
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, loanID string, fn func(r uow.Repos, l *domain.LoanAccount) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *domain.LoanAccount) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	l, err := m.Repos.Loans.GetByLoanIDForUpdate(ctx, loanID)
	if err != nil {
		return err
	}
	return fn(m.Repos, l)
}
