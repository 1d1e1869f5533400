package schedmock

import (
	"context"

	domain "credwise-backend/internal/domain/schedule"
)

// Repo is a function-backed mock that satisfies schedule.Repository.
type Repo struct {
	BulkCreateFn     func(ctx context.Context, rows []*domain.Installment) error
	DeleteByLoanIDFn func(ctx context.Context, loanID uint64) error
	ListByLoanIDFn   func(ctx context.Context, loanID uint64) ([]*domain.Installment, error)
	SaveFn           func(ctx context.Context, row *domain.Installment) error
}

func (m *Repo) BulkCreate(ctx context.Context, rows []*domain.Installment) error {
	if m.BulkCreateFn != nil {
		return m.BulkCreateFn(ctx, rows)
	}
	return nil
}

func (m *Repo) DeleteByLoanID(ctx context.Context, loanID uint64) error {
	if m.DeleteByLoanIDFn != nil {
		return m.DeleteByLoanIDFn(ctx, loanID)
	}
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]*domain.Installment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, row *domain.Installment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, row)
	}
	return nil
}
