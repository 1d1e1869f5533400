package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	loanDomain "credwise-backend/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.LoanAccount) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.LoanAccount, error) {
	var out loanDomain.LoanAccount
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	if res.Error != nil {
		return nil, translateNotFound(res.Error)
	}
	return &out, nil
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.LoanAccount, error) {
	q := r.db.WithContext(ctx)
	// sqlite (tests) has no row locks and rejects FOR UPDATE; its writer
	// is single anyway.
	if r.db.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out loanDomain.LoanAccount
	res := q.Where("loan_id = ?", loanID).First(&out)
	if res.Error != nil {
		return nil, translateNotFound(res.Error)
	}
	return &out, nil
}

func (r *LoanRepository) GetPendingLoanByCustomerID(ctx context.Context, customerID string) (*loanDomain.LoanAccount, error) {
	var out loanDomain.LoanAccount
	res := r.db.WithContext(ctx).
		Where("customer_id = ? AND status = ?", customerID, loanDomain.StatusPending).
		Order("created_at DESC, id DESC").
		First(&out)
	if res.Error != nil {
		return nil, translateNotFound(res.Error)
	}
	return &out, nil
}

func (r *LoanRepository) ListByStatus(ctx context.Context, statuses ...loanDomain.Status) ([]*loanDomain.LoanAccount, error) {
	var out []*loanDomain.LoanAccount
	res := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

// Save writes the full aggregate guarded by the optimistic version column.
// A row whose version moved on underneath the caller affects zero rows and
// surfaces ErrConflict so the whole transaction rolls back.
func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.LoanAccount) error {
	current := l.Version
	l.Version = current + 1
	res := r.db.WithContext(ctx).
		Model(&loanDomain.LoanAccount{}).
		Where("id = ? AND version = ?", l.ID, current).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(l)
	if res.Error != nil {
		l.Version = current
		return res.Error
	}
	if res.RowsAffected == 0 {
		l.Version = current
		return loanDomain.ErrConflict
	}
	return nil
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return loanDomain.ErrNotFound
	}
	return err
}
