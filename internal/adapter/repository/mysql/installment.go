package mysql

import (
	"context"

	"gorm.io/gorm"

	scheduleDomain "credwise-backend/internal/domain/schedule"
)

type InstallmentRepository struct{ db *gorm.DB }

func NewInstallmentRepository(db *gorm.DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

func (r *InstallmentRepository) BulkCreate(ctx context.Context, rows []*scheduleDomain.Installment) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(rows).Error
}

func (r *InstallmentRepository) DeleteByLoanID(ctx context.Context, loanID uint64) error {
	return r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Delete(&scheduleDomain.Installment{}).Error
}

func (r *InstallmentRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]*scheduleDomain.Installment, error) {
	var out []*scheduleDomain.Installment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("due_date ASC").
		Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) Save(ctx context.Context, row *scheduleDomain.Installment) error {
	return r.db.WithContext(ctx).Save(row).Error
}
