package mysql

import (
	"context"

	"gorm.io/gorm"

	paymentDomain "credwise-backend/internal/domain/payment"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, t *paymentDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *PaymentRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]*paymentDomain.Transaction, error) {
	var out []*paymentDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("paid_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
