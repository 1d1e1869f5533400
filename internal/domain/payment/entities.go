package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ResultSuccess = "success"
	ResultFailed  = "failed"
)

// Transaction is the append-only audit record of a payment submission. It
// always carries the full paid amount, whether or not the whole amount
// could be allocated against the ledger. Never mutated after creation.
type Transaction struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	PaymentID string `gorm:"size:32;uniqueIndex:ux_loan_payments_public_id" json:"payment_id"`
	// Numeric FK to loans.id.
	LoanID     uint64          `gorm:"column:loan_id;not null;index" json:"-"`
	PaidAmount decimal.Decimal `gorm:"type:decimal(18,2)" json:"paid_amount"`
	Method     string          `gorm:"size:32" json:"method"`
	// Gateway reference from the (stubbed) payment provider.
	Reference    string    `gorm:"size:64" json:"reference"`
	ResultStatus string    `gorm:"size:16" json:"result_status"`
	PaidAt       time.Time `gorm:"column:paid_at" json:"paid_at"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Transaction) TableName() string { return "loan_payments" }
