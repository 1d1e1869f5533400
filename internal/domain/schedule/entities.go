package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// Installment is one row of a loan's repayment ledger. Rows are created in
// bulk at approval time, ordered by due date and unique per (loan, due
// date). A row moves pending -> completed exactly once and is deleted only
// when a re-approval regenerates the whole schedule.
type Installment struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	InstallmentID string `gorm:"size:32;uniqueIndex:ux_installments_public_id" json:"installment_id"`
	// Numeric FK to loans.id; back-reference, not ownership.
	LoanID   uint64    `gorm:"column:loan_id;not null;index;uniqueIndex:ux_installments_loan_due" json:"-"`
	Sequence int       `gorm:"column:sequence;not null" json:"sequence"`
	DueDate  time.Time `gorm:"column:due_date;type:date;not null;uniqueIndex:ux_installments_loan_due" json:"due_date"`

	AmountDue decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount_due"`
	// Schedule-time amortization split, kept for statements. Payment-time
	// interest is recomputed against the live balance instead.
	PrincipalPortion decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal_portion"`
	InterestPortion  decimal.Decimal `gorm:"type:decimal(18,2)" json:"interest_portion"`

	Status PaymentStatus `gorm:"type:enum('pending','completed');default:'pending'" json:"status"`
	PaidAt *time.Time    `gorm:"column:paid_at" json:"paid_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Installment) TableName() string { return "installments" }

// Pending reports whether the row still awaits payment.
func (i *Installment) Pending() bool { return i.Status == PaymentPending }

// Complete marks the row paid. No-op if already completed; rows never
// revert.
func (i *Installment) Complete(at time.Time) {
	if i.Status == PaymentCompleted {
		return
	}
	i.Status = PaymentCompleted
	t := at
	i.PaidAt = &t
}
