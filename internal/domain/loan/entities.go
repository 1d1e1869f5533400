package loan

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusOverdue Status = "overdue"
	StatusClosed  Status = "closed"
)

var (
	ErrNotFound             = errors.New("loan not found")
	ErrAlreadyApproved      = errors.New("loan already approved")
	ErrInvalidTransition    = errors.New("invalid loan state transition")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrConflict             = errors.New("loan modified concurrently, reload and retry")
)

// OverpaymentError rejects amounts above the outstanding balance and tells
// the caller the most it can accept instead of silently capping.
type OverpaymentError struct {
	Max decimal.Decimal
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("payment exceeds outstanding balance; max acceptable amount is %s", e.Max.StringFixed(2))
}

type LoanAccount struct {
	ID                uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID            string          `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	CustomerID        string          `gorm:"size:32;index:idx_loans_customer_active" json:"customer_id"`
	Principal         decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal"`
	AnnualRatePercent decimal.Decimal `gorm:"type:decimal(6,2)" json:"annual_rate_percent"`
	TenureMonths      int             `gorm:"column:tenure_months" json:"tenure_months"`
	EMI               decimal.Decimal `gorm:"column:emi;type:decimal(18,2)" json:"emi"`

	OutstandingBalance   decimal.Decimal `gorm:"type:decimal(18,2)" json:"outstanding_balance"`
	NextDueDate          *time.Time      `gorm:"type:date" json:"next_due_date,omitempty"`
	AmountDue            decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount_due"`
	Status               Status          `gorm:"type:enum('pending','active','overdue','closed');default:'pending'" json:"status"`
	OverdueMonths        int             `gorm:"column:overdue_months" json:"overdue_months"`
	CurrentOverdueAmount decimal.Decimal `gorm:"type:decimal(18,2)" json:"current_overdue_amount"`

	// Version backs the optimistic concurrency check on saves.
	Version uint64 `gorm:"column:version;default:0" json:"-"`

	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LoanAccount) TableName() string { return "loans" }

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// MonthlyRate converts the stored annual percentage to a monthly fraction,
// e.g. 12% -> 0.01.
func (l *LoanAccount) MonthlyRate() decimal.Decimal {
	return l.AnnualRatePercent.Div(twelve).Div(hundred)
}

// Payable reports whether the loan can accept payments at all.
func (l *LoanAccount) Payable() bool {
	return l.Status == StatusActive || l.Status == StatusOverdue
}
