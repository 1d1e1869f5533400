package approval

import (
	"time"

	"github.com/shopspring/decimal"
)

type ApproveInput struct {
	LoanID string
	// Date the approval takes effect; the first installment falls due one
	// calendar month later. Zero means "today".
	ApprovalDate time.Time
}

type ApprovalDTO struct {
	LoanID             string          `json:"loan_id"`
	Status             string          `json:"status"`
	EMI                decimal.Decimal `json:"emi"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	Installments       int             `json:"installments"`
	FirstDueDate       time.Time       `json:"first_due_date"`
	LastDueDate        time.Time       `json:"last_due_date"`
	AmountDue          decimal.Decimal `json:"amount_due"`
}
