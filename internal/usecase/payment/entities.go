package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubmitInput struct {
	LoanID string
	Amount decimal.Decimal
	Method string
	// Payment timestamp from the gateway; zero means "now".
	PaidAt time.Time
}

// ReceiptDTO is what collaborators get back after an allocation: the
// recorded transaction plus the loan's recomputed position.
type ReceiptDTO struct {
	PaymentID string `json:"payment_id"`
	Reference string `json:"reference"`
	LoanID    string `json:"loan_id"`

	Status               string          `json:"status"`
	OutstandingBalance   decimal.Decimal `json:"outstanding_balance"`
	NextDueDate          *time.Time      `json:"next_due_date,omitempty"`
	AmountDue            decimal.Decimal `json:"amount_due"`
	OverdueMonths        int             `json:"overdue_months"`
	CurrentOverdueAmount decimal.Decimal `json:"current_overdue_amount"`
}
