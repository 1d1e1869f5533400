package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateLoanInput struct {
	CustomerID        string          `json:"customer_id"`
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TenureMonths      int             `json:"tenure_months"`
}

type LoanDTO struct {
	LoanID            string          `json:"loan_id"`
	CustomerID        string          `json:"customer_id"`
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TenureMonths      int             `json:"tenure_months"`
	EMI               decimal.Decimal `json:"emi"`
	Status            string          `json:"status"`

	OutstandingBalance   decimal.Decimal `json:"outstanding_balance"`
	NextDueDate          *time.Time      `json:"next_due_date,omitempty"`
	AmountDue            decimal.Decimal `json:"amount_due"`
	OverdueMonths        int             `json:"overdue_months"`
	CurrentOverdueAmount decimal.Decimal `json:"current_overdue_amount"`

	CreatedAt time.Time `json:"created_at"`
}

type InstallmentDTO struct {
	InstallmentID    string          `json:"installment_id"`
	Sequence         int             `json:"sequence"`
	DueDate          time.Time       `json:"due_date"`
	AmountDue        decimal.Decimal `json:"amount_due"`
	PrincipalPortion decimal.Decimal `json:"principal_portion"`
	InterestPortion  decimal.Decimal `json:"interest_portion"`
	Status           string          `json:"status"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
}

type PaymentDTO struct {
	PaymentID    string          `json:"payment_id"`
	PaidAmount   decimal.Decimal `json:"paid_amount"`
	Method       string          `json:"method"`
	Reference    string          `json:"reference"`
	ResultStatus string          `json:"result_status"`
	PaidAt       time.Time       `json:"paid_at"`
}
