package loan

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	domain "credwise-backend/internal/domain/loan"
	domainPayment "credwise-backend/internal/domain/payment"
	"credwise-backend/internal/domain/schedule"
	"credwise-backend/pkg/id"
)

type Usecase struct {
	loans        domain.Repository
	installments schedule.Repository
	payments     domainPayment.Repository
}

func NewUsecase(loans domain.Repository, installments schedule.Repository, payments domainPayment.Repository) *Usecase {
	return &Usecase{loans: loans, installments: installments, payments: payments}
}

// Create registers a loan application in the pending state with an EMI
// preview. The balance and ledger stay empty until approval. A customer
// can hold at most one pending application at a time.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if len(in.CustomerID) != 32 {
		return nil, errors.New("customer_id must be a 32-char id")
	}
	emi, err := schedule.ComputeEMI(in.Principal, in.AnnualRatePercent, in.TenureMonths)
	if err != nil {
		return nil, err
	}

	pending, err := u.loans.GetPendingLoanByCustomerID(ctx, in.CustomerID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("customer %s already has a pending loan: %s", in.CustomerID, pending.LoanID)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	l := &domain.LoanAccount{
		LoanID:               id.NewID32(),
		CustomerID:           in.CustomerID,
		Principal:            in.Principal,
		AnnualRatePercent:    in.AnnualRatePercent,
		TenureMonths:         in.TenureMonths,
		EMI:                  emi,
		Status:               domain.StatusPending,
		OutstandingBalance:   decimal.Zero,
		AmountDue:            decimal.Zero,
		CurrentOverdueAmount: decimal.Zero,
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// GetSchedule returns the installment ledger ordered by due date.
func (u *Usecase) GetSchedule(ctx context.Context, loanID string) ([]InstallmentDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	rows, err := u.installments.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	out := make([]InstallmentDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, InstallmentDTO{
			InstallmentID:    row.InstallmentID,
			Sequence:         row.Sequence,
			DueDate:          row.DueDate,
			AmountDue:        row.AmountDue,
			PrincipalPortion: row.PrincipalPortion,
			InterestPortion:  row.InterestPortion,
			Status:           string(row.Status),
			PaidAt:           row.PaidAt,
		})
	}
	return out, nil
}

// GetPayments returns the append-only payment history, newest first.
func (u *Usecase) GetPayments(ctx context.Context, loanID string) ([]PaymentDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	txns, err := u.payments.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	out := make([]PaymentDTO, 0, len(txns))
	for _, t := range txns {
		out = append(out, PaymentDTO{
			PaymentID:    t.PaymentID,
			PaidAmount:   t.PaidAmount,
			Method:       t.Method,
			Reference:    t.Reference,
			ResultStatus: t.ResultStatus,
			PaidAt:       t.PaidAt,
		})
	}
	return out, nil
}

func toDTO(l *domain.LoanAccount) *LoanDTO {
	return &LoanDTO{
		LoanID:               l.LoanID,
		CustomerID:           l.CustomerID,
		Principal:            l.Principal,
		AnnualRatePercent:    l.AnnualRatePercent,
		TenureMonths:         l.TenureMonths,
		EMI:                  l.EMI,
		Status:               string(l.Status),
		OutstandingBalance:   l.OutstandingBalance,
		NextDueDate:          l.NextDueDate,
		AmountDue:            l.AmountDue,
		OverdueMonths:        l.OverdueMonths,
		CurrentOverdueAmount: l.CurrentOverdueAmount,
		CreatedAt:            l.CreatedAt,
	}
}
