package payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"credwise-backend/internal/domain/loan"
	domainPayment "credwise-backend/internal/domain/payment"
	"credwise-backend/internal/domain/uow"
	"credwise-backend/pkg/id"
)

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Submit runs one payment through the allocator inside a single locked
// transaction: transaction insert, installment updates and the loan save
// commit together or not at all. Rejections (bad amount, closed loan,
// overpayment) happen before any write, so no PaymentTransaction is
// recorded for them.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*ReceiptDTO, error) {
	paidAt := in.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now()
	}
	paidAt = paidAt.UTC()

	var dto *ReceiptDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.LoanAccount) error {
		ledger, err := r.Installments.ListByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}

		alloc, err := Allocate(l, ledger, in.Amount, paidAt)
		if err != nil {
			return err
		}

		txn := &domainPayment.Transaction{
			PaymentID:    id.NewID32(),
			LoanID:       l.ID,
			PaidAmount:   in.Amount,
			Method:       in.Method,
			Reference:    uuid.NewString(),
			ResultStatus: domainPayment.ResultSuccess,
			PaidAt:       paidAt,
		}
		if err := r.Payments.Create(ctx, txn); err != nil {
			return err
		}
		for _, row := range alloc.Completed {
			if err := r.Installments.Save(ctx, row); err != nil {
				return err
			}
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = &ReceiptDTO{
			PaymentID:            txn.PaymentID,
			Reference:            txn.Reference,
			LoanID:               l.LoanID,
			Status:               string(l.Status),
			OutstandingBalance:   l.OutstandingBalance,
			NextDueDate:          l.NextDueDate,
			AmountDue:            l.AmountDue,
			OverdueMonths:        l.OverdueMonths,
			CurrentOverdueAmount: l.CurrentOverdueAmount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
