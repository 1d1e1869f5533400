package approval

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"credwise-backend/internal/domain/loan"
	"credwise-backend/internal/domain/schedule"
	"credwise-backend/internal/domain/uow"
)

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Approve moves a pending loan to active: computes the EMI, generates the
// full installment ledger and seeds the loan's repayment position, all in
// one locked transaction. Any schedule left over from an earlier approval
// round is dropped and regenerated, so re-approving a reverted loan starts
// from a clean ledger.
func (u *Usecase) Approve(ctx context.Context, in ApproveInput) (*ApprovalDTO, error) {
	approvedAt := in.ApprovalDate
	if approvedAt.IsZero() {
		approvedAt = time.Now()
	}
	approvedAt = approvedAt.UTC()

	var dto *ApprovalDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.LoanAccount) error {
		switch l.Status {
		case loan.StatusPending:
		case loan.StatusActive, loan.StatusOverdue:
			return loan.ErrAlreadyApproved
		default:
			return loan.ErrInvalidTransition
		}

		emi, err := schedule.ComputeEMI(l.Principal, l.AnnualRatePercent, l.TenureMonths)
		if err != nil {
			return err
		}

		firstDue := schedule.DateOnly(approvedAt).AddDate(0, 1, 0)
		rows := schedule.Build(l.ID, l.Principal, l.AnnualRatePercent, l.TenureMonths, emi, firstDue)

		if err := r.Installments.DeleteByLoanID(ctx, l.ID); err != nil {
			return err
		}
		if err := r.Installments.BulkCreate(ctx, rows); err != nil {
			return err
		}

		first := rows[0]
		l.EMI = emi
		l.Status = loan.StatusActive
		l.StatusUpdatedAt = approvedAt
		l.OutstandingBalance = l.Principal
		l.NextDueDate = &first.DueDate
		l.AmountDue = first.AmountDue
		l.OverdueMonths = 0
		l.CurrentOverdueAmount = decimal.Zero
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = &ApprovalDTO{
			LoanID:             l.LoanID,
			Status:             string(l.Status),
			EMI:                emi,
			OutstandingBalance: l.OutstandingBalance,
			Installments:       len(rows),
			FirstDueDate:       first.DueDate,
			LastDueDate:        rows[len(rows)-1].DueDate,
			AmountDue:          l.AmountDue,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
