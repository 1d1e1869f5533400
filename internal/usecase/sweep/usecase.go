package sweep

import (
	"context"
	"log"
	"strconv"
	"time"

	"credwise-backend/internal/domain/loan"
	"credwise-backend/internal/domain/schedule"
	"credwise-backend/internal/domain/uow"
)

type Usecase struct {
	loans loan.Repository
	uow   uow.UnitOfWork
}

func NewUsecase(loans loan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, uow: tx}
}

type Result struct {
	AsOf    time.Time `json:"as_of"`
	Scanned int       `json:"scanned"`
	Updated int       `json:"updated"`
	Failed  int       `json:"failed"`
}

// Run recomputes overdue state and status for every active/overdue loan as
// of the given date. Each loan is its own locked transaction, so a sweep
// never races a live payment on the same loan and one bad loan cannot
// abort the pass. Re-running against an unchanged ledger writes nothing.
func (u *Usecase) Run(ctx context.Context, asOf time.Time) (*Result, error) {
	if asOf.IsZero() {
		asOf = time.Now()
	}
	asOf = asOf.UTC()

	candidates, err := u.loans.ListByStatus(ctx, loan.StatusActive, loan.StatusOverdue)
	if err != nil {
		return nil, err
	}

	res := &Result{AsOf: schedule.DateOnly(asOf), Scanned: len(candidates)}
	for _, candidate := range candidates {
		loanID := candidate.LoanID
		err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.LoanAccount) error {
			// Re-check under the lock; a concurrent payment may have
			// closed the loan since the listing.
			if !l.Payable() {
				return nil
			}
			ledger, err := r.Installments.ListByLoanID(ctx, l.ID)
			if err != nil {
				return err
			}
			before := fingerprint(l)
			loan.Recompute(l, schedule.Snapshot(ledger, asOf), asOf)
			if fingerprint(l) == before {
				return nil
			}
			res.Updated++
			return r.Loans.Save(ctx, l)
		})
		if err != nil {
			res.Failed++
			log.Printf("sweep: loan %s failed: %v", loanID, err)
		}
	}
	return res, nil
}

// fingerprint captures the fields Recompute may touch, to skip no-op saves.
func fingerprint(l *loan.LoanAccount) string {
	next := ""
	if l.NextDueDate != nil {
		next = l.NextDueDate.Format("2006-01-02")
	}
	return string(l.Status) + "|" + l.OutstandingBalance.String() + "|" + l.AmountDue.String() + "|" +
		l.CurrentOverdueAmount.String() + "|" + next + "|" + strconv.Itoa(l.OverdueMonths)
}
