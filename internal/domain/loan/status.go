package loan

import (
	"time"

	"github.com/shopspring/decimal"

	"credwise-backend/internal/domain/schedule"
	"credwise-backend/pkg/money"
)

// Recompute derives the loan's overall status from its ledger snapshot and
// balance. It is the single place the Active/Overdue/Closed transitions
// happen; approval handles Pending -> Active separately and Closed is
// terminal, so both are no-ops here.
//
// Transition rules:
//   - balance settled and nothing pending  -> Closed (fields zeroed)
//   - any pending row past due, balance>0  -> Overdue
//   - otherwise                            -> Active
func Recompute(l *LoanAccount, snap schedule.LedgerSnapshot, now time.Time) {
	if l.Status == StatusPending || l.Status == StatusClosed {
		return
	}

	if money.IsSettled(l.OutstandingBalance) && snap.PendingCount == 0 {
		transition(l, StatusClosed, now)
		l.OutstandingBalance = decimal.Zero
		l.AmountDue = decimal.Zero
		l.NextDueDate = nil
		l.OverdueMonths = 0
		l.CurrentOverdueAmount = decimal.Zero
		return
	}

	l.OverdueMonths = snap.OverdueCount
	l.CurrentOverdueAmount = snap.OverdueAmount
	l.NextDueDate = snap.NextDueDate
	l.AmountDue = money.Min(snap.DueNow, l.OutstandingBalance)

	if snap.OverdueCount > 0 && l.OutstandingBalance.IsPositive() {
		transition(l, StatusOverdue, now)
	} else {
		transition(l, StatusActive, now)
	}
}

func transition(l *LoanAccount, to Status, now time.Time) {
	if l.Status == to {
		return
	}
	l.Status = to
	l.StatusUpdatedAt = now.UTC()
}
