package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerSnapshot is the pure derivation of a loan's overdue state from its
// installment ledger relative to a reference date. It is recomputed on
// every ledger change and on every sweep pass; nothing here is persisted
// on its own.
type LedgerSnapshot struct {
	AsOf time.Time

	PendingCount  int
	OverdueCount  int
	OverdueAmount decimal.Decimal

	// Earliest pending row, overdue or not.
	NextDueDate *time.Time

	// Currently payable total: overdue amount plus the next non-overdue
	// installment once its due date has arrived.
	DueNow decimal.Decimal
}

// Snapshot walks the ledger once. Rows must be ordered by due date
// ascending, which is how the repository returns them.
func Snapshot(rows []*Installment, asOf time.Time) LedgerSnapshot {
	today := DateOnly(asOf)
	snap := LedgerSnapshot{
		AsOf:          today,
		OverdueAmount: decimal.Zero,
		DueNow:        decimal.Zero,
	}

	var nextCurrent *Installment
	for _, row := range rows {
		if !row.Pending() {
			continue
		}
		snap.PendingCount++
		due := DateOnly(row.DueDate)
		if snap.NextDueDate == nil {
			d := due
			snap.NextDueDate = &d
		}
		if due.Before(today) {
			snap.OverdueCount++
			snap.OverdueAmount = snap.OverdueAmount.Add(row.AmountDue)
		} else if nextCurrent == nil {
			nextCurrent = row
		}
	}

	snap.DueNow = snap.OverdueAmount
	if nextCurrent != nil && !DateOnly(nextCurrent.DueDate).After(today) {
		snap.DueNow = snap.DueNow.Add(nextCurrent.AmountDue)
	}
	return snap
}
