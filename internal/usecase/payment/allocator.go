package payment

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"credwise-backend/internal/domain/loan"
	"credwise-backend/internal/domain/schedule"
	"credwise-backend/pkg/money"
)

// Allocation is the outcome of applying one payment to a ledger snapshot:
// the rows that changed, how much of the payment found a home, and the
// snapshot the state machine was run against.
type Allocation struct {
	Completed []*schedule.Installment
	Applied   decimal.Decimal
	Unapplied decimal.Decimal
	Snapshot  schedule.LedgerSnapshot
}

// Allocate applies amount to the loan's pending installments in strict
// due-date order and finishes by recomputing the loan's status. Pure: it
// mutates only the loan and ledger rows it was handed, so the caller can
// persist the whole result atomically or throw it away.
//
// Rules, in order:
//   - amount must be positive and the loan active or overdue;
//   - amounts above the outstanding balance are rejected outright with the
//     maximum acceptable amount (no silent capping);
//   - an amount equal to the balance (within the rounding epsilon) is a
//     payoff: every pending row completes and the balance zeroes;
//   - otherwise each installment absorbs min(remaining, amountDue), with
//     interest recomputed against the live outstanding balance rather than
//     the schedule-time split, and only a fully covered installment is
//     marked completed. A partially covered row stays pending with its
//     amountDue untouched (product decision, see DESIGN.md).
func Allocate(l *loan.LoanAccount, ledger []*schedule.Installment, amount decimal.Decimal, now time.Time) (*Allocation, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount must be positive: %w", loan.ErrInvalidPaymentAmount)
	}
	if !l.Payable() {
		return nil, fmt.Errorf("loan is %s, not payable: %w", l.Status, loan.ErrInvalidPaymentAmount)
	}
	if amount.Sub(l.OutstandingBalance).GreaterThan(money.Epsilon) {
		return nil, &loan.OverpaymentError{Max: l.OutstandingBalance}
	}

	alloc := &Allocation{Applied: decimal.Zero, Unapplied: decimal.Zero}

	if l.OutstandingBalance.Sub(amount).Abs().LessThanOrEqual(money.Epsilon) {
		// Payoff: the balance is the settlement figure, future interest is
		// waived and the whole ledger completes.
		for _, row := range ledger {
			if !row.Pending() {
				continue
			}
			row.Complete(now)
			alloc.Completed = append(alloc.Completed, row)
		}
		l.OutstandingBalance = decimal.Zero
		alloc.Applied = amount
	} else {
		monthly := l.MonthlyRate()
		remaining := amount
		for _, row := range ledger {
			if remaining.LessThanOrEqual(decimal.Zero) {
				break
			}
			if !row.Pending() {
				continue
			}
			applied := money.Min(remaining, row.AmountDue)
			interest := money.Round2(l.OutstandingBalance.Mul(monthly))
			principal := applied.Sub(interest)
			if principal.IsNegative() {
				principal = decimal.Zero
			}
			principal = money.Min(principal, l.OutstandingBalance)

			l.OutstandingBalance = l.OutstandingBalance.Sub(principal)
			remaining = remaining.Sub(applied)
			if applied.Equal(row.AmountDue) {
				row.Complete(now)
				alloc.Completed = append(alloc.Completed, row)
			}
		}
		if l.OutstandingBalance.IsNegative() {
			l.OutstandingBalance = decimal.Zero
		}
		alloc.Applied = amount.Sub(remaining)
		alloc.Unapplied = remaining
	}

	alloc.Snapshot = schedule.Snapshot(ledger, now)
	loan.Recompute(l, alloc.Snapshot, now)
	return alloc, nil
}
