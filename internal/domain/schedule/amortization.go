package schedule

import (
	"errors"
	"log"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"credwise-backend/pkg/id"
	"credwise-backend/pkg/money"
)

// ErrInvalidScheduleInput rejects non-positive principal/tenure or a
// negative rate before anything is persisted.
var ErrInvalidScheduleInput = errors.New("invalid schedule input")

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// MonthlyRate converts an annual percentage rate to a monthly fraction
// (12% -> 0.01).
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(twelve).Div(hundred)
}

// ComputeEMI returns the fixed monthly installment for the given terms,
// rounded to currency precision.
//
// Zero-rate loans divide the principal flat across the tenure. Everything
// else uses the standard annuity formula P*r*(1+r)^n / ((1+r)^n - 1). The
// exponentiation runs in float64; if it degenerates (NaN, Inf, or a
// vanishing denominator) the flat division is used instead of propagating
// garbage into the schedule.
func ComputeEMI(principal, annualRatePercent decimal.Decimal, tenureMonths int) (decimal.Decimal, error) {
	if principal.LessThanOrEqual(decimal.Zero) || annualRatePercent.IsNegative() || tenureMonths <= 0 {
		return decimal.Zero, ErrInvalidScheduleInput
	}
	months := decimal.NewFromInt(int64(tenureMonths))
	monthly := MonthlyRate(annualRatePercent)
	if monthly.IsZero() {
		return money.Round2(principal.Div(months)), nil
	}

	r, _ := monthly.Float64()
	p, _ := principal.Float64()
	pow := math.Pow(1+r, float64(tenureMonths))
	if math.IsNaN(pow) || math.IsInf(pow, 0) || pow-1 <= 0 {
		log.Printf("amortization: unstable exponentiation for rate=%s tenure=%d, falling back to flat division", annualRatePercent, tenureMonths)
		return money.Round2(principal.Div(months)), nil
	}
	emi := p * r * pow / (pow - 1)
	if math.IsNaN(emi) || math.IsInf(emi, 0) {
		log.Printf("amortization: EMI came out NaN/Inf for rate=%s tenure=%d, falling back to flat division", annualRatePercent, tenureMonths)
		return money.Round2(principal.Div(months)), nil
	}
	return money.Round2(decimal.NewFromFloat(emi)), nil
}

// Build generates the full installment ledger for an approved loan. The
// walk mirrors the amortization month by month: interest on the running
// balance, the rest of the EMI against principal, and the final row forced
// to clear the remaining balance so the principal portions sum to the
// principal exactly, with no residual cents.
//
// A zero tenure yields a single synthetic installment for the whole
// principal due on firstDueDate.
func Build(loanID uint64, principal, annualRatePercent decimal.Decimal, tenureMonths int, emi decimal.Decimal, firstDueDate time.Time) []*Installment {
	first := DateOnly(firstDueDate)
	if tenureMonths <= 0 {
		return []*Installment{{
			InstallmentID:    id.NewID32(),
			LoanID:           loanID,
			Sequence:         1,
			DueDate:          first,
			AmountDue:        principal,
			PrincipalPortion: principal,
			InterestPortion:  decimal.Zero,
			Status:           PaymentPending,
		}}
	}

	monthly := MonthlyRate(annualRatePercent)
	balance := principal
	rows := make([]*Installment, 0, tenureMonths)
	for i := 1; i <= tenureMonths; i++ {
		interest := money.Round2(balance.Mul(monthly))
		var principalPart, amount decimal.Decimal
		if i < tenureMonths {
			amount = emi
			principalPart = emi.Sub(interest)
			if principalPart.IsNegative() {
				principalPart = decimal.Zero
			}
			// A pre-set EMI can outrun the remaining balance before the
			// final row; clamp so the balance never goes negative.
			if balance.Sub(principalPart).IsNegative() {
				principalPart = balance
				amount = principalPart.Add(interest)
			}
		} else {
			// Final row absorbs the rounding residue: principal portion is
			// whatever balance remains.
			principalPart = balance
			amount = balance.Add(interest)
		}

		rows = append(rows, &Installment{
			InstallmentID:    id.NewID32(),
			LoanID:           loanID,
			Sequence:         i,
			DueDate:          first.AddDate(0, i-1, 0),
			AmountDue:        money.Round2(amount),
			PrincipalPortion: principalPart,
			InterestPortion:  interest,
			Status:           PaymentPending,
		})

		balance = balance.Sub(principalPart)
		if balance.IsNegative() {
			balance = decimal.Zero
		}
	}
	return rows
}

// DateOnly truncates a timestamp to its UTC calendar date. Due-date
// comparisons are date-granular throughout.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
