package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	loanDomain "credwise-backend/internal/domain/loan"
	"credwise-backend/internal/domain/schedule"
	"credwise-backend/internal/domain/uow"
	"credwise-backend/internal/testutil/loanmock"
	"credwise-backend/internal/testutil/paymock"
	"credwise-backend/internal/testutil/schedmock"
	"credwise-backend/internal/testutil/uowmock"
	approvalUC "credwise-backend/internal/usecase/approval"
	loanUC "credwise-backend/internal/usecase/loan"
	paymentUC "credwise-backend/internal/usecase/payment"
	sweepUC "credwise-backend/internal/usecase/sweep"
)

const (
	testLoanID     = "a1b2c3d4e5f60718293a4b5c6d7e8f90"
	testCustomerID = "c0ffee00c0ffee00c0ffee00c0ffee00"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// testLedgerLoan is the canonical 120 000 @ 12% / 12 months loan with a
// freshly built schedule starting 2026-02-01.
func testLedgerLoan(t *testing.T) (*loanDomain.LoanAccount, []*schedule.Installment) {
	t.Helper()
	principal := decimal.NewFromInt(120_000)
	rate := decimal.NewFromInt(12)
	emi, err := schedule.ComputeEMI(principal, rate, 12)
	require.NoError(t, err)

	l := &loanDomain.LoanAccount{
		ID:                   1,
		LoanID:               testLoanID,
		CustomerID:           testCustomerID,
		Principal:            principal,
		AnnualRatePercent:    rate,
		TenureMonths:         12,
		EMI:                  emi,
		Status:               loanDomain.StatusActive,
		OutstandingBalance:   principal,
		AmountDue:            emi,
		CurrentOverdueAmount: decimal.Zero,
	}
	ledger := schedule.Build(l.ID, principal, rate, 12, emi, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	l.NextDueDate = &ledger[0].DueDate
	return l, ledger
}

func ledgerRepos(l *loanDomain.LoanAccount, ledger []*schedule.Installment) uow.Repos {
	return uow.Repos{
		Loans: &loanmock.Repo{
			GetByLoanIDForUpdateFn: func(ctx context.Context, loanID string) (*loanDomain.LoanAccount, error) {
				if loanID != l.LoanID {
					return nil, loanDomain.ErrNotFound
				}
				return l, nil
			},
		},
		Installments: &schedmock.Repo{
			ListByLoanIDFn: func(ctx context.Context, loanID uint64) ([]*schedule.Installment, error) {
				return ledger, nil
			},
		},
		Payments: &paymock.Repo{},
	}
}

func TestCreateLoan(t *testing.T) {
	h := NewLoanHandler(loanUC.NewUsecase(&loanmock.Repo{}, &schedmock.Repo{}, &paymock.Repo{}))
	e := newEcho()
	e.POST("/api/v1/loans", h.CreateLoan)

	rec := do(e, http.MethodPost, "/api/v1/loans",
		`{"customer_id":"`+testCustomerID+`","principal":120000,"annual_rate_percent":12,"tenure_months":12}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"pending"`)
	require.Contains(t, rec.Body.String(), `"emi":"10661.85"`)
}

func TestCreateLoan_Validation(t *testing.T) {
	h := NewLoanHandler(loanUC.NewUsecase(&loanmock.Repo{}, &schedmock.Repo{}, &paymock.Repo{}))
	e := newEcho()
	e.POST("/api/v1/loans", h.CreateLoan)

	cases := map[string]string{
		"bad customer id":  `{"customer_id":"BAD","principal":120000,"annual_rate_percent":12,"tenure_months":12}`,
		"three decimals":   `{"customer_id":"` + testCustomerID + `","principal":120000.123,"annual_rate_percent":12,"tenure_months":12}`,
		"zero principal":   `{"customer_id":"` + testCustomerID + `","principal":0,"annual_rate_percent":12,"tenure_months":12}`,
		"negative rate":    `{"customer_id":"` + testCustomerID + `","principal":120000,"annual_rate_percent":-1,"tenure_months":12}`,
		"missing tenure":   `{"customer_id":"` + testCustomerID + `","principal":120000,"annual_rate_percent":12}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/api/v1/loans", body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			require.Contains(t, rec.Body.String(), "validation failed")
		})
	}

	rec := do(e, http.MethodPost, "/api/v1/loans", `{broken`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetLoan_NotFound(t *testing.T) {
	h := NewLoanHandler(loanUC.NewUsecase(&loanmock.Repo{}, &schedmock.Repo{}, &paymock.Repo{}))
	e := newEcho()
	e.GET("/api/v1/loans/:loan_id", h.GetLoan)

	rec := do(e, http.MethodGet, "/api/v1/loans/"+testLoanID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitPayment(t *testing.T) {
	l, ledger := testLedgerLoan(t)
	h := NewPaymentHandler(paymentUC.NewUsecase(&uowmock.UoW{Repos: ledgerRepos(l, ledger)}))
	e := newEcho()
	e.POST("/api/v1/loans/:loan_id/payments", h.SubmitPayment)

	rec := do(e, http.MethodPost, "/api/v1/loans/"+testLoanID+"/payments",
		`{"amount":10661.85,"method":"bank_transfer","paid_at":"2026-02-01T09:00:00Z"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"outstanding_balance":"110538.15"`)
	require.Contains(t, rec.Body.String(), `"status":"active"`)
}

func TestSubmitPayment_Overpayment(t *testing.T) {
	l, ledger := testLedgerLoan(t)
	h := NewPaymentHandler(paymentUC.NewUsecase(&uowmock.UoW{Repos: ledgerRepos(l, ledger)}))
	e := newEcho()
	e.POST("/api/v1/loans/:loan_id/payments", h.SubmitPayment)

	rec := do(e, http.MethodPost, "/api/v1/loans/"+testLoanID+"/payments",
		`{"amount":999999,"method":"bank_transfer"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "max_acceptable_amount")
}

func TestSubmitPayment_Validation(t *testing.T) {
	l, ledger := testLedgerLoan(t)
	h := NewPaymentHandler(paymentUC.NewUsecase(&uowmock.UoW{Repos: ledgerRepos(l, ledger)}))
	e := newEcho()
	e.POST("/api/v1/loans/:loan_id/payments", h.SubmitPayment)

	for name, body := range map[string]string{
		"zero amount":    `{"amount":0,"method":"bank_transfer"}`,
		"missing method": `{"amount":100}`,
		"bad timestamp":  `{"amount":100,"method":"bank_transfer","paid_at":"yesterday"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/api/v1/loans/"+testLoanID+"/payments", body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

func TestApproveLoan(t *testing.T) {
	l, _ := testLedgerLoan(t)
	l.Status = loanDomain.StatusPending
	l.OutstandingBalance = decimal.Zero
	repos := ledgerRepos(l, nil)
	h := NewApprovalHandler(approvalUC.NewUsecase(&uowmock.UoW{Repos: repos}))
	e := newEcho()
	e.POST("/api/v1/loans/:loan_id/approve", h.ApproveLoan)

	rec := do(e, http.MethodPost, "/api/v1/loans/"+testLoanID+"/approve", `{"approval_date":"2026-01-15"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"installments":12`)
	require.Contains(t, rec.Body.String(), `"first_due_date":"2026-02-15T00:00:00Z"`)

	// Second approval of the now-active loan conflicts.
	rec = do(e, http.MethodPost, "/api/v1/loans/"+testLoanID+"/approve", `{}`)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestRunSweep(t *testing.T) {
	loans := &loanmock.Repo{}
	h := NewSweepHandler(sweepUC.NewUsecase(loans, &uowmock.UoW{Repos: uow.Repos{Loans: loans}}))
	e := newEcho()
	e.POST("/api/v1/sweep", h.RunSweep)

	rec := do(e, http.MethodPost, "/api/v1/sweep", `{"as_of":"2026-08-28"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"scanned":0`)
}

func TestHealth(t *testing.T) {
	e := newEcho()
	e.GET("/health", NewHandler().Health)

	rec := do(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"ok"`)
}
