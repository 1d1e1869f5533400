package mysql

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	loanDomain "credwise-backend/internal/domain/loan"
)

func TestLoanRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(newID(), newID())
	require.NoError(t, repo.Create(ctx, l))
	require.NotZero(t, l.ID)

	got, err := repo.GetByLoanID(ctx, l.LoanID)
	require.NoError(t, err)
	require.Equal(t, l.LoanID, got.LoanID)
	require.Equal(t, l.CustomerID, got.CustomerID)
	require.True(t, got.Principal.Equal(l.Principal))
	require.True(t, got.EMI.Equal(l.EMI))
	require.Equal(t, loanDomain.StatusActive, got.Status)
}

func TestLoanRepository_GetNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	_, err := repo.GetByLoanID(context.Background(), newID())
	require.ErrorIs(t, err, loanDomain.ErrNotFound)

	_, err = repo.GetByLoanIDForUpdate(context.Background(), newID())
	require.ErrorIs(t, err, loanDomain.ErrNotFound)
}

func TestLoanRepository_GetPendingLoanByCustomerID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	customerID := newID()
	active := makeLoan(newID(), customerID)
	require.NoError(t, repo.Create(ctx, active))

	_, err := repo.GetPendingLoanByCustomerID(ctx, customerID)
	require.ErrorIs(t, err, loanDomain.ErrNotFound)

	pending := makeLoan(newID(), customerID)
	pending.Status = loanDomain.StatusPending
	require.NoError(t, repo.Create(ctx, pending))

	got, err := repo.GetPendingLoanByCustomerID(ctx, customerID)
	require.NoError(t, err)
	require.Equal(t, pending.LoanID, got.LoanID)
}

func TestLoanRepository_ListByStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	active := makeLoan(newID(), newID())
	require.NoError(t, repo.Create(ctx, active))

	overdue := makeLoan(newID(), newID())
	overdue.Status = loanDomain.StatusOverdue
	require.NoError(t, repo.Create(ctx, overdue))

	closed := makeLoan(newID(), newID())
	closed.Status = loanDomain.StatusClosed
	require.NoError(t, repo.Create(ctx, closed))

	got, err := repo.ListByStatus(ctx, loanDomain.StatusActive, loanDomain.StatusOverdue)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, active.LoanID, got[0].LoanID)
	require.Equal(t, overdue.LoanID, got[1].LoanID)
}

func TestLoanRepository_SaveBumpsVersion(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(newID(), newID())
	require.NoError(t, repo.Create(ctx, l))

	l.OutstandingBalance = decimal.RequireFromString("110538.15")
	l.Status = loanDomain.StatusOverdue
	require.NoError(t, repo.Save(ctx, l))
	require.Equal(t, uint64(1), l.Version)

	got, err := repo.GetByLoanID(ctx, l.LoanID)
	require.NoError(t, err)
	require.Equal(t, uint64(1), got.Version)
	require.Equal(t, loanDomain.StatusOverdue, got.Status)
	require.Equal(t, "110538.15", got.OutstandingBalance.StringFixed(2))
}

func TestLoanRepository_SaveStaleVersionConflict(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(newID(), newID())
	require.NoError(t, repo.Create(ctx, l))

	stale, err := repo.GetByLoanID(ctx, l.LoanID)
	require.NoError(t, err)

	// First writer wins.
	l.OutstandingBalance = decimal.NewFromInt(100_000)
	require.NoError(t, repo.Save(ctx, l))

	// Second writer carries the old version and must be told to retry.
	stale.OutstandingBalance = decimal.NewFromInt(90_000)
	err = repo.Save(ctx, stale)
	require.ErrorIs(t, err, loanDomain.ErrConflict)
	require.Equal(t, uint64(0), stale.Version)

	got, err := repo.GetByLoanID(ctx, l.LoanID)
	require.NoError(t, err)
	require.Equal(t, "100000", got.OutstandingBalance.String())
}

func TestLoanRepository_GetByLoanIDForUpdate(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(newID(), newID())
	require.NoError(t, repo.Create(ctx, l))

	got, err := repo.GetByLoanIDForUpdate(ctx, l.LoanID)
	require.NoError(t, err)
	require.Equal(t, l.ID, got.ID)
}
