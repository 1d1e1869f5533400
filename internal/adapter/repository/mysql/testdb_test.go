package mysql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	loanDomain "credwise-backend/internal/domain/loan"
	"credwise-backend/pkg/id"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type loanSQLite struct {
	ID                   uint64          `gorm:"primaryKey;column:id"`
	LoanID               string          `gorm:"size:32;column:loan_id"`
	CustomerID           string          `gorm:"size:32;column:customer_id"`
	Principal            decimal.Decimal `gorm:"type:numeric;column:principal"`
	AnnualRatePercent    decimal.Decimal `gorm:"type:numeric;column:annual_rate_percent"`
	TenureMonths         int             `gorm:"column:tenure_months"`
	EMI                  decimal.Decimal `gorm:"type:numeric;column:emi"`
	OutstandingBalance   decimal.Decimal `gorm:"type:numeric;column:outstanding_balance"`
	NextDueDate          *time.Time      `gorm:"column:next_due_date"`
	AmountDue            decimal.Decimal `gorm:"type:numeric;column:amount_due"`
	Status               string          `gorm:"type:text;column:status"` // ← no enum
	OverdueMonths        int             `gorm:"column:overdue_months"`
	CurrentOverdueAmount decimal.Decimal `gorm:"type:numeric;column:current_overdue_amount"`
	Version              uint64          `gorm:"column:version"`
	StatusUpdatedAt      time.Time       `gorm:"column:status_updated_at"`
	CreatedAt            time.Time       `gorm:"column:created_at"`
	UpdatedAt            time.Time       `gorm:"column:updated_at"`
	DeletedAt            gorm.DeletedAt  `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type installmentSQLite struct {
	ID               uint64          `gorm:"primaryKey;column:id"`
	InstallmentID    string          `gorm:"size:32;column:installment_id"`
	LoanID           uint64          `gorm:"column:loan_id;index"`
	Sequence         int             `gorm:"column:sequence"`
	DueDate          time.Time       `gorm:"column:due_date"`
	AmountDue        decimal.Decimal `gorm:"type:numeric;column:amount_due"`
	PrincipalPortion decimal.Decimal `gorm:"type:numeric;column:principal_portion"`
	InterestPortion  decimal.Decimal `gorm:"type:numeric;column:interest_portion"`
	Status           string          `gorm:"type:text;column:status"` // ← no enum
	PaidAt           *time.Time      `gorm:"column:paid_at"`
	CreatedAt        time.Time       `gorm:"column:created_at"`
	UpdatedAt        time.Time       `gorm:"column:updated_at"`
}

func (installmentSQLite) TableName() string { return "installments" }

type loanPaymentSQLite struct {
	ID           uint64          `gorm:"primaryKey;column:id"`
	PaymentID    string          `gorm:"size:32;column:payment_id"`
	LoanID       uint64          `gorm:"column:loan_id;index"`
	PaidAmount   decimal.Decimal `gorm:"type:numeric;column:paid_amount"`
	Method       string          `gorm:"size:32;column:method"`
	Reference    string          `gorm:"size:64;column:reference"`
	ResultStatus string          `gorm:"size:16;column:result_status"`
	PaidAt       time.Time       `gorm:"column:paid_at"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
}

func (loanPaymentSQLite) TableName() string { return "loan_payments" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// One connection, or each pooled conn would see its own :memory: DB.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&loanSQLite{}, &installmentSQLite{}, &loanPaymentSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLoan(loanID, customerID string) *loanDomain.LoanAccount {
	return &loanDomain.LoanAccount{
		LoanID:               loanID,
		CustomerID:           customerID,
		Principal:            decimal.NewFromInt(120_000),
		AnnualRatePercent:    decimal.NewFromInt(12),
		TenureMonths:         12,
		EMI:                  decimal.NewFromFloat(10661.85),
		OutstandingBalance:   decimal.NewFromInt(120_000),
		AmountDue:            decimal.NewFromFloat(10661.85),
		Status:               loanDomain.StatusActive,
		CurrentOverdueAmount: decimal.Zero,
		StatusUpdatedAt:      time.Now().UTC(),
	}
}

func newID() string { return id.NewID32() }
