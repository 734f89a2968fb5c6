package repository

import (
	"context"
	"database/sql"
	"time"

	"fintrack/internal/models"
)

type Users interface {
	Create(name, username, passwordHash string) (int, error)
	GetByUsername(username string) (*models.User, error)
	GetByID(id int) (*models.User, error)
}

type Accounts interface {
	Create(ctx context.Context, userID int, accountType string) (int, error)
	ListByUser(ctx context.Context, userID int) ([]models.Account, error)
	Summaries(ctx context.Context, userID int) ([]models.AccountSummary, error)
	DeleteByType(ctx context.Context, userID int, accountType string) (int64, error)
	TotalBalance(ctx context.Context, userID int) (float64, error)
}

// Ledger persists incomes and expenses together with the balance movement
// they cause on the target account.
type Ledger interface {
	AddIncome(ctx context.Context, in models.Income) (int, error)
	AddExpense(ctx context.Context, ex models.Expense) (int, error)
	MonthIncomeSum(ctx context.Context, userID int, year int, month time.Month) (float64, error)
	MonthExpenseSum(ctx context.Context, userID int, year int, month time.Month) (float64, error)
	ListExpenses(ctx context.Context, userID int) ([]models.ExpenseEntry, error)
	CategoryTotals(ctx context.Context, userID int) ([]models.CategoryTotal, error)
}

type Budgets interface {
	Create(ctx context.Context, userID int, category string, amount float64) (int, error)
	ListByUser(ctx context.Context, userID int) ([]models.Budget, error)
	DeleteByCategory(ctx context.Context, userID int, category string) (int64, error)
}

// History covers the read-only transaction feed and the bulk purge that
// clears a user's transactions, incomes, expenses and budgets at once.
type History interface {
	ListByUser(ctx context.Context, userID int) ([]models.Transaction, error)
	PurgeUserData(ctx context.Context, userID int) error
}

type Repository struct {
	Users    Users
	Accounts Accounts
	Ledger   Ledger
	Budgets  Budgets
	History  History
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Accounts: NewAccountSQLite(db),
		Ledger:   NewLedgerSQLite(db),
		Budgets:  NewBudgetSQLite(db),
		History:  NewHistorySQLite(db),
	}
}
