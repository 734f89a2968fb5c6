package service

import (
	"context"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repository"
)

type Authorization interface {
	SignUp(name, username, password string) (int, error)
	Login(username, password string) (*models.User, error)
}

// AccountManager exposes account lifecycle and the accounts-page view.
type AccountManager interface {
	CreateAccount(ctx context.Context, userID int, accountType string) (int, error)
	DeleteAccounts(ctx context.Context, userID int, accountType string) (int64, error)
	ListAccounts(ctx context.Context, userID int) ([]models.Account, error)
	AccountSummaries(ctx context.Context, userID int) ([]models.AccountSummary, error)
}

// Ledger records incomes and expenses and owns the full-history purge.
type Ledger interface {
	AddIncome(ctx context.Context, userID int, p IncomeParams) (int, error)
	AddExpense(ctx context.Context, userID int, p ExpenseParams) (int, error)
	ListExpenses(ctx context.Context, userID int) ([]models.ExpenseEntry, error)
	RemoveAll(ctx context.Context, userID int) error
}

// Budgeting exposes budget allocation and the exceeded-budget view.
type Budgeting interface {
	AllocateBudget(ctx context.Context, userID int, p BudgetParams) (int, error)
	RemoveBudget(ctx context.Context, userID int, category string) (int64, error)
	BudgetOverview(ctx context.Context, userID int) (BudgetOverview, error)
}

// Summary builds the dashboard aggregates.
type Summary interface {
	Dashboard(ctx context.Context, userID int, now time.Time) (DashboardSummary, error)
}

// Service aggregates all sub-services behind their interfaces.
type Service struct {
	Authorization
	AccountManager
	Ledger
	Budgeting
	Summary
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Authorization:  NewAuthService(repos.Users),
		AccountManager: NewAccountService(repos.Accounts),
		Ledger:         NewLedgerService(repos.Ledger, repos.History),
		Budgeting:      NewBudgetService(repos.Budgets, repos.Ledger),
		Summary:        NewSummaryService(repos.Accounts, repos.Ledger, repos.History),
	}
}
