package service

import (
	"context"
	"time"

	"fintrack/internal/models"
)

// Lightweight in-test mocks for the repository interfaces.

type mockUsers struct {
	CreateFn        func(name, username, hash string) (int, error)
	GetByUsernameFn func(username string) (*models.User, error)

	createCalls []struct {
		name     string
		username string
		hash     string
	}
	getCalls []string
}

func (m *mockUsers) Create(name, username, hash string) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		name     string
		username string
		hash     string
	}{name: name, username: username, hash: hash})
	return m.CreateFn(name, username, hash)
}

func (m *mockUsers) GetByUsername(username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(username)
}

func (m *mockUsers) GetByID(id int) (*models.User, error) {
	return nil, nil
}

type mockAccountsRepo struct {
	createID   int
	createErr  error
	accounts   []models.Account
	summaries  []models.AccountSummary
	deleteRows int64
	deleteErr  error
	total      float64
	totalErr   error

	lastCreateType string
	lastDeleteType string
}

func (m *mockAccountsRepo) Create(ctx context.Context, userID int, accountType string) (int, error) {
	m.lastCreateType = accountType
	return m.createID, m.createErr
}

func (m *mockAccountsRepo) ListByUser(ctx context.Context, userID int) ([]models.Account, error) {
	return m.accounts, nil
}

func (m *mockAccountsRepo) Summaries(ctx context.Context, userID int) ([]models.AccountSummary, error) {
	return m.summaries, nil
}

func (m *mockAccountsRepo) DeleteByType(ctx context.Context, userID int, accountType string) (int64, error) {
	m.lastDeleteType = accountType
	return m.deleteRows, m.deleteErr
}

func (m *mockAccountsRepo) TotalBalance(ctx context.Context, userID int) (float64, error) {
	return m.total, m.totalErr
}

type mockLedgerRepo struct {
	incomeID     int
	incomeErr    error
	expenseID    int
	expenseErr   error
	monthIncome  float64
	monthIncErr  error
	monthExpense float64
	monthExpErr  error
	expenses     []models.ExpenseEntry
	totals       []models.CategoryTotal
	totalsErr    error

	lastIncome  models.Income
	lastExpense models.Expense
	lastYear    int
	lastMonth   time.Month
}

func (m *mockLedgerRepo) AddIncome(ctx context.Context, in models.Income) (int, error) {
	m.lastIncome = in
	return m.incomeID, m.incomeErr
}

func (m *mockLedgerRepo) AddExpense(ctx context.Context, ex models.Expense) (int, error) {
	m.lastExpense = ex
	return m.expenseID, m.expenseErr
}

func (m *mockLedgerRepo) MonthIncomeSum(ctx context.Context, userID int, year int, month time.Month) (float64, error) {
	m.lastYear, m.lastMonth = year, month
	return m.monthIncome, m.monthIncErr
}

func (m *mockLedgerRepo) MonthExpenseSum(ctx context.Context, userID int, year int, month time.Month) (float64, error) {
	return m.monthExpense, m.monthExpErr
}

func (m *mockLedgerRepo) ListExpenses(ctx context.Context, userID int) ([]models.ExpenseEntry, error) {
	return m.expenses, nil
}

func (m *mockLedgerRepo) CategoryTotals(ctx context.Context, userID int) ([]models.CategoryTotal, error) {
	return m.totals, m.totalsErr
}

type mockBudgetsRepo struct {
	createID   int
	createErr  error
	budgets    []models.Budget
	listErr    error
	deleteRows int64
	deleteErr  error

	lastCategory string
	lastAmount   float64
}

func (m *mockBudgetsRepo) Create(ctx context.Context, userID int, category string, amount float64) (int, error) {
	m.lastCategory, m.lastAmount = category, amount
	return m.createID, m.createErr
}

func (m *mockBudgetsRepo) ListByUser(ctx context.Context, userID int) ([]models.Budget, error) {
	return m.budgets, m.listErr
}

func (m *mockBudgetsRepo) DeleteByCategory(ctx context.Context, userID int, category string) (int64, error) {
	m.lastCategory = category
	return m.deleteRows, m.deleteErr
}

type mockHistoryRepo struct {
	txs      []models.Transaction
	listErr  error
	purgeErr error

	purgeCalls []int
}

func (m *mockHistoryRepo) ListByUser(ctx context.Context, userID int) ([]models.Transaction, error) {
	return m.txs, m.listErr
}

func (m *mockHistoryRepo) PurgeUserData(ctx context.Context, userID int) error {
	m.purgeCalls = append(m.purgeCalls, userID)
	return m.purgeErr
}
