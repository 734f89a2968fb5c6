package handlers

import (
	"context"
	"errors"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/service"
	"fintrack/internal/session"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

// errTest simulates an unexpected backend failure in handler tests.
var errTest = errors.New("backend failure")

type mockAuth struct {
	signUpID  int
	signUpErr error
	loginUser *models.User
	loginErr  error

	lastSignUpName     string
	lastSignUpUsername string
	lastLoginUsername  string
	lastLoginPassword  string
}

func (m *mockAuth) SignUp(name, username, password string) (int, error) {
	m.lastSignUpName = name
	m.lastSignUpUsername = username
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) Login(username, password string) (*models.User, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return m.loginUser, nil
}

type mockAccounts struct {
	createID   int
	createErr  error
	deleteRows int64
	deleteErr  error
	accounts   []models.Account
	listErr    error
	summaries  []models.AccountSummary
	summaryErr error

	createCalls int
	deleteCalls int
	lastType    string
}

func (m *mockAccounts) CreateAccount(ctx context.Context, userID int, accountType string) (int, error) {
	m.createCalls++
	m.lastType = accountType
	return m.createID, m.createErr
}

func (m *mockAccounts) DeleteAccounts(ctx context.Context, userID int, accountType string) (int64, error) {
	m.deleteCalls++
	m.lastType = accountType
	return m.deleteRows, m.deleteErr
}

func (m *mockAccounts) ListAccounts(ctx context.Context, userID int) ([]models.Account, error) {
	return m.accounts, m.listErr
}

func (m *mockAccounts) AccountSummaries(ctx context.Context, userID int) ([]models.AccountSummary, error) {
	return m.summaries, m.summaryErr
}

type mockLedger struct {
	incomeID   int
	incomeErr  error
	expenseID  int
	expenseErr error
	expenses   []models.ExpenseEntry
	listErr    error
	removeErr  error

	lastIncome  service.IncomeParams
	lastExpense service.ExpenseParams
	removeCalls int
}

func (m *mockLedger) AddIncome(ctx context.Context, userID int, p service.IncomeParams) (int, error) {
	m.lastIncome = p
	return m.incomeID, m.incomeErr
}

func (m *mockLedger) AddExpense(ctx context.Context, userID int, p service.ExpenseParams) (int, error) {
	m.lastExpense = p
	return m.expenseID, m.expenseErr
}

func (m *mockLedger) ListExpenses(ctx context.Context, userID int) ([]models.ExpenseEntry, error) {
	return m.expenses, m.listErr
}

func (m *mockLedger) RemoveAll(ctx context.Context, userID int) error {
	m.removeCalls++
	return m.removeErr
}

type mockBudgeting struct {
	allocateID  int
	allocateErr error
	removeRows  int64
	removeErr   error
	overview    service.BudgetOverview
	overviewErr error

	lastParams   service.BudgetParams
	lastCategory string
}

func (m *mockBudgeting) AllocateBudget(ctx context.Context, userID int, p service.BudgetParams) (int, error) {
	m.lastParams = p
	return m.allocateID, m.allocateErr
}

func (m *mockBudgeting) RemoveBudget(ctx context.Context, userID int, category string) (int64, error) {
	m.lastCategory = category
	return m.removeRows, m.removeErr
}

func (m *mockBudgeting) BudgetOverview(ctx context.Context, userID int) (service.BudgetOverview, error) {
	return m.overview, m.overviewErr
}

type mockSummary struct {
	summary service.DashboardSummary
	err     error

	lastUserID int
}

func (m *mockSummary) Dashboard(ctx context.Context, userID int, now time.Time) (service.DashboardSummary, error) {
	m.lastUserID = userID
	return m.summary, m.err
}

// ---- Shared Test Helpers ----

type testEnv struct {
	router   *gin.Engine
	sessions *session.Store
	codec    *session.Codec
}

func newTestEnv(s *service.Service) *testEnv {
	gin.SetMode(gin.TestMode)
	sessions := session.NewStore(time.Hour)
	codec := session.NewCodec("test-signing-key", time.Hour)
	h := NewHandler(s, sessions, codec, nil)
	return &testEnv{router: h.InitRoutes(), sessions: sessions, codec: codec}
}
