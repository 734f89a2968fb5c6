package service

import (
	"context"
	"fmt"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/repository"
)

// LedgerService validates and records incomes and expenses.
type LedgerService struct {
	ledger  repository.Ledger
	history repository.History
}

func NewLedgerService(ledger repository.Ledger, history repository.History) *LedgerService {
	return &LedgerService{ledger: ledger, history: history}
}

var _ Ledger = (*LedgerService)(nil)

func (s *LedgerService) AddIncome(ctx context.Context, userID int, p IncomeParams) (int, error) {
	if err := validateEntry(p.Date.IsZero(), p.AccountID, p.Amount, p.Source, "source"); err != nil {
		return 0, err
	}
	return s.ledger.AddIncome(ctx, models.Income{
		UserID:    userID,
		AccountID: p.AccountID,
		Date:      p.Date,
		Source:    strings.TrimSpace(p.Source),
		Amount:    p.Amount,
	})
}

func (s *LedgerService) AddExpense(ctx context.Context, userID int, p ExpenseParams) (int, error) {
	if err := validateEntry(p.Date.IsZero(), p.AccountID, p.Amount, p.Category, "category"); err != nil {
		return 0, err
	}
	return s.ledger.AddExpense(ctx, models.Expense{
		UserID:    userID,
		AccountID: p.AccountID,
		Date:      p.Date,
		Category:  strings.TrimSpace(p.Category),
		Amount:    p.Amount,
		Remark:    strings.TrimSpace(p.Remark),
	})
}

// ListExpenses returns the user's expense history, newest first.
func (s *LedgerService) ListExpenses(ctx context.Context, userID int) ([]models.ExpenseEntry, error) {
	return s.ledger.ListExpenses(ctx, userID)
}

// RemoveAll wipes the user's transactions, incomes, expenses and budgets.
func (s *LedgerService) RemoveAll(ctx context.Context, userID int) error {
	return s.history.PurgeUserData(ctx, userID)
}

// validateEntry applies the checks shared by income and expense entries.
func validateEntry(dateZero bool, accountID int, amount float64, label, labelField string) error {
	if dateZero {
		return fmt.Errorf("%w: date is missing", ErrInvalidInput)
	}
	if accountID <= 0 {
		return fmt.Errorf("%w: account is missing", ErrInvalidInput)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(label) == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidInput, labelField)
	}
	return nil
}
