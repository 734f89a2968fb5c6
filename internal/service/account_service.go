package service

import (
	"context"
	"fmt"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/repository"
)

// AccountService manages a user's accounts.
type AccountService struct {
	accounts repository.Accounts
}

func NewAccountService(accounts repository.Accounts) *AccountService {
	return &AccountService{accounts: accounts}
}

var _ AccountManager = (*AccountService)(nil)

// CreateAccount opens an account of the given type with a zero balance.
func (s *AccountService) CreateAccount(ctx context.Context, userID int, accountType string) (int, error) {
	accountType = strings.TrimSpace(accountType)
	if accountType == "" {
		return 0, fmt.Errorf("%w: account type is empty", ErrInvalidInput)
	}
	return s.accounts.Create(ctx, userID, accountType)
}

// DeleteAccounts removes every account of the user carrying the type label.
// Account types are not unique per user, so this can delete several rows.
func (s *AccountService) DeleteAccounts(ctx context.Context, userID int, accountType string) (int64, error) {
	accountType = strings.TrimSpace(accountType)
	if accountType == "" {
		return 0, fmt.Errorf("%w: account type is empty", ErrInvalidInput)
	}
	return s.accounts.DeleteByType(ctx, userID, accountType)
}

// ListAccounts returns the user's accounts for pickers and listings.
func (s *AccountService) ListAccounts(ctx context.Context, userID int) ([]models.Account, error) {
	return s.accounts.ListByUser(ctx, userID)
}

// AccountSummaries returns the accounts-page rows.
func (s *AccountService) AccountSummaries(ctx context.Context, userID int) ([]models.AccountSummary, error) {
	return s.accounts.Summaries(ctx, userID)
}
