package service

import (
	"context"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repository"

	"golang.org/x/sync/errgroup"
)

// DashboardSummary is everything the home page shows: total balance across
// accounts, the current calendar month's income and expense sums, and the
// full transaction feed newest first.
type DashboardSummary struct {
	TotalBalance float64
	MonthIncome  float64
	MonthExpense float64
	Transactions []models.Transaction
}

// SummaryService aggregates dashboard figures across repositories.
type SummaryService struct {
	accounts repository.Accounts
	ledger   repository.Ledger
	history  repository.History
}

func NewSummaryService(accounts repository.Accounts, ledger repository.Ledger, history repository.History) *SummaryService {
	return &SummaryService{accounts: accounts, ledger: ledger, history: history}
}

var _ Summary = (*SummaryService)(nil)

// Dashboard runs the four independent aggregate queries concurrently.
// Sums come back as zero, not an error, when the user has no rows.
func (s *SummaryService) Dashboard(ctx context.Context, userID int, now time.Time) (DashboardSummary, error) {
	year, month := now.Year(), now.Month()

	var out DashboardSummary
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.accounts.TotalBalance(gctx, userID)
		out.TotalBalance = total
		return err
	})
	g.Go(func() error {
		sum, err := s.ledger.MonthIncomeSum(gctx, userID, year, month)
		out.MonthIncome = sum
		return err
	})
	g.Go(func() error {
		sum, err := s.ledger.MonthExpenseSum(gctx, userID, year, month)
		out.MonthExpense = sum
		return err
	})
	g.Go(func() error {
		txs, err := s.history.ListByUser(gctx, userID)
		out.Transactions = txs
		return err
	})

	if err := g.Wait(); err != nil {
		return DashboardSummary{}, err
	}
	return out, nil
}
