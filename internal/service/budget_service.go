package service

import (
	"context"
	"fmt"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/repository"
)

// BudgetOverview is the budget-page view: all allocations plus the subset
// whose category has already been overspent.
type BudgetOverview struct {
	Budgets  []models.Budget
	Exceeded []models.Budget
}

// BudgetService manages per-category spending caps.
type BudgetService struct {
	budgets repository.Budgets
	ledger  repository.Ledger
}

func NewBudgetService(budgets repository.Budgets, ledger repository.Ledger) *BudgetService {
	return &BudgetService{budgets: budgets, ledger: ledger}
}

var _ Budgeting = (*BudgetService)(nil)

func (s *BudgetService) AllocateBudget(ctx context.Context, userID int, p BudgetParams) (int, error) {
	category := strings.TrimSpace(p.Category)
	if category == "" {
		return 0, fmt.Errorf("%w: category is empty", ErrInvalidInput)
	}
	if p.Amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	return s.budgets.Create(ctx, userID, category, p.Amount)
}

func (s *BudgetService) RemoveBudget(ctx context.Context, userID int, category string) (int64, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return 0, fmt.Errorf("%w: category is empty", ErrInvalidInput)
	}
	return s.budgets.DeleteByCategory(ctx, userID, category)
}

// BudgetOverview lists the user's budgets and flags each one whose
// all-time category spend strictly exceeds the allocation. A category with
// no expenses at all is never flagged.
func (s *BudgetService) BudgetOverview(ctx context.Context, userID int) (BudgetOverview, error) {
	budgets, err := s.budgets.ListByUser(ctx, userID)
	if err != nil {
		return BudgetOverview{}, err
	}

	totals, err := s.ledger.CategoryTotals(ctx, userID)
	if err != nil {
		return BudgetOverview{}, err
	}
	spentByCategory := make(map[string]float64, len(totals))
	for _, t := range totals {
		spentByCategory[t.Category] = t.Total
	}

	var exceeded []models.Budget
	for _, b := range budgets {
		spent, ok := spentByCategory[b.Category]
		if ok && spent > b.Amount {
			exceeded = append(exceeded, b)
		}
	}

	return BudgetOverview{Budgets: budgets, Exceeded: exceeded}, nil
}
