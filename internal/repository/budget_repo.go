package repository

import (
	"context"
	"database/sql"
	"fmt"

	"fintrack/internal/models"
)

type BudgetSQLite struct {
	db *sql.DB
}

func NewBudgetSQLite(db *sql.DB) *BudgetSQLite {
	return &BudgetSQLite{db: db}
}

var _ Budgets = (*BudgetSQLite)(nil)

const (
	insertBudgetSQL            = `INSERT INTO budgets (user_id, expense_category, amount) VALUES (?, ?, ?)`
	selectBudgetsByUserSQL     = `SELECT budget_id, user_id, expense_category, amount FROM budgets WHERE user_id = ?`
	deleteBudgetsByCategorySQL = `DELETE FROM budgets WHERE user_id = ? AND expense_category = ?`
)

// Create inserts a budget allocation. Allocating the same category again
// adds another row rather than merging.
func (r *BudgetSQLite) Create(ctx context.Context, userID int, category string, amount float64) (int, error) {
	res, err := r.db.ExecContext(ctx, insertBudgetSQL, userID, category, amount)
	if err != nil {
		return 0, fmt.Errorf("insert budget %q for user %d: %w", category, userID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for budget: %w", err)
	}
	return int(lastID), nil
}

// ListByUser returns every budget allocation of the user.
func (r *BudgetSQLite) ListByUser(ctx context.Context, userID int) ([]models.Budget, error) {
	rows, err := r.db.QueryContext(ctx, selectBudgetsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select budgets for user %d: %w", userID, err)
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount); err != nil {
			return nil, fmt.Errorf("scan budget row: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budget rows: %w", err)
	}
	return budgets, nil
}

// DeleteByCategory removes every budget row of the user for the category.
func (r *BudgetSQLite) DeleteByCategory(ctx context.Context, userID int, category string) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteBudgetsByCategorySQL, userID, category)
	if err != nil {
		return 0, fmt.Errorf("delete budgets %q for user %d: %w", category, userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for budget delete: %w", err)
	}
	return n, nil
}
