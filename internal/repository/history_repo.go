package repository

import (
	"context"
	"database/sql"
	"fmt"

	"fintrack/internal/models"
)

type HistorySQLite struct {
	db *sql.DB
}

func NewHistorySQLite(db *sql.DB) *HistorySQLite {
	return &HistorySQLite{db: db}
}

var _ History = (*HistorySQLite)(nil)

const (
	selectTransactionsByUserSQL = `
		SELECT transaction_id, account_id, description, amount, time
		FROM transactions
		WHERE account_id IN (SELECT account_id FROM accounts WHERE user_id = ?)
		ORDER BY time DESC
	`

	purgeTransactionsSQL = `DELETE FROM transactions WHERE account_id IN (SELECT account_id FROM accounts WHERE user_id = ?)`
	purgeIncomesSQL      = `DELETE FROM incomes WHERE user_id = ?`
	purgeExpensesSQL     = `DELETE FROM expenses WHERE user_id = ?`
	purgeBudgetsSQL      = `DELETE FROM budgets WHERE user_id = ?`
)

// ListByUser returns the transaction feed across all the user's accounts,
// newest first.
func (r *HistorySQLite) ListByUser(ctx context.Context, userID int) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, selectTransactionsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select transactions for user %d: %w", userID, err)
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Description, &t.Amount, &t.Time); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txs, nil
}

// PurgeUserData clears the user's transactions, incomes, expenses and
// budgets in one transaction; either all four tables are cleared or none.
func (r *HistorySQLite) PurgeUserData(ctx context.Context, userID int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin purge transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, stmt := range []string{
		purgeTransactionsSQL,
		purgeIncomesSQL,
		purgeExpensesSQL,
		purgeBudgetsSQL,
	} {
		if _, err := tx.ExecContext(ctx, stmt, userID); err != nil {
			return fmt.Errorf("purge user %d data: %w", userID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit purge transaction: %w", err)
	}
	return nil
}
