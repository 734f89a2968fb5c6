package repository

import (
	"context"
	"database/sql"
	"fmt"

	"fintrack/internal/models"
)

type AccountSQLite struct {
	db *sql.DB
}

func NewAccountSQLite(db *sql.DB) *AccountSQLite {
	return &AccountSQLite{db: db}
}

var _ Accounts = (*AccountSQLite)(nil)

const (
	insertAccountSQL = `INSERT INTO accounts (user_id, account_type, balance, liabilities) VALUES (?, ?, 0, 0)`

	selectAccountsByUserSQL = `SELECT account_id, user_id, account_type, balance, liabilities FROM accounts WHERE user_id = ?`

	// Per-account balance next to everything spent from the account so far.
	selectAccountSummariesSQL = `
		SELECT a.account_type, a.balance, COALESCE(SUM(e.amount), 0) AS total_expenses
		FROM accounts a
		LEFT JOIN expenses e ON a.account_id = e.account_id
		WHERE a.user_id = ?
		GROUP BY a.account_id, a.account_type, a.balance
	`

	deleteAccountsByTypeSQL = `DELETE FROM accounts WHERE user_id = ? AND account_type = ?`

	selectTotalBalanceSQL = `SELECT COALESCE(SUM(balance), 0) FROM accounts WHERE user_id = ?`
)

// Create inserts an account with zeroed balance and liabilities.
func (r *AccountSQLite) Create(ctx context.Context, userID int, accountType string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertAccountSQL, userID, accountType)
	if err != nil {
		return 0, fmt.Errorf("insert account %q for user %d: %w", accountType, userID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for account: %w", err)
	}
	return int(lastID), nil
}

// ListByUser returns all accounts owned by the user.
func (r *AccountSQLite) ListByUser(ctx context.Context, userID int) ([]models.Account, error) {
	rows, err := r.db.QueryContext(ctx, selectAccountsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select accounts for user %d: %w", userID, err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.AccountType, &a.Balance, &a.Liabilities); err != nil {
			return nil, fmt.Errorf("scan account row: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account rows: %w", err)
	}
	return accounts, nil
}

// Summaries returns the accounts-page rows: type, balance, total expenses.
func (r *AccountSQLite) Summaries(ctx context.Context, userID int) ([]models.AccountSummary, error) {
	rows, err := r.db.QueryContext(ctx, selectAccountSummariesSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select account summaries for user %d: %w", userID, err)
	}
	defer rows.Close()

	var summaries []models.AccountSummary
	for rows.Next() {
		var s models.AccountSummary
		if err := rows.Scan(&s.AccountType, &s.Balance, &s.TotalExpenses); err != nil {
			return nil, fmt.Errorf("scan account summary row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account summary rows: %w", err)
	}
	return summaries, nil
}

// DeleteByType removes every account of the user with the given type and
// reports how many rows went away. Dependent ledger rows are left in place.
func (r *AccountSQLite) DeleteByType(ctx context.Context, userID int, accountType string) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteAccountsByTypeSQL, userID, accountType)
	if err != nil {
		return 0, fmt.Errorf("delete accounts %q for user %d: %w", accountType, userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for account delete: %w", err)
	}
	return n, nil
}

// TotalBalance sums balances across all the user's accounts; zero when the
// user has no accounts.
func (r *AccountSQLite) TotalBalance(ctx context.Context, userID int) (float64, error) {
	var total float64
	if err := r.db.QueryRowContext(ctx, selectTotalBalanceSQL, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum balances for user %d: %w", userID, err)
	}
	return total, nil
}
