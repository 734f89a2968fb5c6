package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fintrack/internal/models"
)

type LedgerSQLite struct {
	db *sql.DB
}

func NewLedgerSQLite(db *sql.DB) *LedgerSQLite {
	return &LedgerSQLite{db: db}
}

var _ Ledger = (*LedgerSQLite)(nil)

// Dates are stored as ISO text so strftime filtering stays trivial.
const ledgerDateLayout = "2006-01-02"

const (
	insertIncomeSQL  = `INSERT INTO incomes (user_id, account_id, income_date, income_source, amount) VALUES (?, ?, ?, ?, ?)`
	creditBalanceSQL = `UPDATE accounts SET balance = balance + ? WHERE account_id = ?`

	insertExpenseSQL = `INSERT INTO expenses (user_id, account_id, expense_date, expense_category, amount, remark) VALUES (?, ?, ?, ?, ?, ?)`
	debitBalanceSQL  = `UPDATE accounts SET balance = balance - ? WHERE account_id = ?`

	selectMonthIncomeSumSQL  = `SELECT COALESCE(SUM(amount), 0) FROM incomes WHERE user_id = ? AND strftime('%Y-%m', income_date) = ?`
	selectMonthExpenseSumSQL = `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = ? AND strftime('%Y-%m', expense_date) = ?`

	selectExpensesByUserSQL = `
		SELECT e.expense_date, a.account_type, e.expense_category, e.amount, e.remark
		FROM expenses e
		JOIN accounts a ON e.account_id = a.account_id
		WHERE e.user_id = ?
		ORDER BY e.expense_date DESC
	`

	selectCategoryTotalsSQL = `
		SELECT expense_category, SUM(amount) AS total_expenses
		FROM expenses
		WHERE user_id = ?
		GROUP BY expense_category
	`
)

// monthKey renders the strftime('%Y-%m') comparand for a calendar month.
func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// AddIncome inserts the income row and credits the account balance in a
// single transaction, so a crash cannot leave one without the other.
func (r *LedgerSQLite) AddIncome(ctx context.Context, in models.Income) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin income transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx, insertIncomeSQL,
		in.UserID, in.AccountID, in.Date.Format(ledgerDateLayout), in.Source, in.Amount)
	if err != nil {
		return 0, fmt.Errorf("insert income for user %d: %w", in.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for income: %w", err)
	}

	if _, err := tx.ExecContext(ctx, creditBalanceSQL, in.Amount, in.AccountID); err != nil {
		return 0, fmt.Errorf("credit account %d: %w", in.AccountID, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit income transaction: %w", err)
	}
	return int(lastID), nil
}

// AddExpense inserts the expense row and debits the account balance in a
// single transaction.
func (r *LedgerSQLite) AddExpense(ctx context.Context, ex models.Expense) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin expense transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx, insertExpenseSQL,
		ex.UserID, ex.AccountID, ex.Date.Format(ledgerDateLayout), ex.Category, ex.Amount, ex.Remark)
	if err != nil {
		return 0, fmt.Errorf("insert expense for user %d: %w", ex.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for expense: %w", err)
	}

	if _, err := tx.ExecContext(ctx, debitBalanceSQL, ex.Amount, ex.AccountID); err != nil {
		return 0, fmt.Errorf("debit account %d: %w", ex.AccountID, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit expense transaction: %w", err)
	}
	return int(lastID), nil
}

// MonthIncomeSum totals the user's incomes dated in the given calendar month.
func (r *LedgerSQLite) MonthIncomeSum(ctx context.Context, userID int, year int, month time.Month) (float64, error) {
	var sum float64
	if err := r.db.QueryRowContext(ctx, selectMonthIncomeSumSQL, userID, monthKey(year, month)).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum month incomes for user %d: %w", userID, err)
	}
	return sum, nil
}

// MonthExpenseSum totals the user's expenses dated in the given calendar month.
func (r *LedgerSQLite) MonthExpenseSum(ctx context.Context, userID int, year int, month time.Month) (float64, error) {
	var sum float64
	if err := r.db.QueryRowContext(ctx, selectMonthExpenseSumSQL, userID, monthKey(year, month)).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum month expenses for user %d: %w", userID, err)
	}
	return sum, nil
}

// ListExpenses returns the user's expense history joined with the paying
// account's type, newest first.
func (r *LedgerSQLite) ListExpenses(ctx context.Context, userID int) ([]models.ExpenseEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectExpensesByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select expenses for user %d: %w", userID, err)
	}
	defer rows.Close()

	var entries []models.ExpenseEntry
	for rows.Next() {
		var (
			e       models.ExpenseEntry
			rawDate string
		)
		if err := rows.Scan(&rawDate, &e.AccountType, &e.Category, &e.Amount, &e.Remark); err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		d, err := time.Parse(ledgerDateLayout, rawDate)
		if err != nil {
			return nil, fmt.Errorf("parse expense date %q: %w", rawDate, err)
		}
		e.Date = d
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expense rows: %w", err)
	}
	return entries, nil
}

// CategoryTotals returns the all-time expense sum per category for the user.
func (r *LedgerSQLite) CategoryTotals(ctx context.Context, userID int) ([]models.CategoryTotal, error) {
	rows, err := r.db.QueryContext(ctx, selectCategoryTotalsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select category totals for user %d: %w", userID, err)
	}
	defer rows.Close()

	var totals []models.CategoryTotal
	for rows.Next() {
		var t models.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, fmt.Errorf("scan category total row: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category total rows: %w", err)
	}
	return totals, nil
}
