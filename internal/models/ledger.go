package models

import "time"

// Income is a ledger entry that credits an account.
type Income struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	AccountID int       `json:"account_id"`
	Date      time.Time `json:"date"`
	Source    string    `json:"source"`
	Amount    float64   `json:"amount"`
}

// Expense is a ledger entry that debits an account.
type Expense struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	AccountID int       `json:"account_id"`
	Date      time.Time `json:"date"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Remark    string    `json:"remark"`
}

// ExpenseEntry is an expense joined with the type of the account it was
// paid from, as listed on the expenses page.
type ExpenseEntry struct {
	Date        time.Time `json:"date"`
	AccountType string    `json:"account_type"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Remark      string    `json:"remark"`
}

// CategoryTotal is the all-time expense sum for one category of one user.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}
