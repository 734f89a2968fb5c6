package models

// Account is a named bucket of funds owned by a user. Balance moves with
// every income or expense recorded against the account.
type Account struct {
	ID          int     `json:"id"`
	UserID      int     `json:"user_id"`
	AccountType string  `json:"account_type"`
	Balance     float64 `json:"balance"`
	Liabilities float64 `json:"liabilities"`
}

// AccountSummary is the per-account row shown on the accounts page:
// the account's balance next to everything ever spent from it.
type AccountSummary struct {
	AccountType   string  `json:"account_type"`
	Balance       float64 `json:"balance"`
	TotalExpenses float64 `json:"total_expenses"`
}
