package models

import "time"

// Transaction is a read-only history row tied to an account. Rows are
// produced outside the handler set; the app only lists and purges them.
type Transaction struct {
	ID          int       `json:"id"`
	AccountID   int       `json:"account_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Time        time.Time `json:"time"`
}
