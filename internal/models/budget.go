package models

// Budget caps spending for one expense category. Nothing prevents a user
// from allocating the same category twice; each row stands on its own.
type Budget struct {
	ID       int     `json:"id"`
	UserID   int     `json:"user_id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}
