package service

import (
	"errors"
	"time"
)

// ErrInvalidInput marks validation failures; handlers map it to a 400
// instead of the generic database 500.
var ErrInvalidInput = errors.New("invalid input")

type IncomeParams struct {
	Date      time.Time
	AccountID int
	Source    string
	Amount    float64
}

type ExpenseParams struct {
	Date      time.Time
	AccountID int
	Category  string
	Amount    float64
	Remark    string
}

type BudgetParams struct {
	Category string
	Amount   float64
}
