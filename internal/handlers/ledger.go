package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
)

// formDateLayout matches the value format of <input type="date">.
const formDateLayout = "2006-01-02"

// The accountType field carries the target account's ID; the form's picker
// labels options by type but submits the primary key.
type incomeForm struct {
	Date      string `form:"incomeDate" binding:"required"`
	AccountID string `form:"accountType" binding:"required"`
	Source    string `form:"incomeSource" binding:"required"`
	Amount    string `form:"amount" binding:"required"`
}

type expenseForm struct {
	Date      string `form:"expenseDate" binding:"required"`
	AccountID string `form:"accountType" binding:"required"`
	Category  string `form:"expenseCategory" binding:"required"`
	Amount    string `form:"amount" binding:"required"`
	Remark    string `form:"remark"`
}

// parseLedgerFields turns raw form strings into typed values, wrapping
// every failure in ErrInvalidInput so callers answer 400, not 500.
func parseLedgerFields(rawDate, rawAccountID, rawAmount string) (time.Time, int, float64, error) {
	date, err := time.Parse(formDateLayout, rawDate)
	if err != nil {
		return time.Time{}, 0, 0, fmt.Errorf("%w: bad date %q", service.ErrInvalidInput, rawDate)
	}
	accountID, err := strconv.Atoi(rawAccountID)
	if err != nil {
		return time.Time{}, 0, 0, fmt.Errorf("%w: bad account id %q", service.ErrInvalidInput, rawAccountID)
	}
	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		return time.Time{}, 0, 0, fmt.Errorf("%w: bad amount %q", service.ErrInvalidInput, rawAmount)
	}
	return date, accountID, amount, nil
}

func (h *Handler) addIncome(c *gin.Context) {
	var form incomeForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "All income fields are required")
		return
	}

	date, accountID, amount, err := parseLedgerFields(form.Date, form.AccountID, form.Amount)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid income fields")
		return
	}

	userID, _ := currentUser(c)
	_, err = h.services.AddIncome(c.Request.Context(), userID, service.IncomeParams{
		Date:      date,
		AccountID: accountID,
		Source:    form.Source,
		Amount:    amount,
	})
	if err != nil {
		h.logAndPlainError(c, "Error occurred while adding income", "add_income_failed", err, "user_id", userID)
		return
	}
	c.Redirect(http.StatusFound, "/incomes")
}

func (h *Handler) addExpense(c *gin.Context) {
	var form expenseForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "All expense fields are required")
		return
	}

	date, accountID, amount, err := parseLedgerFields(form.Date, form.AccountID, form.Amount)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid expense fields")
		return
	}

	userID, _ := currentUser(c)
	_, err = h.services.AddExpense(c.Request.Context(), userID, service.ExpenseParams{
		Date:      date,
		AccountID: accountID,
		Category:  form.Category,
		Amount:    amount,
		Remark:    form.Remark,
	})
	if err != nil {
		h.logAndPlainError(c, "Error occurred while adding expense", "add_expense_failed", err, "user_id", userID)
		return
	}
	c.Redirect(http.StatusFound, "/expenses")
}

// removeAllTransactions wipes the user's transactions, incomes, expenses
// and budgets.
func (h *Handler) removeAllTransactions(c *gin.Context) {
	userID, _ := currentUser(c)
	if err := h.services.RemoveAll(c.Request.Context(), userID); err != nil {
		h.logAndPlainError(c, "Error occurred while removing all transactions", "remove_all_failed", err, "user_id", userID)
		return
	}
	c.Redirect(http.StatusFound, "/home")
}
