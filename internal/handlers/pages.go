package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// getHome renders the dashboard: total balance, this month's income and
// expense sums, and the transaction feed across the user's accounts.
func (h *Handler) getHome(c *gin.Context) {
	userID, userName := currentUser(c)

	summary, err := h.services.Dashboard(c.Request.Context(), userID, time.Now())
	if err != nil {
		h.logAndPlainError(c, "Error occurred while fetching home page data", "dashboard_failed", err, "user_id", userID)
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"UserName":     userName,
		"Balance":      summary.TotalBalance,
		"MonthIncome":  summary.MonthIncome,
		"MonthExpense": summary.MonthExpense,
		"Transactions": summary.Transactions,
	})
}

func (h *Handler) getAccounts(c *gin.Context) {
	userID, _ := currentUser(c)

	summaries, err := h.services.AccountSummaries(c.Request.Context(), userID)
	if err != nil {
		h.logAndPlainError(c, "Error occurred while fetching accounts data", "accounts_page_failed", err, "user_id", userID)
		return
	}

	c.HTML(http.StatusOK, "accounts.html", gin.H{"Accounts": summaries})
}

// getIncomes renders the income form with the user's accounts as targets.
func (h *Handler) getIncomes(c *gin.Context) {
	userID, _ := currentUser(c)

	accounts, err := h.services.ListAccounts(c.Request.Context(), userID)
	if err != nil {
		h.logAndPlainError(c, "Error occurred while fetching accounts data", "incomes_page_failed", err, "user_id", userID)
		return
	}

	c.HTML(http.StatusOK, "incomes.html", gin.H{"Accounts": accounts})
}

func (h *Handler) getExpenses(c *gin.Context) {
	userID, _ := currentUser(c)
	ctx := c.Request.Context()

	accounts, err := h.services.ListAccounts(ctx, userID)
	if err != nil {
		h.logAndPlainError(c, "Error occurred while fetching expenses data", "expenses_page_failed", err, "user_id", userID)
		return
	}
	expenses, err := h.services.ListExpenses(ctx, userID)
	if err != nil {
		h.logAndPlainError(c, "Error occurred while fetching expenses data", "expenses_page_failed", err, "user_id", userID)
		return
	}

	c.HTML(http.StatusOK, "expenses.html", gin.H{
		"Accounts": accounts,
		"Expenses": expenses,
	})
}

func (h *Handler) getBudget(c *gin.Context) {
	userID, _ := currentUser(c)

	overview, err := h.services.BudgetOverview(c.Request.Context(), userID)
	if err != nil {
		h.logAndPlainError(c, "Error occurred while fetching budget data", "budget_page_failed", err, "user_id", userID)
		return
	}

	c.HTML(http.StatusOK, "budget.html", gin.H{
		"Budgets":  overview.Budgets,
		"Exceeded": overview.Exceeded,
	})
}
