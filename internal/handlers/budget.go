package handlers

import (
	"net/http"
	"strconv"

	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
)

type allocateBudgetForm struct {
	Category string `form:"expenseCategory" binding:"required"`
	Amount   string `form:"budgetAmount" binding:"required"`
}

type removeBudgetForm struct {
	Category string `form:"removeCategory" binding:"required"`
}

func (h *Handler) allocateBudget(c *gin.Context) {
	var form allocateBudgetForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Category and amount are required")
		return
	}

	amount, err := strconv.ParseFloat(form.Amount, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid budget amount")
		return
	}

	userID, _ := currentUser(c)
	_, err = h.services.AllocateBudget(c.Request.Context(), userID, service.BudgetParams{
		Category: form.Category,
		Amount:   amount,
	})
	if err != nil {
		h.logAndPlainError(c, "Error occurred while allocating budget", "allocate_budget_failed", err, "user_id", userID)
		return
	}
	c.Redirect(http.StatusFound, "/budget")
}

func (h *Handler) removeBudget(c *gin.Context) {
	var form removeBudgetForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Category is required")
		return
	}

	userID, _ := currentUser(c)
	if _, err := h.services.RemoveBudget(c.Request.Context(), userID, form.Category); err != nil {
		h.logAndPlainError(c, "Error occurred while removing budget", "remove_budget_failed", err, "user_id", userID)
		return
	}
	c.Redirect(http.StatusFound, "/budget")
}
