package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createAccountForm struct {
	AccountType string `form:"accountType" binding:"required"`
}

type deleteAccountForm struct {
	AccountType string `form:"deleteAccountType" binding:"required"`
}

func (h *Handler) createAccount(c *gin.Context) {
	var form createAccountForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Account type is required")
		return
	}

	userID, _ := currentUser(c)
	if _, err := h.services.CreateAccount(c.Request.Context(), userID, form.AccountType); err != nil {
		h.logAndPlainError(c, "Error occurred while creating account", "create_account_failed", err, "user_id", userID)
		return
	}
	c.Redirect(http.StatusFound, "/accounts")
}

// deleteAccount removes every account with the submitted type label.
func (h *Handler) deleteAccount(c *gin.Context) {
	var form deleteAccountForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Account type is required")
		return
	}

	userID, _ := currentUser(c)
	deleted, err := h.services.DeleteAccounts(c.Request.Context(), userID, form.AccountType)
	if err != nil {
		h.logAndPlainError(c, "Error occurred while deleting account", "delete_account_failed", err, "user_id", userID)
		return
	}
	if h.log != nil {
		h.log.Infow("accounts_deleted", "user_id", userID, "account_type", form.AccountType, "rows", deleted)
	}
	c.Redirect(http.StatusFound, "/accounts")
}
