// Package account exposes the account read endpoints and the transaction
// mirror housekeeping endpoint.
package account

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	accountsvc "github.com/bdelibalta/fabrick-gateway/pkg/service/account"
	"github.com/bdelibalta/fabrick-gateway/webapi/common"
)

// Routes registers the account endpoints:
//   - GET    /api/v1/account/:accountId/balance       : Current account balance.
//   - GET    /api/v1/account/:accountId/transactions  : Transactions in an accounting-date window.
//   - DELETE /api/v1/account/transactions/:transactionId : Remove a mirrored transaction.
func Routes(app *fiber.App, accountSvc *accountsvc.Service) {
	api := app.Group("/api/v1/account")
	api.Get("/:accountId/balance", GetBalance(accountSvc))
	api.Get("/:accountId/transactions", GetTransactions(accountSvc))
	api.Delete("/transactions/:transactionId", DeleteTransaction(accountSvc))
}

func parseID(c *fiber.Ctx, param string) (int64, error) {
	return strconv.ParseInt(c.Params(param), 10, 64)
}

// GetBalance returns a handler fetching the current account balance.
// @Summary Get account balance
// @Description Fetches the current balance of the account from the banking upstream.
// @Tags accounts
// @Produce json
// @Param accountId path int true "Account ID"
// @Success 200 {object} common.Response "Balance fetched successfully"
// @Failure 400 {object} common.ProblemDetails "Invalid account ID"
// @Failure 403 {object} common.ProblemDetails "Forbidden"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/v1/account/{accountId}/balance [get]
func GetBalance(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := parseID(c, "accountId")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, fiber.StatusBadRequest)
		}
		balance, err := accountSvc.GetAccountBalance(c.UserContext(), accountID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch account balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance fetched", balance)
	}
}

// GetTransactions returns a handler listing the most recent transactions of
// the account within the requested accounting-date window.
// @Summary List account transactions
// @Description Fetches the 30 most recent transactions within the accounting-date window, newest first.
// @Tags accounts
// @Produce json
// @Param accountId path int true "Account ID"
// @Param fromAccountingDate query string true "Window start (YYYY-MM-DD)"
// @Param toAccountingDate query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} common.Response "Transactions fetched successfully"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 403 {object} common.ProblemDetails "Forbidden"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/v1/account/{accountId}/transactions [get]
func GetTransactions(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := parseID(c, "accountId")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, fiber.StatusBadRequest)
		}
		from := c.Query("fromAccountingDate")
		to := c.Query("toAccountingDate")
		if from == "" || to == "" {
			return common.ProblemDetailsJSON(
				c,
				"Missing accounting date range",
				fiber.ErrBadRequest,
				fiber.StatusBadRequest,
			)
		}
		transactions, err := accountSvc.GetAccountTransactions(c.UserContext(), accountID, from, to)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch account transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", transactions)
	}
}

// DeleteTransaction returns a handler removing a mirrored transaction.
// @Summary Delete a mirrored transaction
// @Description Removes a transaction from the local mirror by its upstream transaction id.
// @Tags accounts
// @Produce json
// @Param transactionId path int true "Transaction ID"
// @Success 200 {object} common.Response "Transaction deleted"
// @Failure 400 {object} common.ProblemDetails "Invalid transaction ID"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/v1/account/transactions/{transactionId} [delete]
func DeleteTransaction(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		transactionID, err := parseID(c, "transactionId")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err, fiber.StatusBadRequest)
		}
		if err := accountSvc.DeleteTransaction(c.UserContext(), transactionID); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction deleted", nil)
	}
}
