// Package transfer exposes the loan transfer endpoint.
package transfer

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bdelibalta/fabrick-gateway/pkg/domain"
	transfersvc "github.com/bdelibalta/fabrick-gateway/pkg/service/transfer"
	"github.com/bdelibalta/fabrick-gateway/webapi/common"
)

// Routes registers the transfer endpoint:
//   - POST /api/v1/transfer/:accountId : Execute a loan transfer from the account.
func Routes(app *fiber.App, transferSvc *transfersvc.Service) {
	app.Post("/api/v1/transfer/:accountId", TransferLoan(transferSvc))
}

// TransferLoan returns a handler executing a loan transfer.
// @Summary Execute a loan transfer
// @Description Executes a money transfer from the account towards the given creditor.
// @Tags transfers
// @Accept json
// @Produce json
// @Param accountId path int true "Account ID"
// @Param request body domain.LoanTransferRequest true "Transfer details"
// @Success 200 {object} common.Response "Transfer executed successfully"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 403 {object} common.ProblemDetails "Forbidden"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/v1/transfer/{accountId} [post]
func TransferLoan(transferSvc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := strconv.ParseInt(c.Params("accountId"), 10, 64)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[domain.LoanTransferRequest](c)
		if err != nil {
			return nil // error response already written
		}
		result, err := transferSvc.TransferLoan(c.UserContext(), accountID, *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to execute transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer executed", result)
	}
}
