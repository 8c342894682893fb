package handlers

import (
	"errors"
	"math"
	"strconv"

	"crebito/internal/services/ledger"
	"crebito/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	ledgerService ledger.Service
}

func NewAccountHandler(ledgerService ledger.Service) *AccountHandler {
	return &AccountHandler{
		ledgerService: ledgerService,
	}
}

// parseAccountID is a helper shared by both endpoints; a non-numeric id can
// never name an existing account, so it is reported the same way.
func parseAccountID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (h *AccountHandler) CreateTransaction(c *fiber.Ctx) error {
	id, err := parseAccountID(c)
	if err != nil {
		return utils.NotFound(c, "account not found")
	}

	var input struct {
		Value       float64 `json:"value"`
		Kind        string  `json:"kind"`
		Description string  `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.UnprocessableEntity(c, "invalid request format")
	}

	// Fractional amounts never reach the service: the invariant is that no
	// balance movement is ever sub-cent, and JSON numbers are the one place
	// a fraction can enter.
	if input.Value != math.Trunc(input.Value) {
		return utils.UnprocessableEntity(c, "value must be an integer")
	}

	balance, err := h.ledgerService.Apply(c.Context(), id, ledger.TransactionRequest{
		Value:       int64(input.Value),
		Kind:        input.Kind,
		Description: input.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrAccountNotFound):
			return utils.NotFound(c, "account not found")
		case errors.Is(err, ledger.ErrLockTimeout):
			return utils.ServiceUnavailable(c, "account busy, retry later")
		case errors.Is(err, ledger.ErrInvalidTransactionKind),
			errors.Is(err, ledger.ErrInvalidDescription),
			errors.Is(err, ledger.ErrInvalidAmount),
			errors.Is(err, ledger.ErrInsufficientFunds):
			return utils.UnprocessableEntity(c, err.Error())
		default:
			return utils.InternalError(c, "failed to process transaction")
		}
	}

	return utils.Success(c, balance)
}

func (h *AccountHandler) GetStatement(c *fiber.Ctx) error {
	id, err := parseAccountID(c)
	if err != nil {
		return utils.NotFound(c, "account not found")
	}

	statement, err := h.ledgerService.Statement(c.Context(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrAccountNotFound) {
			return utils.NotFound(c, "account not found")
		}
		return utils.InternalError(c, "failed to read statement")
	}

	return utils.Success(c, statement)
}
