package handlers

import (
	"github.com/basmahq/moderation-api/internal/dto"
	"github.com/basmahq/moderation-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	accounts *services.AccountService
}

func NewAccountHandler(accounts *services.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

func (h *AccountHandler) List(c *fiber.Ctx) error {
	filter := services.AccountFilter{
		AccountTypeID: queryID(c, "account_type_id"),
		Query:         c.Query("q"),
	}

	accounts, err := h.accounts.List(filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(accounts)
}

func (h *AccountHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid account ID")
	}

	account, err := h.accounts.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(account)
}

func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var req dto.AccountCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	account, err := h.accounts.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

func (h *AccountHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid account ID")
	}

	var req dto.AccountUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	account, err := h.accounts.Update(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(account)
}

func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid account ID")
	}

	if err := h.accounts.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
