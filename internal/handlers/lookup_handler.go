package handlers

import (
	"github.com/basmahq/moderation-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type LookupHandler struct {
	lookups *services.LookupService
}

func NewLookupHandler(lookups *services.LookupService) *LookupHandler {
	return &LookupHandler{lookups: lookups}
}

func (h *LookupHandler) AccountTypes(c *fiber.Ctx) error {
	rows, err := h.lookups.AccountTypes()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rows)
}

func (h *LookupHandler) ReportTypes(c *fiber.Ctx) error {
	rows, err := h.lookups.ReportTypes()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rows)
}

func (h *LookupHandler) ReportStatuses(c *fiber.Ctx) error {
	rows, err := h.lookups.ReportStatuses()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rows)
}

func (h *LookupHandler) Governments(c *fiber.Ctx) error {
	rows, err := h.lookups.Governments()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rows)
}

func (h *LookupHandler) Districts(c *fiber.Ctx) error {
	rows, err := h.lookups.Districts()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rows)
}

func (h *LookupHandler) Areas(c *fiber.Ctx) error {
	rows, err := h.lookups.Areas()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rows)
}

func (h *LookupHandler) AccountOptions(c *fiber.Ctx) error {
	rows, err := h.lookups.AccountOptions()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rows)
}
