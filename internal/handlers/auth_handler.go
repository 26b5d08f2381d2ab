package handlers

import (
	"github.com/basmahq/moderation-api/internal/dto"
	"github.com/basmahq/moderation-api/internal/middleware"
	"github.com/basmahq/moderation-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	sessions *services.SessionService
}

func NewAuthHandler(sessions *services.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return badRequest(c, "username and password are required")
	}

	token, _, err := h.sessions.Login(req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Logout(middleware.CurrentSessionID(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}
