package handlers

import (
	"errors"

	"gateway-discoveries/internal/adapters/http/middleware"
	"gateway-discoveries/internal/core/domain"
	"gateway-discoveries/internal/core/services"
	"gateway-discoveries/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	auth *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Email and password are required")
	}
	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	result, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid credentials")
		}
		return response.InternalServerError(c, "Login failed")
	}

	return c.JSON(result)
}

// Profile handles GET /api/auth/profile
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	profile, err := h.auth.GetProfile(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to fetch profile")
	}

	return c.JSON(profile)
}

// Verify handles GET /api/auth/verify. Reaching this handler means the
// token already passed Authenticate, so it just echoes the claims.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	return c.JSON(fiber.Map{
		"valid": true,
		"user": fiber.Map{
			"id":    claims.UserID,
			"email": claims.Email,
			"role":  claims.Role,
			"name":  claims.Name,
		},
	})
}
