package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/dto"
	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/service"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// AuthHandler serves signup, login and logout.
type AuthHandler struct {
	accounts *service.AccountService
	guard    *auth.Guard
}

// NewAuthHandler constructs handler.
func NewAuthHandler(accounts *service.AccountService, guard *auth.Guard) *AuthHandler {
	return &AuthHandler{accounts: accounts, guard: guard}
}

// LoginForm GET /auth/login.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return c.Render(ViewLogin, flashMap(c))
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	form := dto.LoginForm{
		Email:    field(c, "email"),
		Password: field(c, "password"),
	}
	account, err := h.accounts.Authenticate(c.UserContext(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return apperrors.NewInvalidCredentials()
		}
		return err
	}
	if err := h.guard.Login(c, account); err != nil {
		return err
	}
	return c.Redirect("/dashboard")
}

// SignupForm GET /auth/signup.
func (h *AuthHandler) SignupForm(c *fiber.Ctx) error {
	return c.Render(ViewSignup, flashMap(c))
}

// Signup POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	form := dto.SignupForm{
		Name:     field(c, "name"),
		Email:    field(c, "email"),
		Password: field(c, "password"),
	}
	if _, err := h.accounts.Register(c.UserContext(), form.Name, form.Email, form.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrAccountExists):
			return apperrors.NewAccountExists()
		case errors.Is(err, auth.ErrPasswordTooLong):
			return apperrors.NewPasswordTooLong()
		}
		return err
	}
	return c.Redirect("/auth/login?success=account_created")
}

// Logout GET /logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.guard.Logout(c); err != nil {
		return err
	}
	return c.Redirect("/")
}

func flashMap(c *fiber.Ctx) fiber.Map {
	flash := dto.AuthFlash{Error: c.Query("error"), Success: c.Query("success")}
	return fiber.Map{
		"error":   flash.Error,
		"success": flash.Success,
	}
}
