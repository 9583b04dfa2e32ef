package controller

import (
	"errors"
	"strings"
	"time"

	"emlakweb_backend/internal/middleware"
	"emlakweb_backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var authRepo *repository.AuthRepository

func InitAuthController(repo *repository.AuthRepository) {
	authRepo = repo
}

func setSessionCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   c.Protocol() == "https",
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Login admin girişini doğrular, oturum token'ını gövdede ve çerezde döner
func Login(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, fiber.StatusBadRequest, "error.bad_request")
	}

	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" || input.Password == "" {
		return fail(c, fiber.StatusBadRequest, "auth.missing_credentials")
	}

	session, err := authRepo.Login(c.UserContext(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			return fail(c, fiber.StatusUnauthorized, "auth.invalid_credentials")
		}
		return internalError(c, "Login failed", err)
	}

	setSessionCookie(c, session.Token, session.ExpiresAt)

	return success(c, fiber.StatusOK, fiber.Map{
		"token":      session.Token,
		"username":   session.Username,
		"expires_at": session.ExpiresAt,
	})
}

// Verify RequireAdmin'den geçen isteğin oturum bilgisini döner
func Verify(c *fiber.Ctx) error {
	session := middleware.GetSession(c)
	if session == nil {
		return fail(c, fiber.StatusUnauthorized, "error.unauthorized")
	}
	return success(c, fiber.StatusOK, fiber.Map{
		"username":   session.Username,
		"expires_at": session.ExpiresAt,
	})
}

func Logout(c *fiber.Ctx) error {
	if token := middleware.SessionToken(c); token != "" {
		if err := authRepo.Logout(c.UserContext(), token); err != nil {
			return internalError(c, "Logout failed", err)
		}
	}

	setSessionCookie(c, "", time.Unix(0, 0))
	return success(c, fiber.StatusOK, fiber.Map{"message": message(c, "auth.logout_success")})
}
