package middleware

import (
	"context"
	"errors"
	"strings"

	"emlakweb_backend/internal/model"
	"emlakweb_backend/internal/repository"
	"emlakweb_backend/pkg/i18n"

	"github.com/gofiber/fiber/v2"
)

const (
	SessionCookie = "admin_session"
	sessionKey    = "admin_session"
)

// SessionVerifier admin oturumlarını doğrular
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (*model.Session, error)
}

// SessionToken önce Authorization: Bearer başlığına, sonra admin_session çerezine bakar
func SessionToken(c *fiber.Ctx) string {
	if auth := c.Get(fiber.HeaderAuthorization); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	return c.Cookies(SessionCookie)
}

// RequireAdmin geçerli bir admin oturumu olmayan istekleri 401 ile reddeder
func RequireAdmin(verifier SessionVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := verifier.VerifySession(c.UserContext(), SessionToken(c))
		if err != nil {
			key := "error.unauthorized"
			if errors.Is(err, repository.ErrSessionExpired) {
				key = "auth.session_expired"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   i18n.T(GetLocale(c), key),
			})
		}

		c.Locals(sessionKey, session)
		return c.Next()
	}
}

// GetSession RequireAdmin tarafından eklenen oturumu döner
func GetSession(c *fiber.Ctx) *model.Session {
	if session, ok := c.Locals(sessionKey).(*model.Session); ok {
		return session
	}
	return nil
}
