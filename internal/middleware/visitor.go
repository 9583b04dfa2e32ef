package middleware

import (
	"log"
	"time"

	"emlakweb_backend/pkg/utils/jwt"

	"github.com/gofiber/fiber/v2"
)

const (
	VisitorCookie = "vid"
	visitorKey    = "visitor_id"
)

// Visitor her ziyaretçiye imzalı bir kimlik çerezi verir.
// Geçerli çerez gelmeyen istekte kimlik istemci IP'sidir; yeni çerez
// ancak sonraki istekte kullanılır, çerez saklamayan istemciler de tek kimlikte kalır.
func Visitor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := c.Cookies(VisitorCookie); raw != "" {
			if claims, err := jwt.ValidateVisitorToken(raw); err == nil {
				c.Locals(visitorKey, claims.VisitorID)
				return c.Next()
			}
		}

		c.Locals(visitorKey, c.IP())

		token, _, err := jwt.GenerateVisitorToken()
		if err != nil {
			log.Printf("Could not generate visitor token: %v", err)
			return c.Next()
		}

		c.Cookie(&fiber.Cookie{
			Name:     VisitorCookie,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(jwt.VisitorTokenTTL),
			HTTPOnly: true,
			Secure:   c.Protocol() == "https",
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return c.Next()
	}
}

// GetVisitorID ziyaretçi kimliğini döner; middleware çalışmadıysa IP'ye düşer
func GetVisitorID(c *fiber.Ctx) string {
	if id, ok := c.Locals(visitorKey).(string); ok && id != "" {
		return id
	}
	return c.IP()
}
