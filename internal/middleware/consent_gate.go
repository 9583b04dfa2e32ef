package middleware

import (
	"emlakweb_backend/pkg/consent"
	"emlakweb_backend/pkg/i18n"

	"github.com/gofiber/fiber/v2"
)

// Category onay gerektiren çerez kategorisi
type Category string

const (
	CategoryFunctional Category = "functional"
	CategoryAnalytics  Category = "analytics"
	CategoryMarketing  Category = "marketing"
)

// Allows tercihlerin kategoriye izin verip vermediğini döner
func (c Category) Allows(p consent.Preferences) bool {
	switch c {
	case CategoryFunctional:
		return p.Functional
	case CategoryAnalytics:
		return p.Analytics
	case CategoryMarketing:
		return p.Marketing
	}
	return false
}

// RequireConsent ziyaretçi ilgili kategoriye izin vermediyse isteği
// 202 ile sessizce kabul eder ve işlemi yapmaz
func RequireConsent(manager *consent.Manager, category Category) fiber.Handler {
	return func(c *fiber.Ctx) error {
		prefs, ok := manager.Current(c.Cookies(consent.CookieName))
		if !ok || !category.Allows(prefs) {
			return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
				"success": true,
				"data": fiber.Map{
					"recorded": false,
					"reason":   i18n.T(GetLocale(c), "stats.not_consented"),
				},
			})
		}
		return c.Next()
	}
}
