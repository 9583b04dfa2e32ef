package middleware

import (
	"emlakweb_backend/pkg/i18n"

	"github.com/gofiber/fiber/v2"
)

const localeKey = "locale"

// I18n dili önce ?lang= parametresinden, sonra Accept-Language başlığından belirler
func I18n() fiber.Handler {
	return func(c *fiber.Ctx) error {
		locale, ok := i18n.ParseLocale(c.Query("lang"))
		if !ok {
			locale = i18n.ParseAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
		}

		c.Locals(localeKey, locale)
		c.Set(fiber.HeaderContentLanguage, string(locale))
		return c.Next()
	}
}

func GetLocale(c *fiber.Ctx) i18n.Locale {
	if locale, ok := c.Locals(localeKey).(i18n.Locale); ok {
		return locale
	}
	return i18n.DefaultLocale
}
