package controller

import (
	"errors"

	"emlakweb_backend/internal/middleware"
	"emlakweb_backend/pkg/mailto"

	"github.com/gofiber/fiber/v2"
)

var mailtoGenerator *mailto.Generator

func InitContactController(generator *mailto.Generator) {
	mailtoGenerator = generator
}

func mailtoError(c *fiber.Ctx, err error) error {
	var fieldErr *mailto.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return fail(c, fiber.StatusBadRequest, "mailto.required", fieldErr.Field)
	case errors.Is(err, mailto.ErrInvalidEmail):
		return fail(c, fiber.StatusBadRequest, "mailto.invalid_email")
	}
	return internalError(c, "Could not build mailto link", err)
}

// ContactMailto iletişim formundan mailto bağlantısı üretir
func ContactMailto(c *fiber.Ctx) error {
	form := new(mailto.ContactForm)
	if err := c.BodyParser(form); err != nil {
		return fail(c, fiber.StatusBadRequest, "error.bad_request")
	}

	cfg := siteConfigLoader.Load(c.UserContext())
	msg, err := mailtoGenerator.Contact(*form, string(middleware.GetLocale(c)), cfg.ContactEmail(), cfg.Company.Name)
	if err != nil {
		return mailtoError(c, err)
	}
	return success(c, fiber.StatusOK, msg)
}

// CareersMailto iş başvurusu formundan İK adresine mailto bağlantısı üretir
func CareersMailto(c *fiber.Ctx) error {
	form := new(mailto.JobApplicationForm)
	if err := c.BodyParser(form); err != nil {
		return fail(c, fiber.StatusBadRequest, "error.bad_request")
	}

	cfg := siteConfigLoader.Load(c.UserContext())
	msg, err := mailtoGenerator.JobApplication(*form, string(middleware.GetLocale(c)), cfg.HREmail(), cfg.Company.Name)
	if err != nil {
		return mailtoError(c, err)
	}
	return success(c, fiber.StatusOK, msg)
}
