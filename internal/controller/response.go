package controller

import (
	"errors"
	"log"
	"strconv"

	"emlakweb_backend/internal/middleware"
	"emlakweb_backend/pkg/i18n"

	"github.com/gofiber/fiber/v2"
)

var errInvalidID = errors.New("invalid id")

// success {"success": true, "data": ...} zarfıyla cevap verir
func success(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// fail mesaj anahtarını isteğin diline çevirerek hata zarfı döner
func fail(c *fiber.Ctx, status int, key string, args ...interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message(c, key, args...),
	})
}

func message(c *fiber.Ctx, key string, args ...interface{}) string {
	return i18n.T(middleware.GetLocale(c), key, args...)
}

// internalError hatayı loglar, kullanıcıya genel mesaj döner
func internalError(c *fiber.Ctx, context string, err error) error {
	log.Printf("%s: %v", context, err)
	return fail(c, fiber.StatusInternalServerError, "error.internal")
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

// ErrorHandler yakalanmamış hataları aynı zarf biçiminde döner
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		key := "error.bad_request"
		switch fe.Code {
		case fiber.StatusNotFound:
			key = "error.not_found"
		case fiber.StatusUnauthorized:
			key = "error.unauthorized"
		case fiber.StatusRequestEntityTooLarge:
			key = "upload.too_large"
		}
		if fe.Code >= fiber.StatusInternalServerError {
			key = "error.internal"
		}
		return fail(c, fe.Code, key)
	}
	return internalError(c, "Unhandled error", err)
}
