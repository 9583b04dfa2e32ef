package controller

import (
	"errors"
	"strings"

	"emlakweb_backend/pkg/siteconfig"
	"emlakweb_backend/pkg/utils/validation"

	"github.com/gofiber/fiber/v2"
)

var (
	siteConfigLoader *siteconfig.Loader
	configManager    *siteconfig.Manager
)

func InitConfigController(loader *siteconfig.Loader, manager *siteconfig.Manager) {
	siteConfigLoader = loader
	configManager = manager
}

type RenameConfigInput struct {
	Name string `json:"name"`
}

// configError manager hatalarını HTTP cevabına çevirir
func configError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, siteconfig.ErrInvalidName):
		return fail(c, fiber.StatusBadRequest, "config.invalid_name")
	case errors.Is(err, siteconfig.ErrInvalidJSON):
		detail := strings.TrimPrefix(err.Error(), siteconfig.ErrInvalidJSON.Error()+": ")
		return fail(c, fiber.StatusBadRequest, "config.invalid_json", detail)
	case errors.Is(err, siteconfig.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "config.not_found")
	case errors.Is(err, siteconfig.ErrExists):
		return fail(c, fiber.StatusConflict, "config.exists")
	case errors.Is(err, siteconfig.ErrActiveFile):
		return fail(c, fiber.StatusBadRequest, "config.active_delete")
	case errors.Is(err, validation.ErrFileRequired):
		return fail(c, fiber.StatusBadRequest, "upload.no_file")
	case errors.Is(err, validation.ErrFileSize), errors.Is(err, validation.ErrConfigType):
		return fail(c, fiber.StatusBadRequest, "config.invalid_file")
	}
	return internalError(c, "Config operation failed", err)
}

// GetSiteConfig aktif site yapılandırmasını döner
func GetSiteConfig(c *fiber.Ctx) error {
	return success(c, fiber.StatusOK, siteConfigLoader.Load(c.UserContext()))
}

func ListConfigs(c *fiber.Ctx) error {
	files, err := configManager.List()
	if err != nil {
		return configError(c, err)
	}
	return success(c, fiber.StatusOK, fiber.Map{
		"files":  files,
		"active": siteConfigLoader.ActiveFile(),
	})
}

// GetConfig dosyanın ham içeriğini döner
func GetConfig(c *fiber.Ctx) error {
	name := c.Params("name")
	content, err := configManager.Get(name)
	if err != nil {
		return configError(c, err)
	}
	return success(c, fiber.StatusOK, fiber.Map{
		"name":    name,
		"content": string(content),
	})
}

// SaveConfig istek gövdesini geçerli json ise değiştirmeden kaydeder
func SaveConfig(c *fiber.Ctx) error {
	name := c.Params("name")
	content := append([]byte(nil), c.Body()...)

	if err := configManager.Save(name, content); err != nil {
		return configError(c, err)
	}
	return success(c, fiber.StatusOK, fiber.Map{
		"name":    name,
		"message": message(c, "config.saved"),
	})
}

func UploadConfig(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "upload.no_file")
	}

	name, err := configManager.Upload(file)
	if err != nil {
		return configError(c, err)
	}
	return success(c, fiber.StatusCreated, fiber.Map{
		"name":    name,
		"message": message(c, "config.saved"),
	})
}

func RenameConfig(c *fiber.Ctx) error {
	input := new(RenameConfigInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, fiber.StatusBadRequest, "error.bad_request")
	}

	if err := configManager.Rename(c.Params("name"), strings.TrimSpace(input.Name)); err != nil {
		return configError(c, err)
	}
	return success(c, fiber.StatusOK, fiber.Map{
		"name":    input.Name,
		"message": message(c, "config.renamed"),
	})
}

func DeleteConfig(c *fiber.Ctx) error {
	if err := configManager.Delete(c.Params("name")); err != nil {
		return configError(c, err)
	}
	return success(c, fiber.StatusOK, fiber.Map{"message": message(c, "config.deleted")})
}

// FormatConfig gövdedeki json'u girintili olarak geri döner, diske yazmaz
func FormatConfig(c *fiber.Ctx) error {
	formatted, err := siteconfig.Format(c.Body())
	if err != nil {
		return configError(c, err)
	}
	return success(c, fiber.StatusOK, fiber.Map{"content": string(formatted)})
}
