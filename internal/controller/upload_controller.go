package controller

import (
	"errors"
	"strings"

	"emlakweb_backend/pkg/utils/image"
	"emlakweb_backend/pkg/utils/storage"
	"emlakweb_backend/pkg/utils/validation"

	"github.com/gofiber/fiber/v2"
)

var fileStorage storage.Storage

func InitUploadController(s storage.Storage) {
	fileStorage = s
}

type DeleteImageInput struct {
	URL string `json:"url"`
}

// UploadImage resmi doğrular, yeniden kodlar ve depolamaya kaydeder
func UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "upload.no_file")
	}

	if err := validation.ValidateImage(file); err != nil {
		switch {
		case errors.Is(err, validation.ErrFileSize):
			return fail(c, fiber.StatusBadRequest, "upload.too_large")
		default:
			return fail(c, fiber.StatusBadRequest, "upload.invalid_file")
		}
	}

	folder := c.FormValue("folder", storage.FolderListings)
	if folder != storage.FolderListings && folder != storage.FolderBlog {
		return fail(c, fiber.StatusBadRequest, "upload.invalid_folder")
	}

	processed, err := image.ProcessImage(file)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "upload.invalid_file")
	}

	key := storage.BuildObjectKey(folder, file.Filename, processed.Ext)
	url, err := fileStorage.Save(c.UserContext(), key, processed.Body, processed.ContentType)
	if err != nil {
		return internalError(c, "Could not store image", err)
	}

	return success(c, fiber.StatusCreated, fiber.Map{
		"url":          url,
		"key":          key,
		"size":         processed.Body.Len(),
		"content_type": processed.ContentType,
	})
}

// DeleteImage depolamadaki dosyayı siler
func DeleteImage(c *fiber.Ctx) error {
	input := new(DeleteImageInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, fiber.StatusBadRequest, "error.bad_request")
	}

	url := strings.TrimSpace(input.URL)
	if url == "" {
		return fail(c, fiber.StatusBadRequest, "upload.url_required")
	}

	if err := fileStorage.Delete(c.UserContext(), url); err != nil {
		if errors.Is(err, storage.ErrForeignURL) || errors.Is(err, storage.ErrInvalidKey) {
			return fail(c, fiber.StatusBadRequest, "upload.url_required")
		}
		return internalError(c, "Could not delete image", err)
	}

	return success(c, fiber.StatusOK, fiber.Map{"message": message(c, "upload.deleted")})
}
