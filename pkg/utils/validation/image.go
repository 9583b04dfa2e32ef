// pkg/utils/validation/image.go
package validation

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	ErrFileSize     = errors.New("file size exceeds limit of 10MB")
	ErrFileType     = errors.New("invalid file type. Allowed types: JPG, PNG, WEBP")
	ErrFileRequired = errors.New("no file provided")
	ErrConfigType   = errors.New("invalid file type. Only .json files are allowed")
)

const (
	MaxImageSize  = 10 * 1024 * 1024 // 10MB
	MaxConfigSize = 1 * 1024 * 1024  // 1MB
)

var AllowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

func ValidateImage(file *multipart.FileHeader) error {
	if file == nil {
		return ErrFileRequired
	}

	// Boyut kontrolü
	if file.Size > MaxImageSize {
		return ErrFileSize
	}

	// Tip kontrolü
	ext := filepath.Ext(strings.ToLower(file.Filename))
	if !AllowedImageTypes[ext] {
		return ErrFileType
	}

	return nil
}

// ValidateConfigFile admin panelinden yüklenen json config dosyasını kontrol eder
func ValidateConfigFile(file *multipart.FileHeader) error {
	if file == nil {
		return ErrFileRequired
	}
	if file.Size > MaxConfigSize {
		return ErrFileSize
	}
	if filepath.Ext(strings.ToLower(file.Filename)) != ".json" {
		return ErrConfigType
	}
	return nil
}
