package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

var (
	ErrForeignURL = errors.New("url does not belong to this storage")
	ErrInvalidKey = errors.New("invalid object key")
)

// Storage yüklenen dosyaları saklar ve siler
type Storage interface {
	Save(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

// Klasör adları
const (
	FolderListings = "listings"
	FolderBlog     = "blog"
	FolderMisc     = "misc"
)

// NormalizeFolder bilinmeyen klasörleri misc'e yönlendirir
func NormalizeFolder(folder string) string {
	switch folder {
	case FolderListings, FolderBlog:
		return folder
	}
	return FolderMisc
}

// BuildObjectKey folder/yyyy/mm/<isim>-<uuid>.<ext> biçiminde URL-safe bir anahtar üretir
func BuildObjectKey(folder, originalName, ext string) string {
	base := strings.TrimSuffix(path.Base(originalName), path.Ext(originalName))
	safeName := slug.Make(base)
	if safeName == "" {
		safeName = "image"
	}
	if len(safeName) > 60 {
		safeName = strings.Trim(safeName[:60], "-")
	}

	now := time.Now()
	return fmt.Sprintf("%s/%d/%02d/%s-%s.%s",
		NormalizeFolder(folder),
		now.Year(),
		now.Month(),
		safeName,
		uuid.New().String(),
		strings.TrimPrefix(ext, "."),
	)
}

// keyFromURL public URL'den object key'i çıkarır
func keyFromURL(prefix, url string) (string, error) {
	prefix = strings.TrimSuffix(prefix, "/") + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", ErrForeignURL
	}
	return cleanKey(strings.TrimPrefix(url, prefix))
}

func cleanKey(key string) (string, error) {
	if key == "" || strings.Contains(key, "\\") {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean("/" + key)[1:]
	if cleaned == "" || cleaned != key {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}
