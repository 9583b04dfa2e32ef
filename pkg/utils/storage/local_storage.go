package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage dosyaları sunucu diskinde saklar, app.Static ile servis edilir
type LocalStorage struct {
	baseDir   string
	publicURL string
}

func NewLocalStorage(baseDir, publicURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("could not create upload directory: %w", err)
	}
	return &LocalStorage{
		baseDir:   baseDir,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

func (s *LocalStorage) BaseDir() string {
	return s.baseDir
}

func (s *LocalStorage) Save(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	absPath := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return "", fmt.Errorf("could not create directory: %w", err)
	}

	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("could not create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, body); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("could not write file: %w", err)
	}

	return s.publicURL + "/" + key, nil
}

// Delete dosyayı siler; zaten olmayan dosya hata sayılmaz
func (s *LocalStorage) Delete(ctx context.Context, url string) error {
	key, err := keyFromURL(s.publicURL, url)
	if err != nil {
		return err
	}

	absPath := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.Remove(absPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not delete file: %w", err)
	}
	return nil
}
