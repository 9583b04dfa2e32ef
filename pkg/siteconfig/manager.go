package siteconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"emlakweb_backend/pkg/utils/validation"
)

const maxConfigBytes = validation.MaxConfigSize

var (
	ErrInvalidName = errors.New("invalid config file name")
	ErrInvalidJSON = errors.New("invalid JSON")
	ErrNotFound    = errors.New("config file not found")
	ErrExists      = errors.New("config file already exists")
	ErrActiveFile  = errors.New("active config file cannot be deleted")
)

var validName = regexp.MustCompile(`^[A-Za-z0-9_-]+\.json$`)

// FileInfo admin panelinde listelenen dosya bilgisi
type FileInfo struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
	Active     bool      `json:"active"`
}

// Manager config dizinindeki json dosyalarını yönetir
type Manager struct {
	dir    string
	loader *Loader
}

func NewManager(dir string, loader *Loader) *Manager {
	return &Manager{dir: dir, loader: loader}
}

func (m *Manager) Dir() string {
	return m.dir
}

// ValidateName dosya adında dizin ayracı, ".." ve .json dışı uzantıya izin vermez
func ValidateName(name string) error {
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) || !validName.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

// ValidateJSON içeriğin geçerli json olup olmadığını kontrol eder
func ValidateJSON(content []byte) error {
	var v interface{}
	if err := json.Unmarshal(content, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return nil
}

func (m *Manager) path(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(m.dir, name), nil
}

func (m *Manager) isActive(name string) bool {
	return m.loader != nil && m.loader.ActiveFile() == name
}

func (m *Manager) invalidate(names ...string) {
	for _, name := range names {
		if m.isActive(name) {
			m.loader.Reload()
			return
		}
	}
}

func (m *Manager) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []FileInfo{}, nil
		}
		return nil, err
	}

	files := []FileInfo{}
	for _, entry := range entries {
		if entry.IsDir() || ValidateName(entry.Name()) != nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		files = append(files, FileInfo{
			Name:       entry.Name(),
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
			Active:     m.isActive(entry.Name()),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// Get dosyanın ham içeriğini döner
func (m *Manager) Get(name string) ([]byte, error) {
	p, err := m.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

// Save geçerli json'u olduğu gibi (byte byte) yazar; geçersiz json diske ulaşmaz
func (m *Manager) Save(name string, content []byte) error {
	p, err := m.path(name)
	if err != nil {
		return err
	}
	if err := ValidateJSON(content); err != nil {
		return err
	}
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return err
	}
	if err := os.WriteFile(p, content, 0644); err != nil {
		return err
	}
	m.invalidate(name)
	return nil
}

// Upload multipart ile gelen .json dosyasını aynı kurallarla kaydeder
func (m *Manager) Upload(file *multipart.FileHeader) (string, error) {
	if err := validation.ValidateConfigFile(file); err != nil {
		return "", err
	}
	name := filepath.Base(file.Filename)
	if err := ValidateName(name); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, maxConfigBytes+1))
	if err != nil {
		return "", err
	}
	if len(content) > maxConfigBytes {
		return "", validation.ErrFileSize
	}

	return name, m.Save(name, content)
}

// Rename hedef adda dosya varsa reddeder
func (m *Manager) Rename(oldName, newName string) error {
	from, err := m.path(oldName)
	if err != nil {
		return err
	}
	to, err := m.path(newName)
	if err != nil {
		return err
	}

	if _, err := os.Stat(from); errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	if _, err := os.Stat(to); err == nil {
		return ErrExists
	}

	if err := os.Rename(from, to); err != nil {
		return err
	}
	m.invalidate(oldName, newName)
	return nil
}

// Delete aktif yapılandırma dosyasını silmez
func (m *Manager) Delete(name string) error {
	p, err := m.path(name)
	if err != nil {
		return err
	}
	if m.isActive(name) {
		return ErrActiveFile
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Format json'u 2 boşluk girintiyle yeniden yazar
func Format(content []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, bytes.TrimSpace(content), "", "  "); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
