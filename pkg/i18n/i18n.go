package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
)

// Locale desteklenen dil kodu
type Locale string

const (
	LocaleTR Locale = "tr"
	LocaleEN Locale = "en"
)

// DefaultLocale site varsayılan dili
const DefaultLocale = LocaleTR

//go:embed locales/*.json
var localeFS embed.FS

// Bundle tüm dillerin çevirilerini tutar
type Bundle struct {
	mu           sync.RWMutex
	translations map[Locale]map[string]string
	fallback     Locale
}

func NewBundle(fallback Locale) *Bundle {
	return &Bundle{
		translations: make(map[Locale]map[string]string),
		fallback:     fallback,
	}
}

// LoadFS dizindeki tr.json, en.json gibi dosyaları yükler
func (b *Bundle) LoadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read i18n dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		locale := Locale(strings.TrimSuffix(entry.Name(), ".json"))
		file := path.Join(dir, entry.Name())

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}

		var msgs map[string]string
		if err := json.Unmarshal(data, &msgs); err != nil {
			return fmt.Errorf("parse %s: %w", file, err)
		}

		b.LoadMessages(locale, msgs)
	}

	return nil
}

func (b *Bundle) LoadMessages(locale Locale, messages map[string]string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	existing, ok := b.translations[locale]
	if !ok {
		existing = make(map[string]string, len(messages))
		b.translations[locale] = existing
	}
	for k, v := range messages {
		existing[k] = v
	}
}

// T anahtarı verilen dile çevirir. Bulunamazsa varsayılan dile,
// o da yoksa anahtarın kendisine düşer.
func (b *Bundle) T(locale Locale, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	msg, ok := b.translations[locale][key]
	if !ok && locale != b.fallback {
		msg, ok = b.translations[b.fallback][key]
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

func (b *Bundle) Has(locale Locale, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.translations[locale][key]
	return ok
}

var defaultBundle = loadDefault()

func loadDefault() *Bundle {
	b := NewBundle(DefaultLocale)
	if err := b.LoadFS(localeFS, "locales"); err != nil {
		panic(err)
	}
	return b
}

// Default gömülü çevirilerle yüklenmiş bundle
func Default() *Bundle {
	return defaultBundle
}

func T(locale Locale, key string, args ...interface{}) string {
	return defaultBundle.T(locale, key, args...)
}

// ParseLocale "tr", "en-US" gibi değerleri desteklenen dile çevirir
func ParseLocale(s string) (Locale, bool) {
	lang := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(lang, "tr"):
		return LocaleTR, true
	case strings.HasPrefix(lang, "en"):
		return LocaleEN, true
	}
	return DefaultLocale, false
}

// ParseAcceptLanguage Accept-Language başlığındaki ilk desteklenen dili döner
func ParseAcceptLanguage(header string) Locale {
	for _, part := range strings.Split(header, ",") {
		tag := strings.SplitN(part, ";", 2)[0]
		if locale, ok := ParseLocale(tag); ok {
			return locale
		}
	}
	return DefaultLocale
}
