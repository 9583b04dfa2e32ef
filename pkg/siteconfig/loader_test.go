package siteconfig

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoader_FileSourceMergesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "site.json", `{"company":{"name":"Deniz Emlak"},"contact":{"email":"iletisim@denizemlak.com"}}`)

	loader := NewLoader("site.json", dir)
	cfg := loader.Load(context.Background())

	assert.Equal(t, "Deniz Emlak", cfg.Company.Name)
	assert.Equal(t, "iletisim@denizemlak.com", cfg.ContactEmail())
	// dosyada olmayan alanlar varsayılandan gelir
	assert.Equal(t, Default().Social.Instagram, cfg.Social.Instagram)
	assert.Equal(t, "site.json", loader.ActiveFile())
}

func TestLoader_LegacyPathUsesBaseName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tenant.json", `{"company":{"name":"Tenant"}}`)

	cfg := NewLoader("/configs/tenant.json", dir).Load(context.Background())
	assert.Equal(t, "Tenant", cfg.Company.Name)
}

func TestLoader_FallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{"company":`)

	cfg := NewLoader("broken.json", dir).Load(context.Background())
	assert.Equal(t, Default(), cfg)

	cfg = NewLoader("missing.json", dir).Load(context.Background())
	assert.Equal(t, Default().Company.Name, cfg.Company.Name)

	cfg = NewLoader("", dir).Load(context.Background())
	assert.NotNil(t, cfg)
}

func TestLoader_CachesUntilReload(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "site.json", `{"company":{"name":"İlk"}}`)

	loader := NewLoader("site.json", dir)
	assert.Equal(t, "İlk", loader.Load(context.Background()).Company.Name)

	writeFile(t, dir, "site.json", `{"company":{"name":"İkinci"}}`)
	assert.Equal(t, "İlk", loader.Load(context.Background()).Company.Name)

	loader.Reload()
	assert.Equal(t, "İkinci", loader.Load(context.Background()).Company.Name)
}

func TestLoader_HTTPSource(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hr":{"email":"kariyer@example.com"}}`))
	}))
	defer srv.Close()

	loader := NewLoader(srv.URL+"/site.json", t.TempDir())
	assert.Empty(t, loader.ActiveFile())

	cfg := loader.Load(context.Background())
	assert.Equal(t, "kariyer@example.com", cfg.HREmail())

	loader.Load(context.Background())
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestLoader_HTTPErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := NewLoader(srv.URL, t.TempDir()).Load(context.Background())
	assert.Equal(t, Default().Company.Name, cfg.Company.Name)
}

func TestSiteConfig_HREmailFallsBackToContact(t *testing.T) {
	cfg := Default()
	cfg.HR.Email = ""
	assert.Equal(t, cfg.Contact.Email, cfg.HREmail())
}

func TestLocalizedText_Get(t *testing.T) {
	text := LocalizedText{TR: "Merhaba", EN: "Hello"}
	assert.Equal(t, "Hello", text.Get("en"))
	assert.Equal(t, "Merhaba", text.Get("tr"))
	assert.Equal(t, "Merhaba", LocalizedText{TR: "Merhaba"}.Get("en"))
}
