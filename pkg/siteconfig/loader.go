package siteconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const fetchTimeout = 10 * time.Second

// Loader aktif site yapılandırmasını okur ve bellekte tutar.
// Kaynak http(s) adresi ise indirilir, değilse config dizininden okunur.
type Loader struct {
	mu     sync.RWMutex
	source string
	dir    string
	client *http.Client
	cached *SiteConfig
}

func NewLoader(source, dir string) *Loader {
	return &Loader{
		source: strings.TrimSpace(source),
		dir:    dir,
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// IsRemote kaynak bir http(s) adresi mi
func (l *Loader) IsRemote() bool {
	return strings.HasPrefix(l.source, "http://") || strings.HasPrefix(l.source, "https://")
}

// ActiveFile config dizinindeki aktif dosyanın adı; uzak kaynakta boş döner
func (l *Loader) ActiveFile() string {
	if l.source == "" || l.IsRemote() {
		return ""
	}
	return filepath.Base(l.source)
}

func (l *Loader) Source() string {
	return l.source
}

// Load önbellekteki yapılandırmayı döner, yoksa kaynaktan yükler.
// Her hata durumunda varsayılan yapılandırmaya düşülür, sonuç hiçbir zaman nil değildir.
func (l *Loader) Load(ctx context.Context) *SiteConfig {
	l.mu.RLock()
	cached := l.cached
	l.mu.RUnlock()
	if cached != nil {
		return cached
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cached != nil {
		return l.cached
	}

	cfg, err := l.read(ctx)
	if err != nil {
		log.Printf("Site config could not be loaded from %q, using defaults: %v", l.source, err)
		cfg = Default()
	}
	l.cached = cfg
	return cfg
}

// Reload önbelleği temizler; bir sonraki Load kaynaktan okur
func (l *Loader) Reload() {
	l.mu.Lock()
	l.cached = nil
	l.mu.Unlock()
}

func (l *Loader) read(ctx context.Context) (*SiteConfig, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case l.source == "":
		return nil, fmt.Errorf("no config source")
	case l.IsRemote():
		data, err = l.fetch(ctx)
	default:
		data, err = os.ReadFile(filepath.Join(l.dir, l.ActiveFile()))
	}
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxConfigBytes))
}

// Parse json'u varsayılanların üzerine açar; dosyada olmayan alanlar varsayılan kalır
func Parse(data []byte) (*SiteConfig, error) {
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return cfg, nil
}
