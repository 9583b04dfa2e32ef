package cron

import (
	"log"

	"github.com/robfig/cron/v3"
)

// Reloader önbelleği temizlenebilen yapılandırma kaynağı
type Reloader interface {
	Reload()
	Source() string
}

// InitConfigRefreshCron uzak (http) yapılandırma kaynağının önbelleğini
// periyodik olarak temizler. Yerel dosyalar admin panelinden kaydedilirken
// zaten yenilendiği için bu iş sadece uzak kaynakta gerekir.
func InitConfigRefreshCron(loader Reloader, spec string) *cron.Cron {
	if spec == "" {
		spec = "@every 10m"
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		loader.Reload()
		log.Printf("Site config cache cleared for %s", loader.Source())
	})
	if err != nil {
		log.Printf("Could not initialize config refresh cron: %v", err)
		return nil
	}

	c.Start()
	return c
}
