package cron

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 5 * time.Minute

// StalePurger eski görüntülenme kayıtlarını siler
type StalePurger interface {
	PurgeStale(ctx context.Context) (int64, error)
}

// SessionPurger süresi dolmuş admin oturumlarını siler
type SessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// InitCleanupCron her saat başı temizlik işini çalıştırır
func InitCleanupCron(views StalePurger, sessions SessionPurger) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		runCleanup(views, sessions)
	})
	if err != nil {
		log.Printf("Could not initialize cleanup cron: %v", err)
		return nil
	}

	c.Start()
	return c
}

func runCleanup(views StalePurger, sessions SessionPurger) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if views != nil {
		purged, err := views.PurgeStale(ctx)
		if err != nil {
			log.Printf("Error purging stale view tracking: %v", err)
		} else if purged > 0 {
			log.Printf("Purged %d stale view tracking rows", purged)
		}
	}

	if sessions != nil {
		purged, err := sessions.PurgeExpired(ctx)
		if err != nil {
			log.Printf("Error purging expired sessions: %v", err)
		} else if purged > 0 {
			log.Printf("Purged %d expired sessions", purged)
		}
	}
}
