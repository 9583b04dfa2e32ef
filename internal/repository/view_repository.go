package repository

import (
	"context"
	"errors"
	"time"

	"emlakweb_backend/internal/model"

	"gorm.io/gorm"
)

// ViewTracker aynı ziyaretçinin tekrar eden görüntülenmelerini ayıklar
type ViewTracker struct {
	db     *gorm.DB
	now    func() time.Time
	window time.Duration
	ttl    time.Duration
}

func NewViewTracker(db *gorm.DB) *ViewTracker {
	return &ViewTracker{
		db:     db,
		now:    func() time.Time { return time.Now().UTC() },
		window: model.ViewDedupWindow,
		ttl:    model.ViewTrackingTTL,
	}
}

// WithClock testlerde zamanı sabitlemek için
func (t *ViewTracker) WithClock(now func() time.Time) *ViewTracker {
	t.now = now
	return t
}

// Increment pencere içinde tekrar yoksa görüntülenmeyi kaydeder ve tablodaki sayacı artırır
func (t *ViewTracker) Increment(ctx context.Context, entity model.EntityType, table string, id uint, identifier string) (bool, error) {
	counted := false
	now := t.now()

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tracking model.ViewTracking
		err := tx.Where("entity_type = ? AND entity_id = ? AND identifier = ?", entity, id, identifier).
			First(&tracking).Error

		switch {
		case err == nil:
			if now.Sub(tracking.ViewedAt) < t.window {
				return nil
			}
			if err := tx.Model(&tracking).Update("viewed_at", now).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			tracking = model.ViewTracking{
				EntityType: entity,
				EntityID:   id,
				Identifier: identifier,
				ViewedAt:   now,
			}
			if err := tx.Create(&tracking).Error; err != nil {
				return err
			}
		default:
			return err
		}

		result := tx.Table(table).Where("id = ?", id).
			UpdateColumn("views", gorm.Expr("views + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		counted = true
		return nil
	})

	return counted, err
}

// DeleteForEntity silinen ilan/yazının takip kayıtlarını kaldırır
func (t *ViewTracker) DeleteForEntity(tx *gorm.DB, entity model.EntityType, id uint) error {
	return tx.Where("entity_type = ? AND entity_id = ?", entity, id).
		Delete(&model.ViewTracking{}).Error
}

// PurgeStale 7 günden eski takip kayıtlarını siler
func (t *ViewTracker) PurgeStale(ctx context.Context) (int64, error) {
	cutoff := t.now().Add(-t.ttl)
	result := t.db.WithContext(ctx).Where("viewed_at < ?", cutoff).Delete(&model.ViewTracking{})
	return result.RowsAffected, result.Error
}
