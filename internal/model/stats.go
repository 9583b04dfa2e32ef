package model

import (
	"time"
)

// Görüntülenme takibi yapılan varlık türleri
type EntityType string

const (
	EntityListing EntityType = "listing"
	EntityBlog    EntityType = "blog"
)

const (
	ViewDedupWindow = 60 * time.Minute   // Aynı ziyaretçi için bekleme süresi
	ViewTrackingTTL = 7 * 24 * time.Hour // Bu süreden eski kayıtlar temizlenir
)

// ViewTracking ziyaretçi bazlı son görüntülenme kaydı
type ViewTracking struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	EntityType EntityType `json:"entity_type" gorm:"uniqueIndex:idx_view_entity_visitor;size:16;not null"`
	EntityID   uint       `json:"entity_id" gorm:"uniqueIndex:idx_view_entity_visitor;not null"`
	Identifier string     `json:"identifier" gorm:"uniqueIndex:idx_view_entity_visitor;size:128;not null"`
	ViewedAt   time.Time  `json:"viewed_at" gorm:"index;not null"`
}

func (ViewTracking) TableName() string {
	return "view_tracking"
}

// PageView gün ve sayfa bazında toplanmış görüntülenme sayısı
type PageView struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Date      time.Time `json:"date" gorm:"index:idx_pv_date_path,unique;type:date;not null"`
	Path      string    `json:"path" gorm:"index:idx_pv_date_path,unique;size:255;not null"`
	Count     int64     `json:"count" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
