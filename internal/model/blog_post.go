package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Blog Status
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
	BlogStatusArchived  BlogStatus = "archived"
)

type BlogPost struct {
	ID          uint                        `json:"id" gorm:"primaryKey"`
	Title       string                      `json:"title" gorm:"not null"`
	Slug        string                      `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt     string                      `json:"excerpt" gorm:"type:text"`
	Content     string                      `json:"content" gorm:"type:text"` // HTML
	CoverImage  string                      `json:"cover_image"`
	Author      string                      `json:"author"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Status      BlogStatus                  `json:"status" gorm:"not null;default:'draft';index"`
	Locale      string                      `json:"locale" gorm:"not null;default:'tr';index"`
	Views       int64                       `json:"views" gorm:"not null;default:0"`
	PublishedAt *time.Time                  `json:"published_at"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

// BeforeSave etiketleri boş diziye normalize eder, yayın tarihini bir kez atar
func (p *BlogPost) BeforeSave(tx *gorm.DB) error {
	if p.Tags == nil {
		p.Tags = datatypes.JSONSlice[string]{}
	}
	if p.Status == "" {
		p.Status = BlogStatusDraft
	}
	if p.Locale == "" {
		p.Locale = LocaleTR
	}
	if p.Status == BlogStatusPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}
	return nil
}

func IsValidBlogStatus(s BlogStatus) bool {
	switch s {
	case BlogStatusDraft, BlogStatusPublished, BlogStatusArchived:
		return true
	}
	return false
}
