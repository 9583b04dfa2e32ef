package repository

import (
	"context"
	"log"

	"emlakweb_backend/internal/model"

	"gorm.io/gorm"
)

type ListingFilter struct {
	Search       string // başlık veya açıklama içinde
	Location     string
	Status       model.ListingStatus
	Type         model.ListingType
	PropertyType model.PropertyType
	Locale       string
	MinPrice     float64
	MaxPrice     float64
	Limit        int
	Offset       int
}

type ListingRepository struct {
	db     *gorm.DB
	images ImageRemover
	views  *ViewTracker
}

func NewListingRepository(db *gorm.DB, images ImageRemover, views *ViewTracker) *ListingRepository {
	return &ListingRepository{db: db, images: images, views: views}
}

// FindAll filtreye uyan ilanları en yeniden eskiye listeler
func (r *ListingRepository) FindAll(ctx context.Context, filter ListingFilter) ([]model.Listing, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Listing{})

	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", likePattern(filter.Location))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.PropertyType != "" {
		query = query.Where("property_type = ?", filter.PropertyType)
	}
	if filter.Locale != "" {
		query = query.Where("locale = ?", filter.Locale)
	}
	if filter.MinPrice > 0 {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listings := []model.Listing{}
	if err := paginate(query, filter.Limit, filter.Offset).
		Order("created_at desc").
		Order("id desc").
		Find(&listings).Error; err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id uint) (*model.Listing, error) {
	var listing model.Listing
	if err := r.db.WithContext(ctx).First(&listing, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &listing, nil
}

func (r *ListingRepository) Create(ctx context.Context, listing *model.Listing) error {
	listing.ID = 0
	listing.Views = 0
	if listing.CoverImage == "" && len(listing.Images) > 0 {
		listing.CoverImage = listing.Images[0]
	}
	return r.db.WithContext(ctx).Create(listing).Error
}

// Update ilanı günceller; artık kullanılmayan resimler best-effort silinir
func (r *ListingRepository) Update(ctx context.Context, id uint, input *model.Listing) (*model.Listing, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	before := existing.ImageURLs()

	input.ID = existing.ID
	input.Views = existing.Views
	input.CreatedAt = existing.CreatedAt
	if input.CoverImage == "" && len(input.Images) > 0 {
		input.CoverImage = input.Images[0]
	}

	if err := r.db.WithContext(ctx).Save(input).Error; err != nil {
		return nil, err
	}

	removeImages(ctx, r.images, orphanedImages(before, input.ImageURLs()))
	return input, nil
}

// Delete önce dosyaları, sonra takip kayıtlarını, en son ilanı siler.
// İlan yoksa (false, nil) döner.
func (r *ListingRepository) Delete(ctx context.Context, id uint) (bool, error) {
	listing, err := r.FindByID(ctx, id)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	removeImages(ctx, r.images, listing.ImageURLs())

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.views.DeleteForEntity(tx, model.EntityListing, listing.ID); err != nil {
			return err
		}
		return tx.Delete(&model.Listing{}, listing.ID).Error
	})
	if err != nil {
		log.Printf("Could not delete listing %d: %v", id, err)
		return false, err
	}
	return true, nil
}

// IncrementViews ziyaretçi son 60 dakikada görüntülemediyse sayacı artırır
func (r *ListingRepository) IncrementViews(ctx context.Context, id uint, identifier string) (bool, error) {
	return r.views.Increment(ctx, model.EntityListing, "listings", id, identifier)
}
