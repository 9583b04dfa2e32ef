package repository

import (
	"context"
	"fmt"
	"log"

	"emlakweb_backend/internal/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type BlogFilter struct {
	Search string // başlık veya özet içinde
	Tag    string
	Status model.BlogStatus
	Locale string
	Limit  int
	Offset int
}

type BlogRepository struct {
	db     *gorm.DB
	images ImageRemover
	views  *ViewTracker
}

func NewBlogRepository(db *gorm.DB, images ImageRemover, views *ViewTracker) *BlogRepository {
	return &BlogRepository{db: db, images: images, views: views}
}

func (r *BlogRepository) FindAll(ctx context.Context, filter BlogFilter) ([]model.BlogPost, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.BlogPost{})

	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ?", pattern, pattern)
	}
	if filter.Tag != "" {
		query = query.Where("LOWER(CAST(tags AS TEXT)) LIKE ?", likePattern(filter.Tag))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Locale != "" {
		query = query.Where("locale = ?", filter.Locale)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	posts := []model.BlogPost{}
	if err := paginate(query, filter.Limit, filter.Offset).
		Order("created_at desc").
		Order("id desc").
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id uint) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &post, nil
}

func (r *BlogRepository) FindBySlug(ctx context.Context, postSlug string) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := r.db.WithContext(ctx).Where("slug = ?", postSlug).First(&post).Error; err != nil {
		return nil, notFound(err)
	}
	return &post, nil
}

func (r *BlogRepository) Create(ctx context.Context, post *model.BlogPost) error {
	post.ID = 0
	post.Views = 0

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s, err := uniqueSlug(tx, post.Slug, post.Title, 0)
		if err != nil {
			return err
		}
		post.Slug = s
		return tx.Create(post).Error
	})
}

func (r *BlogRepository) Update(ctx context.Context, id uint, input *model.BlogPost) (*model.BlogPost, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input.ID = existing.ID
	input.Views = existing.Views
	input.CreatedAt = existing.CreatedAt
	if input.PublishedAt == nil {
		input.PublishedAt = existing.PublishedAt
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s, err := uniqueSlug(tx, input.Slug, input.Title, existing.ID)
		if err != nil {
			return err
		}
		input.Slug = s
		return tx.Save(input).Error
	})
	if err != nil {
		return nil, err
	}

	if existing.CoverImage != "" && existing.CoverImage != input.CoverImage {
		removeImages(ctx, r.images, []string{existing.CoverImage})
	}
	return input, nil
}

// Delete kapak resmini, takip kayıtlarını ve yazıyı sırayla siler
func (r *BlogRepository) Delete(ctx context.Context, id uint) (bool, error) {
	post, err := r.FindByID(ctx, id)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	removeImages(ctx, r.images, []string{post.CoverImage})

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.views.DeleteForEntity(tx, model.EntityBlog, post.ID); err != nil {
			return err
		}
		return tx.Delete(&model.BlogPost{}, post.ID).Error
	})
	if err != nil {
		log.Printf("Could not delete blog post %d: %v", id, err)
		return false, err
	}
	return true, nil
}

func (r *BlogRepository) IncrementViews(ctx context.Context, id uint, identifier string) (bool, error) {
	return r.views.Increment(ctx, model.EntityBlog, "blog_posts", id, identifier)
}

// uniqueSlug verilen slug'ı (yoksa başlıktan üretileni) benzersiz hale getirir
func uniqueSlug(tx *gorm.DB, requested, title string, excludeID uint) (string, error) {
	base := slug.MakeLang(requested, "tr")
	if base == "" {
		base = slug.MakeLang(title, "tr")
	}
	if base == "" {
		base = "yazi"
	}

	candidate := base
	for i := 2; ; i++ {
		var count int64
		err := tx.Model(&model.BlogPost{}).
			Where("slug = ? AND id <> ?", candidate, excludeID).
			Count(&count).Error
		if err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
