package repository

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"emlakweb_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DashboardStats genel dashboard istatistikleri
type DashboardStats struct {
	TotalListings  int64           `json:"total_listings"`
	ActiveListings int64           `json:"active_listings"`
	SoldListings   int64           `json:"sold_listings"`
	RentedListings int64           `json:"rented_listings"`
	TotalPosts     int64           `json:"total_posts"`
	PublishedPosts int64           `json:"published_posts"`
	DraftPosts     int64           `json:"draft_posts"`
	ListingViews   int64           `json:"listing_views"`
	BlogViews      int64           `json:"blog_views"`
	TopListings    []TopListing    `json:"top_listings"`
	DailyPageViews []DailyPageView `json:"daily_page_views"`
}

type TopListing struct {
	ID         uint    `json:"id"`
	Title      string  `json:"title"`
	Views      int64   `json:"views"`
	Price      float64 `json:"price"`
	Currency   string  `json:"currency"`
	Location   string  `json:"location"`
	CoverImage string  `json:"cover_image"`
}

type DailyPageView struct {
	Date  string `json:"date"`
	Views int64  `json:"views"`
}

type StatsRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (r *StatsRepository) WithClock(now func() time.Time) *StatsRepository {
	r.now = now
	return r
}

func (r *StatsRepository) Dashboard(ctx context.Context) (*DashboardStats, error) {
	db := r.db.WithContext(ctx)
	stats := &DashboardStats{}

	counts := []struct {
		dest  *int64
		model interface{}
		where string
		arg   interface{}
	}{
		{&stats.TotalListings, &model.Listing{}, "", nil},
		{&stats.ActiveListings, &model.Listing{}, "status = ?", model.ListingStatusActive},
		{&stats.SoldListings, &model.Listing{}, "status = ?", model.ListingStatusSold},
		{&stats.RentedListings, &model.Listing{}, "status = ?", model.ListingStatusRented},
		{&stats.TotalPosts, &model.BlogPost{}, "", nil},
		{&stats.PublishedPosts, &model.BlogPost{}, "status = ?", model.BlogStatusPublished},
		{&stats.DraftPosts, &model.BlogPost{}, "status = ?", model.BlogStatusDraft},
	}
	for _, c := range counts {
		query := db.Model(c.model)
		if c.where != "" {
			query = query.Where(c.where, c.arg)
		}
		if err := query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := db.Model(&model.Listing{}).Select("COALESCE(SUM(views), 0)").Scan(&stats.ListingViews).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.BlogPost{}).Select("COALESCE(SUM(views), 0)").Scan(&stats.BlogViews).Error; err != nil {
		return nil, err
	}

	// En çok görüntülenen 5 ilan
	stats.TopListings = []TopListing{}
	if err := db.Model(&model.Listing{}).
		Select("id, title, views, price, currency, location, cover_image").
		Order("views desc").
		Order("id asc").
		Limit(5).
		Scan(&stats.TopListings).Error; err != nil {
		return nil, err
	}

	// Son 7 günün sayfa görüntülenmeleri
	stats.DailyPageViews = []DailyPageView{}
	today := truncateDay(r.now())
	for i := 6; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		var views int64
		if err := db.Model(&model.PageView{}).
			Where("date = ?", date).
			Select("COALESCE(SUM(count), 0)").
			Scan(&views).Error; err != nil {
			return nil, err
		}
		stats.DailyPageViews = append(stats.DailyPageViews, DailyPageView{
			Date:  date.Format("2006-01-02"),
			Views: views,
		})
	}

	return stats, nil
}

// RecordPageView günün ilgili sayfa sayacını artırır
func (r *StatsRepository) RecordPageView(ctx context.Context, path string) error {
	path = normalizePath(path)
	today := truncateDay(r.now())

	pv := model.PageView{Date: today, Path: path, Count: 1}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}, {Name: "path"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("page_views.count + ?", 1), "updated_at": r.now()}),
	}).Create(&pv).Error
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

const maxPathLength = 255

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > maxPathLength {
		// çok baytlı karakter ortadan bölünmez
		cut := maxPathLength
		for cut > 0 && !utf8.RuneStart(path[cut]) {
			cut--
		}
		path = path[:cut]
	}
	return path
}
