package seed

import (
	"context"
	"log"

	"emlakweb_backend/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminEnsurer hiç admin yoksa bir tane oluşturur
type AdminEnsurer interface {
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)
}

// SeedAdmin ortam değişkenlerindeki bilgilerle ilk admin kullanıcısını oluşturur
func SeedAdmin(ctx context.Context, auth AdminEnsurer, username, password string) {
	if username == "" || password == "" {
		log.Println("ADMIN_USERNAME / ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	created, err := auth.EnsureAdmin(ctx, username, password)
	if err != nil {
		log.Printf("Error creating admin user %s: %v", username, err)
		return
	}
	if created {
		log.Printf("Admin user %s created", username)
	}
}

// SeedSampleContent boş veritabanına örnek ilan ve blog yazısı ekler
func SeedSampleContent(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.Listing{}).Count(&count).Error; err != nil {
		log.Printf("Error counting listings: %v", err)
		return
	}
	if count > 0 {
		return
	}

	listings := []model.Listing{
		{
			Title:        "Moda'da Deniz Manzaralı 3+1 Daire",
			Description:  "Sahile 5 dakika yürüme mesafesinde, yeni tadilatlı, ferah daire.",
			Location:     "Kadıköy, İstanbul",
			Price:        12500000,
			Currency:     model.CurrencyTRY,
			Type:         model.ListingTypeSale,
			PropertyType: model.PropertyTypeApartment,
			Area:         145,
			Rooms:        3,
			Bathrooms:    2,
			Floor:        4,
			BuildingAge:  8,
			Features:     datatypes.JSONSlice[string]{"Asansör", "Balkon", "Deniz Manzarası"},
			Status:       model.ListingStatusActive,
			Locale:       model.LocaleTR,
		},
		{
			Title:        "Bodrum Yalıkavak Müstakil Havuzlu Villa",
			Description:  "Özel havuzlu, bahçeli, marina manzaralı villa.",
			Location:     "Yalıkavak, Bodrum",
			Price:        45000,
			Currency:     model.CurrencyEUR,
			Type:         model.ListingTypeRent,
			PropertyType: model.PropertyTypeVilla,
			Area:         320,
			Rooms:        5,
			Bathrooms:    4,
			Features:     datatypes.JSONSlice[string]{"Havuz", "Bahçe", "Otopark"},
			Status:       model.ListingStatusActive,
			Locale:       model.LocaleTR,
		},
		{
			Title:        "Modern Office Space in Levent",
			Description:  "Grade A office floor close to the metro, ready to move in.",
			Location:     "Levent, Istanbul",
			Price:        850000,
			Currency:     model.CurrencyUSD,
			Type:         model.ListingTypeSale,
			PropertyType: model.PropertyTypeOffice,
			Area:         210,
			Bathrooms:    2,
			Floor:        12,
			BuildingAge:  3,
			Features:     datatypes.JSONSlice[string]{"Security", "Parking"},
			Status:       model.ListingStatusActive,
			Locale:       model.LocaleEN,
		},
	}

	for _, listing := range listings {
		if err := db.Create(&listing).Error; err != nil {
			log.Printf("Error creating listing %s: %v", listing.Title, err)
		}
	}

	post := model.BlogPost{
		Title:   "Ev Alırken Dikkat Edilmesi Gereken 5 Nokta",
		Slug:    "ev-alirken-dikkat-edilmesi-gereken-5-nokta",
		Excerpt: "Tapu kontrolünden iskan belgesine, satın alma öncesi kontrol listesi.",
		Content: "<p>Tapu kaydını, iskan durumunu ve aidat borçlarını mutlaka kontrol edin.</p>",
		Author:  "Emlak Ofisi",
		Tags:    datatypes.JSONSlice[string]{"rehber", "tapu"},
		Status:  model.BlogStatusPublished,
		Locale:  model.LocaleTR,
	}
	if err := db.FirstOrCreate(&post, model.BlogPost{Slug: post.Slug}).Error; err != nil {
		log.Printf("Error creating blog post %s: %v", post.Slug, err)
	}

	log.Println("Sample content seeded successfully!")
}
