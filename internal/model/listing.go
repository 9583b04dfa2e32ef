package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Listing Types
type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

// Property Types
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeVilla      PropertyType = "villa"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeResidence  PropertyType = "residence"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeOffice     PropertyType = "office"
	PropertyTypeShop       PropertyType = "shop"
	PropertyTypeCommercial PropertyType = "commercial"
)

// Listing Status
type ListingStatus string

const (
	ListingStatusActive   ListingStatus = "active"
	ListingStatusInactive ListingStatus = "inactive"
	ListingStatusSold     ListingStatus = "sold"
	ListingStatusRented   ListingStatus = "rented"
)

// Currency Types
type Currency string

const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// Locales
const (
	LocaleTR = "tr"
	LocaleEN = "en"
)

type Listing struct {
	ID           uint                        `json:"id" gorm:"primaryKey"`
	Title        string                      `json:"title" gorm:"not null"`
	Description  string                      `json:"description" gorm:"type:text"`
	Location     string                      `json:"location" gorm:"not null;index"`
	Price        float64                     `json:"price" gorm:"not null"`
	Currency     Currency                    `json:"currency" gorm:"not null;default:'TRY'"`
	Type         ListingType                 `json:"type" gorm:"not null;index"`          // satılık / kiralık
	PropertyType PropertyType                `json:"property_type" gorm:"not null;index"` // daire, villa, arsa...
	Area         float64                     `json:"area"`                                // m²
	Rooms        int                         `json:"rooms"`
	Bathrooms    int                         `json:"bathrooms"`
	Floor        int                         `json:"floor"`
	BuildingAge  int                         `json:"building_age"`
	Features     datatypes.JSONSlice[string] `json:"features"`
	Images       datatypes.JSONSlice[string] `json:"images"`
	CoverImage   string                      `json:"cover_image"`
	Status       ListingStatus               `json:"status" gorm:"not null;default:'active';index"`
	Locale       string                      `json:"locale" gorm:"not null;default:'tr';index"`
	Views        int64                       `json:"views" gorm:"not null;default:0"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

// BeforeSave JSON dizilerinin null yerine boş dizi olarak yazılmasını sağlar
func (l *Listing) BeforeSave(tx *gorm.DB) error {
	if l.Features == nil {
		l.Features = datatypes.JSONSlice[string]{}
	}
	if l.Images == nil {
		l.Images = datatypes.JSONSlice[string]{}
	}
	if l.Status == "" {
		l.Status = ListingStatusActive
	}
	if l.Locale == "" {
		l.Locale = LocaleTR
	}
	if l.Currency == "" {
		l.Currency = CurrencyTRY
	}
	return nil
}

// ImageURLs ilana bağlı tüm dosya URL'lerini (kapak dahil) tekrarsız döner
func (l *Listing) ImageURLs() []string {
	seen := make(map[string]bool)
	var urls []string
	for _, u := range append([]string{l.CoverImage}, l.Images...) {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		urls = append(urls, u)
	}
	return urls
}

func IsValidListingStatus(s ListingStatus) bool {
	switch s {
	case ListingStatusActive, ListingStatusInactive, ListingStatusSold, ListingStatusRented:
		return true
	}
	return false
}

func IsValidListingType(t ListingType) bool {
	return t == ListingTypeSale || t == ListingTypeRent
}

func IsValidPropertyType(t PropertyType) bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeVilla, PropertyTypeHouse, PropertyTypeResidence,
		PropertyTypeLand, PropertyTypeOffice, PropertyTypeShop, PropertyTypeCommercial:
		return true
	}
	return false
}

func IsValidCurrency(c Currency) bool {
	switch c {
	case CurrencyTRY, CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return true
	}
	return false
}

func IsValidLocale(locale string) bool {
	return locale == LocaleTR || locale == LocaleEN
}
