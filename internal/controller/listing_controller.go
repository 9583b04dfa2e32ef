package controller

import (
	"errors"
	"log"
	"strings"

	"emlakweb_backend/internal/middleware"
	"emlakweb_backend/internal/model"
	"emlakweb_backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type ListingInput struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Location     string              `json:"location"`
	Price        float64             `json:"price"`
	Currency     model.Currency      `json:"currency"`
	Type         model.ListingType   `json:"type"`
	PropertyType model.PropertyType  `json:"property_type"`
	Area         float64             `json:"area"`
	Rooms        int                 `json:"rooms"`
	Bathrooms    int                 `json:"bathrooms"`
	Floor        int                 `json:"floor"`
	BuildingAge  int                 `json:"building_age"`
	Features     []string            `json:"features"`
	Images       []string            `json:"images"`
	CoverImage   string              `json:"cover_image"`
	Status       model.ListingStatus `json:"status"`
	Locale       string              `json:"locale"`
}

// validate hata durumunda i18n mesaj anahtarını döner
func (in *ListingInput) validate() string {
	in.Title = strings.TrimSpace(in.Title)
	in.Location = strings.TrimSpace(in.Location)

	if in.Currency == "" {
		in.Currency = model.CurrencyTRY
	}
	if in.Status == "" {
		in.Status = model.ListingStatusActive
	}
	if in.Locale == "" {
		in.Locale = model.LocaleTR
	}

	switch {
	case in.Title == "":
		return "listing.title_required"
	case in.Location == "":
		return "listing.location_required"
	case in.Price <= 0:
		return "listing.invalid_price"
	case !model.IsValidListingType(in.Type):
		return "listing.invalid_type"
	case !model.IsValidPropertyType(in.PropertyType):
		return "listing.invalid_property_type"
	case !model.IsValidListingStatus(in.Status):
		return "listing.invalid_status"
	case !model.IsValidCurrency(in.Currency):
		return "listing.invalid_currency"
	case !model.IsValidLocale(in.Locale):
		return "locale.invalid"
	}
	return ""
}

func (in *ListingInput) toModel() *model.Listing {
	return &model.Listing{
		Title:        in.Title,
		Description:  in.Description,
		Location:     in.Location,
		Price:        in.Price,
		Currency:     in.Currency,
		Type:         in.Type,
		PropertyType: in.PropertyType,
		Area:         in.Area,
		Rooms:        in.Rooms,
		Bathrooms:    in.Bathrooms,
		Floor:        in.Floor,
		BuildingAge:  in.BuildingAge,
		Features:     datatypes.JSONSlice[string](cleanStrings(in.Features)),
		Images:       datatypes.JSONSlice[string](cleanStrings(in.Images)),
		CoverImage:   strings.TrimSpace(in.CoverImage),
		Status:       in.Status,
		Locale:       in.Locale,
	}
}

// cleanStrings boş ve tekrar eden değerleri atar
func cleanStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := []string{}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

var listingRepo *repository.ListingRepository

func InitListingController(repo *repository.ListingRepository) {
	listingRepo = repo
}

func listingFilterFromQuery(c *fiber.Ctx) repository.ListingFilter {
	return repository.ListingFilter{
		Search:       c.Query("search"),
		Location:     c.Query("location"),
		Status:       model.ListingStatus(c.Query("status")),
		Type:         model.ListingType(c.Query("type")),
		PropertyType: model.PropertyType(c.Query("property_type")),
		Locale:       c.Query("locale"),
		MinPrice:     c.QueryFloat("min_price", 0),
		MaxPrice:     c.QueryFloat("max_price", 0),
		Limit:        c.QueryInt("limit", 0),
		Offset:       c.QueryInt("offset", 0),
	}
}

func listListings(c *fiber.Ctx, filter repository.ListingFilter) error {
	listings, total, err := listingRepo.FindAll(c.UserContext(), filter)
	if err != nil {
		return internalError(c, "Could not list listings", err)
	}
	return success(c, fiber.StatusOK, fiber.Map{
		"items": listings,
		"total": total,
	})
}

// ListListings yayındaki ilanları listeler; pasif ilanlar gösterilmez
func ListListings(c *fiber.Ctx) error {
	filter := listingFilterFromQuery(c)
	if filter.Status == "" || filter.Status == model.ListingStatusInactive {
		filter.Status = model.ListingStatusActive
	}
	return listListings(c, filter)
}

// GetListing ilan detayını döner ve ziyaretçi için görüntülenmeyi sayar
func GetListing(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "error.invalid_id")
	}

	listing, err := listingRepo.FindByID(c.UserContext(), id)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && listing.Status == model.ListingStatusInactive) {
		return fail(c, fiber.StatusNotFound, "listing.not_found")
	}
	if err != nil {
		return internalError(c, "Could not fetch listing", err)
	}

	counted, err := listingRepo.IncrementViews(c.UserContext(), id, middleware.GetVisitorID(c))
	if err != nil {
		log.Printf("Could not increment listing views: %v", err)
	}
	if counted {
		listing.Views++
	}

	return success(c, fiber.StatusOK, listing)
}

// AdminListListings tüm durumlardaki ilanları listeler
func AdminListListings(c *fiber.Ctx) error {
	return listListings(c, listingFilterFromQuery(c))
}

func AdminGetListing(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "error.invalid_id")
	}

	listing, err := listingRepo.FindByID(c.UserContext(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "listing.not_found")
	}
	if err != nil {
		return internalError(c, "Could not fetch listing", err)
	}
	return success(c, fiber.StatusOK, listing)
}

// CreateListing yeni emlak ilanı oluşturur
func CreateListing(c *fiber.Ctx) error {
	input := new(ListingInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, fiber.StatusBadRequest, "error.bad_request")
	}
	if key := input.validate(); key != "" {
		return fail(c, fiber.StatusBadRequest, key)
	}

	listing := input.toModel()
	if err := listingRepo.Create(c.UserContext(), listing); err != nil {
		return internalError(c, "Could not create listing", err)
	}
	return success(c, fiber.StatusCreated, listing)
}

func UpdateListing(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "error.invalid_id")
	}

	input := new(ListingInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, fiber.StatusBadRequest, "error.bad_request")
	}
	if key := input.validate(); key != "" {
		return fail(c, fiber.StatusBadRequest, key)
	}

	listing, err := listingRepo.Update(c.UserContext(), id, input.toModel())
	if errors.Is(err, repository.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "listing.not_found")
	}
	if err != nil {
		return internalError(c, "Could not update listing", err)
	}
	return success(c, fiber.StatusOK, listing)
}

// DeleteListing ilanı, resimlerini ve görüntülenme kayıtlarını siler
func DeleteListing(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "error.invalid_id")
	}

	deleted, err := listingRepo.Delete(c.UserContext(), id)
	if err != nil {
		return internalError(c, "Could not delete listing", err)
	}
	if !deleted {
		return fail(c, fiber.StatusNotFound, "listing.not_found")
	}
	return success(c, fiber.StatusOK, fiber.Map{"message": message(c, "listing.deleted")})
}
