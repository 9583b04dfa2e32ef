package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"emlakweb_backend/internal/middleware"
	"emlakweb_backend/internal/model"
	"emlakweb_backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type BlogPostInput struct {
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	Excerpt     string           `json:"excerpt"`
	Content     string           `json:"content"`
	CoverImage  string           `json:"cover_image"`
	Author      string           `json:"author"`
	Tags        []string         `json:"tags"`
	Status      model.BlogStatus `json:"status"`
	Locale      string           `json:"locale"`
	PublishedAt *time.Time       `json:"published_at"`
}

func (in *BlogPostInput) validate() string {
	in.Title = strings.TrimSpace(in.Title)
	if in.Status == "" {
		in.Status = model.BlogStatusDraft
	}
	if in.Locale == "" {
		in.Locale = model.LocaleTR
	}

	switch {
	case in.Title == "":
		return "blog.title_required"
	case !model.IsValidBlogStatus(in.Status):
		return "blog.invalid_status"
	case !model.IsValidLocale(in.Locale):
		return "locale.invalid"
	}
	return ""
}

func (in *BlogPostInput) toModel() *model.BlogPost {
	return &model.BlogPost{
		Title:       in.Title,
		Slug:        strings.TrimSpace(in.Slug),
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		CoverImage:  strings.TrimSpace(in.CoverImage),
		Author:      strings.TrimSpace(in.Author),
		Tags:        datatypes.JSONSlice[string](cleanStrings(in.Tags)),
		Status:      in.Status,
		Locale:      in.Locale,
		PublishedAt: in.PublishedAt,
	}
}

var blogRepo *repository.BlogRepository

func InitBlogController(repo *repository.BlogRepository) {
	blogRepo = repo
}

func blogFilterFromQuery(c *fiber.Ctx) repository.BlogFilter {
	return repository.BlogFilter{
		Search: c.Query("search"),
		Tag:    c.Query("tag"),
		Status: model.BlogStatus(c.Query("status")),
		Locale: c.Query("locale"),
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	}
}

func listPosts(c *fiber.Ctx, filter repository.BlogFilter) error {
	posts, total, err := blogRepo.FindAll(c.UserContext(), filter)
	if err != nil {
		return internalError(c, "Could not list blog posts", err)
	}
	return success(c, fiber.StatusOK, fiber.Map{
		"items": posts,
		"total": total,
	})
}

// ListPosts sadece yayındaki yazıları listeler
func ListPosts(c *fiber.Ctx) error {
	filter := blogFilterFromQuery(c)
	filter.Status = model.BlogStatusPublished
	return listPosts(c, filter)
}

// GetPostBySlug yayındaki yazıyı slug ile döner ve görüntülenmeyi sayar
func GetPostBySlug(c *fiber.Ctx) error {
	post, err := blogRepo.FindBySlug(c.UserContext(), c.Params("slug"))
	if errors.Is(err, repository.ErrNotFound) || (err == nil && post.Status != model.BlogStatusPublished) {
		return fail(c, fiber.StatusNotFound, "blog.not_found")
	}
	if err != nil {
		return internalError(c, "Could not fetch blog post", err)
	}

	counted, err := blogRepo.IncrementViews(c.UserContext(), post.ID, middleware.GetVisitorID(c))
	if err != nil {
		log.Printf("Could not increment blog views: %v", err)
	}
	if counted {
		post.Views++
	}

	return success(c, fiber.StatusOK, post)
}

func AdminListPosts(c *fiber.Ctx) error {
	return listPosts(c, blogFilterFromQuery(c))
}

func AdminGetPost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "error.invalid_id")
	}

	post, err := blogRepo.FindByID(c.UserContext(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "blog.not_found")
	}
	if err != nil {
		return internalError(c, "Could not fetch blog post", err)
	}
	return success(c, fiber.StatusOK, post)
}

func CreatePost(c *fiber.Ctx) error {
	input := new(BlogPostInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, fiber.StatusBadRequest, "error.bad_request")
	}
	if key := input.validate(); key != "" {
		return fail(c, fiber.StatusBadRequest, key)
	}

	post := input.toModel()
	if err := blogRepo.Create(c.UserContext(), post); err != nil {
		return internalError(c, "Could not create blog post", err)
	}
	return success(c, fiber.StatusCreated, post)
}

func UpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "error.invalid_id")
	}

	input := new(BlogPostInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, fiber.StatusBadRequest, "error.bad_request")
	}
	if key := input.validate(); key != "" {
		return fail(c, fiber.StatusBadRequest, key)
	}

	post, err := blogRepo.Update(c.UserContext(), id, input.toModel())
	if errors.Is(err, repository.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "blog.not_found")
	}
	if err != nil {
		return internalError(c, "Could not update blog post", err)
	}
	return success(c, fiber.StatusOK, post)
}

func DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "error.invalid_id")
	}

	deleted, err := blogRepo.Delete(c.UserContext(), id)
	if err != nil {
		return internalError(c, "Could not delete blog post", err)
	}
	if !deleted {
		return fail(c, fiber.StatusNotFound, "blog.not_found")
	}
	return success(c, fiber.StatusOK, fiber.Map{"message": message(c, "blog.deleted")})
}
